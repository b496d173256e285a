package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

func defaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 16.0 / 9.0,
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

func TestViewProjectionFlipsY(t *testing.T) {
	cam := defaultCamera()

	plain := mgl32.Perspective(mgl32.DegToRad(cam.FovY), cam.Aspect, cam.Near, cam.Far).Mul4(cam.View())
	corrected := cam.ViewProjection()

	// A point in front of the camera should land at the same X but
	// mirrored Y after the clip-space correction.
	p := mgl32.Vec4{0.5, 0.5, -1, 1}
	got := corrected.Mul4x1(p)
	want := plain.Mul4x1(p)

	if math.Abs(float64(got.X()-want.X())) > 1e-5 {
		t.Errorf("X changed: got %v, want %v", got.X(), want.X())
	}
	if math.Abs(float64(got.Y()+want.Y())) > 1e-5 {
		t.Errorf("Y not mirrored: got %v, want %v", got.Y(), -want.Y())
	}
}

func TestSetAspectIgnoresZeroDimensions(t *testing.T) {
	cam := defaultCamera()

	cam.SetAspect(800, 600)
	if cam.Aspect != 800.0/600.0 {
		t.Errorf("aspect = %v, want %v", cam.Aspect, 800.0/600.0)
	}

	cam.SetAspect(0, 600)
	cam.SetAspect(800, 0)
	if cam.Aspect != 800.0/600.0 {
		t.Errorf("zero dimension changed aspect to %v", cam.Aspect)
	}
}

func keyEvent(scancode sdl.Scancode, pressed bool) *sdl.KeyboardEvent {
	state := uint8(sdl.RELEASED)
	eventType := uint32(sdl.KEYUP)
	if pressed {
		state = sdl.PRESSED
		eventType = sdl.KEYDOWN
	}
	return &sdl.KeyboardEvent{
		Type:   eventType,
		State:  state,
		Keysym: sdl.Keysym{Scancode: scancode},
	}
}

func TestProcessKeyboardHandledKeys(t *testing.T) {
	tests := []struct {
		name     string
		scancode sdl.Scancode
		handled  bool
	}{
		{"w", sdl.SCANCODE_W, true},
		{"a", sdl.SCANCODE_A, true},
		{"s", sdl.SCANCODE_S, true},
		{"d", sdl.SCANCODE_D, true},
		{"up arrow", sdl.SCANCODE_UP, true},
		{"escape", sdl.SCANCODE_ESCAPE, false},
		{"space", sdl.SCANCODE_SPACE, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewController(0.2)
			handled := c.ProcessKeyboard(keyEvent(test.scancode, true))
			if handled != test.handled {
				t.Errorf("handled = %v, want %v", handled, test.handled)
			}
		})
	}
}

func TestForwardMovesTowardTarget(t *testing.T) {
	cam := defaultCamera()
	c := NewController(0.2)
	c.ProcessKeyboard(keyEvent(sdl.SCANCODE_W, true))

	before := cam.Target.Sub(cam.Eye).Len()
	c.UpdateCamera(&cam)
	after := cam.Target.Sub(cam.Eye).Len()

	if after >= before {
		t.Errorf("distance to target did not shrink: before %v, after %v", before, after)
	}
}

func TestForwardStopsAtTarget(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = mgl32.Vec3{0, 0, 0.1}
	c := NewController(0.2)
	c.ProcessKeyboard(keyEvent(sdl.SCANCODE_W, true))

	eye := cam.Eye
	c.UpdateCamera(&cam)
	if cam.Eye != eye {
		t.Errorf("eye moved past the target: %v", cam.Eye)
	}
}

func TestKeyReleaseStopsMovement(t *testing.T) {
	cam := defaultCamera()
	c := NewController(0.2)
	c.ProcessKeyboard(keyEvent(sdl.SCANCODE_W, true))
	c.ProcessKeyboard(keyEvent(sdl.SCANCODE_W, false))

	eye := cam.Eye
	c.UpdateCamera(&cam)
	if cam.Eye != eye {
		t.Errorf("eye moved after key release: %v", cam.Eye)
	}
}

func TestBundleUpdateNeedsNoDevice(t *testing.T) {
	// Update must only step the controller; the uniform write happens in
	// Upload once the frame's fence has been waited on. A bundle with no
	// GPU handles at all would crash here if Update touched the device.
	b := &Bundle{
		Camera:     defaultCamera(),
		Controller: NewController(0.2),
	}
	b.Controller.ProcessKeyboard(keyEvent(sdl.SCANCODE_W, true))

	before := b.Camera.Eye
	b.Update()
	if b.Camera.Eye == before {
		t.Error("eye did not move")
	}
}

func TestStrafeKeepsDistance(t *testing.T) {
	cam := defaultCamera()
	c := NewController(0.2)
	c.ProcessKeyboard(keyEvent(sdl.SCANCODE_D, true))

	before := cam.Target.Sub(cam.Eye).Len()
	eye := cam.Eye
	c.UpdateCamera(&cam)
	after := cam.Target.Sub(cam.Eye).Len()

	if cam.Eye == eye {
		t.Fatal("eye did not move")
	}
	if math.Abs(float64(after-before)) > 1e-5 {
		t.Errorf("distance to target changed: before %v, after %v", before, after)
	}
}
