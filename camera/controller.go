package camera

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Controller moves a Camera toward or around its target in response to
// keyboard input. Forward motion stops before overshooting the target so the
// view never flips.
type Controller struct {
	Speed float32

	forward  bool
	backward bool
	left     bool
	right    bool
}

func NewController(speed float32) *Controller {
	return &Controller{Speed: speed}
}

// ProcessKeyboard consumes key press and release events for the movement
// keys (WASD and arrows). It reports whether the event was handled.
func (c *Controller) ProcessKeyboard(event *sdl.KeyboardEvent) bool {
	pressed := event.State == sdl.PRESSED

	switch event.Keysym.Scancode {
	case sdl.SCANCODE_W, sdl.SCANCODE_UP:
		c.forward = pressed
	case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
		c.backward = pressed
	case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
		c.left = pressed
	case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
		c.right = pressed
	default:
		return false
	}
	return true
}

// UpdateCamera applies one step of movement to the camera. Sideways motion
// orbits the eye around the target at constant distance.
func (c *Controller) UpdateCamera(camera *Camera) {
	forward := camera.Target.Sub(camera.Eye)
	forwardMag := forward.Len()
	forwardNorm := forward.Normalize()

	if c.forward && forwardMag > c.Speed {
		camera.Eye = camera.Eye.Add(forwardNorm.Mul(c.Speed))
	}
	if c.backward {
		camera.Eye = camera.Eye.Sub(forwardNorm.Mul(c.Speed))
	}

	right := forwardNorm.Cross(camera.Up)

	// Recompute after the forward/backward step so strafing keeps the
	// current distance to the target.
	forward = camera.Target.Sub(camera.Eye)
	forwardMag = forward.Len()

	if c.right {
		camera.Eye = camera.Target.Sub(forward.Add(right.Mul(c.Speed)).Normalize().Mul(forwardMag))
	}
	if c.left {
		camera.Eye = camera.Target.Sub(forward.Sub(right.Mul(c.Speed)).Normalize().Mul(forwardMag))
	}
}
