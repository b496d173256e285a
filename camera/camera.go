// Package camera provides a look-at camera, its uniform-buffer bundle (the
// shared camera resource bound at descriptor slot 1), and a keyboard
// controller.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// vulkanClip converts GL-style clip space to Vulkan clip space (inverted Y,
// half-depth Z).
var vulkanClip = mgl32.Mat4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a perspective look-at camera.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Aspect float32
	// FovY is the vertical field of view in degrees.
	FovY float32
	Near float32
	Far  float32
}

// View returns the look-at view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection with the Vulkan clip-space
// correction applied.
func (c *Camera) Projection() mgl32.Mat4 {
	return vulkanClip.Mul4(mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far))
}

// ViewProjection returns projection * view, ready for a uniform upload.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// SetAspect updates the aspect ratio from drawable dimensions. Zero
// dimensions are ignored.
func (c *Camera) SetAspect(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
