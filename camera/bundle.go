package camera

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/hhllhhyyds/vulkan-dance/render"
)

// Uniform is the GPU-side layout of the camera uniform buffer.
type Uniform struct {
	ViewProj mgl32.Mat4
}

// Bundle ties a Camera and its Controller to per-frame uniform buffers and
// the descriptor sets that shaders bind at slot 1. One buffer exists per
// frame in flight so an upload never touches memory a previous, still
// executing frame is reading: call Upload for the current frame's slot only
// after BeginFrame has waited on that slot's fence.
type Bundle struct {
	Camera     Camera
	Controller *Controller

	Layout         core1_0.DescriptorSetLayout
	DescriptorSets [render.MaxFramesInFlight]core1_0.DescriptorSet

	uniformBuffers  [render.MaxFramesInFlight]core1_0.Buffer
	uniformMemories [render.MaxFramesInFlight]core1_0.DeviceMemory
}

// NewBundle creates the uniform buffers, descriptor set layout, and one
// descriptor set per frame in flight for cam, and uploads the initial
// view-projection to every slot.
func NewBundle(ctx *render.Context, cam Camera, controllerSpeed float32) (*Bundle, error) {
	b := &Bundle{
		Camera:     cam,
		Controller: NewController(controllerSpeed),
	}

	var err error
	b.Layout, _, err = ctx.Device.CreateDescriptorSetLayout(nil, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: []core1_0.DescriptorSetLayoutBinding{
			{
				Binding:         0,
				DescriptorType:  core1_0.DescriptorTypeUniformBuffer,
				DescriptorCount: 1,

				StageFlags: core1_0.StageVertex,
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create camera descriptor set layout")
	}

	allocLayouts := make([]core1_0.DescriptorSetLayout, render.MaxFramesInFlight)
	for i := range allocLayouts {
		allocLayouts[i] = b.Layout
	}
	sets, _, err := ctx.Device.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: ctx.DescriptorPool,
		SetLayouts:     allocLayouts,
	})
	if err != nil {
		b.Destroy(ctx.Device)
		return nil, errors.Wrap(err, "failed to allocate camera descriptor sets")
	}
	copy(b.DescriptorSets[:], sets)

	for i := 0; i < render.MaxFramesInFlight; i++ {
		b.uniformBuffers[i], b.uniformMemories[i], err = ctx.CreateBuffer(
			binary.Size(Uniform{}),
			core1_0.BufferUsageUniformBuffer,
			core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent,
		)
		if err != nil {
			b.Destroy(ctx.Device)
			return nil, errors.Wrapf(err, "failed to create camera uniform buffer %d", i)
		}

		err = ctx.Device.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
			{
				DstSet:          b.DescriptorSets[i],
				DstBinding:      0,
				DstArrayElement: 0,

				DescriptorType: core1_0.DescriptorTypeUniformBuffer,

				BufferInfo: []core1_0.DescriptorBufferInfo{
					{
						Buffer: b.uniformBuffers[i],
						Offset: 0,
						Range:  binary.Size(Uniform{}),
					},
				},
			},
		}, nil)
		if err != nil {
			b.Destroy(ctx.Device)
			return nil, errors.Wrap(err, "failed to write camera descriptor set")
		}

		// No frame has been submitted yet, so every slot is writable.
		err = b.Upload(ctx, i)
		if err != nil {
			b.Destroy(ctx.Device)
			return nil, err
		}
	}

	return b, nil
}

// Update steps the controller. It touches no GPU memory; the new matrix
// reaches the device through the next Upload.
func (b *Bundle) Update() {
	b.Controller.UpdateCamera(&b.Camera)
}

// Upload writes the camera's current view-projection to the given frame
// slot's uniform buffer. The slot's previous frame must have completed, which
// BeginFrame's fence wait guarantees for the slot it returns.
func (b *Bundle) Upload(ctx *render.Context, slot int) error {
	err := ctx.WriteMemory(b.uniformMemories[slot], 0, Uniform{ViewProj: b.Camera.ViewProjection()})
	if err != nil {
		return errors.Wrapf(err, "failed to write camera uniform buffer %d", slot)
	}
	return nil
}

func (b *Bundle) Destroy(device core1_0.CoreDeviceDriver) {
	for i := range b.uniformBuffers {
		if b.uniformBuffers[i].Initialized() {
			device.DestroyBuffer(b.uniformBuffers[i], nil)
			b.uniformBuffers[i] = core1_0.Buffer{}
		}
		if b.uniformMemories[i].Initialized() {
			device.FreeMemory(b.uniformMemories[i], nil)
			b.uniformMemories[i] = core1_0.DeviceMemory{}
		}
	}
	if b.Layout.Initialized() {
		device.DestroyDescriptorSetLayout(b.Layout, nil)
		b.Layout = core1_0.DescriptorSetLayout{}
	}
}
