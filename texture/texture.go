// Package texture loads image data into sampled Vulkan images and builds the
// material descriptor sets bound at slot 0.
package texture

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/hhllhhyyds/vulkan-dance/render"
)

// Texture is a sampled 2D image together with its view and sampler.
type Texture struct {
	Image   core1_0.Image
	Memory  core1_0.DeviceMemory
	View    core1_0.ImageView
	Sampler core1_0.Sampler

	Width  int
	Height int
}

// FromBytes decodes encoded image data (PNG or JPEG) and uploads it as a
// device-local sampled texture.
func FromBytes(ctx *render.Context, data []byte, label string) (*Texture, error) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode texture %q", label)
	}
	return FromImage(ctx, decoded, label)
}

// FromImage uploads a decoded image as a device-local sampled texture.
func FromImage(ctx *render.Context, img image.Image, label string) (*Texture, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	stagingBuffer, stagingMemory, err := ctx.CreateBuffer(
		len(rgba.Pix),
		core1_0.BufferUsageTransferSrc,
		core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create staging buffer for texture %q", label)
	}
	defer ctx.Device.DestroyBuffer(stagingBuffer, nil)
	defer ctx.Device.FreeMemory(stagingMemory, nil)

	err = ctx.WriteMemory(stagingMemory, 0, rgba.Pix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write staging buffer for texture %q", label)
	}

	t := &Texture{Width: width, Height: height}

	t.Image, t.Memory, err = ctx.CreateImage(width, height, 1,
		core1_0.FormatR8G8B8A8SRGB,
		core1_0.ImageTilingOptimal,
		core1_0.ImageUsageTransferDst|core1_0.ImageUsageSampled,
		core1_0.MemoryPropertyDeviceLocal)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create image for texture %q", label)
	}

	err = ctx.TransitionImageLayout(t.Image, core1_0.ImageLayoutUndefined, core1_0.ImageLayoutTransferDstOptimal, 1)
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, err
	}
	err = ctx.CopyBufferToImage(stagingBuffer, t.Image, width, height)
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, err
	}
	err = ctx.TransitionImageLayout(t.Image, core1_0.ImageLayoutTransferDstOptimal, core1_0.ImageLayoutShaderReadOnlyOptimal, 1)
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, err
	}

	t.View, err = ctx.CreateImageView(t.Image, core1_0.FormatR8G8B8A8SRGB, core1_0.ImageAspectColor, 1)
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, errors.Wrapf(err, "failed to create image view for texture %q", label)
	}

	properties, err := ctx.InstanceDriver.GetPhysicalDeviceProperties(ctx.PhysicalDevice)
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, err
	}

	t.Sampler, _, err = ctx.Device.CreateSampler(nil, core1_0.SamplerCreateInfo{
		MagFilter:    core1_0.FilterLinear,
		MinFilter:    core1_0.FilterLinear,
		AddressModeU: core1_0.SamplerAddressModeRepeat,
		AddressModeV: core1_0.SamplerAddressModeRepeat,
		AddressModeW: core1_0.SamplerAddressModeRepeat,

		AnisotropyEnable: true,
		MaxAnisotropy:    properties.Limits.MaxSamplerAnisotropy,

		BorderColor: core1_0.BorderColorIntOpaqueBlack,

		MipmapMode: core1_0.SamplerMipmapModeLinear,
		MinLod:     0,
		MaxLod:     1,
	})
	if err != nil {
		t.Destroy(ctx.Device)
		return nil, errors.Wrapf(err, "failed to create sampler for texture %q", label)
	}

	return t, nil
}

func (t *Texture) Destroy(device core1_0.CoreDeviceDriver) {
	if t.Sampler.Initialized() {
		device.DestroySampler(t.Sampler, nil)
		t.Sampler = core1_0.Sampler{}
	}
	if t.View.Initialized() {
		device.DestroyImageView(t.View, nil)
		t.View = core1_0.ImageView{}
	}
	if t.Image.Initialized() {
		device.DestroyImage(t.Image, nil)
		t.Image = core1_0.Image{}
	}
	if t.Memory.Initialized() {
		device.FreeMemory(t.Memory, nil)
		t.Memory = core1_0.DeviceMemory{}
	}
}
