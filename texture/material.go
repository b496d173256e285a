package texture

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/hhllhhyyds/vulkan-dance/render"
)

// NewMaterialLayout creates the descriptor set layout shared by all
// materials: a single combined image sampler at binding 0, visible to the
// fragment stage.
func NewMaterialLayout(ctx *render.Context) (core1_0.DescriptorSetLayout, error) {
	layout, _, err := ctx.Device.CreateDescriptorSetLayout(nil, core1_0.DescriptorSetLayoutCreateInfo{
		Bindings: []core1_0.DescriptorSetLayoutBinding{
			{
				Binding:         0,
				DescriptorType:  core1_0.DescriptorTypeCombinedImageSampler,
				DescriptorCount: 1,

				StageFlags: core1_0.StageFragment,
			},
		},
	})
	if err != nil {
		return core1_0.DescriptorSetLayout{}, errors.Wrap(err, "failed to create material descriptor set layout")
	}
	return layout, nil
}

// NewMaterialSet allocates a descriptor set for tex from the shared pool and
// points binding 0 at its view and sampler.
func NewMaterialSet(ctx *render.Context, layout core1_0.DescriptorSetLayout, tex *Texture) (core1_0.DescriptorSet, error) {
	sets, _, err := ctx.Device.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: ctx.DescriptorPool,
		SetLayouts:     []core1_0.DescriptorSetLayout{layout},
	})
	if err != nil {
		return core1_0.DescriptorSet{}, errors.Wrap(err, "failed to allocate material descriptor set")
	}

	err = ctx.Device.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
		{
			DstSet:          sets[0],
			DstBinding:      0,
			DstArrayElement: 0,

			DescriptorType: core1_0.DescriptorTypeCombinedImageSampler,

			ImageInfo: []core1_0.DescriptorImageInfo{
				{
					ImageView:   tex.View,
					Sampler:     tex.Sampler,
					ImageLayout: core1_0.ImageLayoutShaderReadOnlyOptimal,
				},
			},
		},
	}, nil)
	if err != nil {
		return core1_0.DescriptorSet{}, errors.Wrap(err, "failed to write material descriptor set")
	}

	return sets[0], nil
}
