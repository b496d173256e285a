package render

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// PipelineConfig is the per-example slice of graphics pipeline state. The
// rest (dynamic viewport and scissor, depth test, no blending) is fixed so
// pipelines survive swapchain recreation.
type PipelineConfig struct {
	VertexShader   []byte
	FragmentShader []byte

	VertexBindings   []core1_0.VertexInputBindingDescription
	VertexAttributes []core1_0.VertexInputAttributeDescription

	SetLayouts []core1_0.DescriptorSetLayout

	CullMode core1_0.CullModeFlags
}

// CreateGraphicsPipeline builds a pipeline layout and graphics pipeline
// against the context's render pass, going through the pipeline cache.
func (c *Context) CreateGraphicsPipeline(cfg PipelineConfig) (core1_0.Pipeline, core1_0.PipelineLayout, error) {
	vertShader, err := c.CreateShaderModule(cfg.VertexShader)
	if err != nil {
		return core1_0.Pipeline{}, core1_0.PipelineLayout{}, errors.Wrap(err, "failed to create vertex shader module")
	}
	defer c.Device.DestroyShaderModule(vertShader, nil)

	fragShader, err := c.CreateShaderModule(cfg.FragmentShader)
	if err != nil {
		return core1_0.Pipeline{}, core1_0.PipelineLayout{}, errors.Wrap(err, "failed to create fragment shader module")
	}
	defer c.Device.DestroyShaderModule(fragShader, nil)

	layout, _, err := c.Device.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{
		SetLayouts: cfg.SetLayouts,
	})
	if err != nil {
		return core1_0.Pipeline{}, core1_0.PipelineLayout{}, errors.Wrap(err, "failed to create pipeline layout")
	}

	pipelines, _, err := c.Device.CreateGraphicsPipelines(c.PipelineCache, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				{
					Stage:  core1_0.StageVertex,
					Module: vertShader,
					Name:   "main",
				},
				{
					Stage:  core1_0.StageFragment,
					Module: fragShader,
					Name:   "main",
				},
			},
			VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{
				VertexBindingDescriptions:   cfg.VertexBindings,
				VertexAttributeDescriptions: cfg.VertexAttributes,
			},
			InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
				Topology:               core1_0.PrimitiveTopologyTriangleList,
				PrimitiveRestartEnable: false,
			},
			// Counts only; the actual viewport and scissor are set per
			// frame through the dynamic state.
			ViewportState: &core1_0.PipelineViewportStateCreateInfo{
				Viewports: make([]core1_0.Viewport, 1),
				Scissors:  make([]core1_0.Rect2D, 1),
			},
			RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
				DepthClampEnable:        false,
				RasterizerDiscardEnable: false,

				PolygonMode: core1_0.PolygonModeFill,
				CullMode:    cfg.CullMode,
				FrontFace:   core1_0.FrontFaceCounterClockwise,

				DepthBiasEnable: false,

				LineWidth: 1.0,
			},
			MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
				SampleShadingEnable:  false,
				RasterizationSamples: core1_0.Samples1,
				MinSampleShading:     1.0,
			},
			DepthStencilState: &core1_0.PipelineDepthStencilStateCreateInfo{
				DepthTestEnable:  true,
				DepthWriteEnable: true,
				DepthCompareOp:   core1_0.CompareOpLess,
			},
			ColorBlendState: &core1_0.PipelineColorBlendStateCreateInfo{
				LogicOpEnabled: false,
				LogicOp:        core1_0.LogicOpCopy,

				BlendConstants: [4]float32{0, 0, 0, 0},
				Attachments: []core1_0.PipelineColorBlendAttachmentState{
					{
						BlendEnabled:   false,
						ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
					},
				},
			},
			DynamicState: &core1_0.PipelineDynamicStateCreateInfo{
				DynamicStates: []core1_0.DynamicState{
					core1_0.DynamicStateViewport,
					core1_0.DynamicStateScissor,
				},
			},
			Layout:            layout,
			RenderPass:        c.RenderPass,
			Subpass:           0,
			BasePipelineIndex: -1,
		},
	)
	if err != nil {
		c.Device.DestroyPipelineLayout(layout, nil)
		return core1_0.Pipeline{}, core1_0.PipelineLayout{}, errors.Wrap(err, "failed to create graphics pipeline")
	}

	return pipelines[0], layout, nil
}
