package render

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Frame is one acquired swapchain image with a command buffer ready for
// recording. Obtained from BeginFrame and handed back to EndFrame.
type Frame struct {
	ImageIndex    int
	CommandBuffer core1_0.CommandBuffer
	frameIndex    int
}

// Slot is the frame-in-flight index, in [0, MaxFramesInFlight). Per-frame
// host-visible resources indexed by Slot are safe to write: BeginFrame has
// already waited on this slot's fence.
func (f *Frame) Slot() int {
	return f.frameIndex
}

func (c *Context) createCommandBuffers() error {
	buffers, _, err := c.Device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        c.CommandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: MaxFramesInFlight,
	})
	if err != nil {
		return err
	}
	c.commandBuffers = buffers
	return nil
}

func (c *Context) createSyncObjects() error {
	for i := 0; i < MaxFramesInFlight; i++ {
		semaphore, _, err := c.Device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		c.imageAvailableSemaphore = append(c.imageAvailableSemaphore, semaphore)

		fence, _, err := c.Device.CreateFence(nil, core1_0.FenceCreateInfo{
			Flags: core1_0.FenceCreateSignaled,
		})
		if err != nil {
			return err
		}

		c.inFlightFence = append(c.inFlightFence, fence)
	}

	return c.createImageSyncObjects()
}

// createImageSyncObjects builds the per-image sync state: one render-finished
// semaphore per swapchain image plus the imagesInFlight fence table. Called
// on startup and again after every swapchain recreation, since the image
// count can change and the old semaphores belong to retired presents.
func (c *Context) createImageSyncObjects() error {
	for _, semaphore := range c.renderFinishedSemaphore {
		c.Device.DestroySemaphore(semaphore, nil)
	}
	c.renderFinishedSemaphore = nil

	for i := 0; i < len(c.SwapchainImages); i++ {
		semaphore, _, err := c.Device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		c.renderFinishedSemaphore = append(c.renderFinishedSemaphore, semaphore)
	}

	c.imagesInFlight = make([]core1_0.Fence, len(c.SwapchainImages))
	return nil
}

// BeginFrame waits for the frame slot's fence, acquires the next swapchain
// image, and begins the slot's command buffer. Transient surface conditions
// come back as taxonomy errors the caller can log and skip.
func (c *Context) BeginFrame() (*Frame, error) {
	fences := []core1_0.Fence{c.inFlightFence[c.currentFrame]}

	_, err := c.Device.WaitForFences(true, common.NoTimeout, fences...)
	if err != nil {
		return nil, err
	}

	imageIndex, res, err := c.SwapchainExtension.AcquireNextImage(c.Swapchain, common.NoTimeout, &c.imageAvailableSemaphore[c.currentFrame], nil)
	if cerr := classifySurfaceResult(res, err); cerr != nil {
		return nil, cerr
	}

	if c.imagesInFlight[imageIndex].Initialized() {
		_, err := c.Device.WaitForFences(true, common.NoTimeout, c.imagesInFlight[imageIndex])
		if err != nil {
			return nil, err
		}
	}
	c.imagesInFlight[imageIndex] = c.inFlightFence[c.currentFrame]

	_, err = c.Device.ResetFences(fences...)
	if err != nil {
		return nil, err
	}

	buffer := c.commandBuffers[c.currentFrame]
	_, err = c.Device.BeginCommandBuffer(buffer, core1_0.CommandBufferBeginInfo{})
	if err != nil {
		return nil, err
	}

	return &Frame{
		ImageIndex:    imageIndex,
		CommandBuffer: buffer,
		frameIndex:    c.currentFrame,
	}, nil
}

// EndFrame closes the frame's command buffer, submits it, and presents the
// image. Outdated or lost surfaces come back as taxonomy errors; the frame
// slot still advances so the next BeginFrame uses fresh sync objects.
func (c *Context) EndFrame(frame *Frame) error {
	_, err := c.Device.EndCommandBuffer(frame.CommandBuffer)
	if err != nil {
		return err
	}

	_, err = c.Device.QueueSubmit(c.GraphicsQueue, &c.inFlightFence[frame.frameIndex],
		core1_0.SubmitInfo{
			WaitSemaphores:   []core1_0.Semaphore{c.imageAvailableSemaphore[frame.frameIndex]},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{frame.CommandBuffer},
			SignalSemaphores: []core1_0.Semaphore{c.renderFinishedSemaphore[frame.ImageIndex]},
		},
	)
	if err != nil {
		return err
	}

	res, err := c.SwapchainExtension.QueuePresent(c.PresentQueue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{c.renderFinishedSemaphore[frame.ImageIndex]},
		Swapchains:     []khr_swapchain.Swapchain{c.Swapchain},
		ImageIndices:   []int{frame.ImageIndex},
	})

	c.currentFrame = (c.currentFrame + 1) % MaxFramesInFlight

	return classifySurfaceResult(res, err)
}

// Pass wraps an in-progress render pass on a frame's command buffer. It
// satisfies model.RenderPass so model draw helpers can record into it.
type Pass struct {
	device core1_0.CoreDeviceDriver
	buffer core1_0.CommandBuffer
	layout core1_0.PipelineLayout
}

// BeginRenderPass starts the context's render pass against the frame's
// framebuffer, clearing color and depth, and sets the full-extent viewport
// and scissor for pipelines built with dynamic viewport state.
func (c *Context) BeginRenderPass(frame *Frame, clearColor core1_0.ClearValueFloat) (*Pass, error) {
	err := c.Device.CmdBeginRenderPass(frame.CommandBuffer, core1_0.SubpassContentsInline,
		core1_0.RenderPassBeginInfo{
			RenderPass:  c.RenderPass,
			Framebuffer: c.swapchainFramebuffers[frame.ImageIndex],
			RenderArea: core1_0.Rect2D{
				Offset: core1_0.Offset2D{X: 0, Y: 0},
				Extent: c.Extent,
			},
			ClearValues: []core1_0.ClearValue{
				clearColor,
				core1_0.ClearValueDepthStencil{Depth: 1.0, Stencil: 0},
			},
		})
	if err != nil {
		return nil, err
	}

	c.Device.CmdSetViewport(frame.CommandBuffer, []core1_0.Viewport{
		{
			X:        0,
			Y:        0,
			Width:    float32(c.Extent.Width),
			Height:   float32(c.Extent.Height),
			MinDepth: 0,
			MaxDepth: 1,
		},
	})
	c.Device.CmdSetScissor(frame.CommandBuffer, []core1_0.Rect2D{
		{
			Offset: core1_0.Offset2D{X: 0, Y: 0},
			Extent: c.Extent,
		},
	})

	return &Pass{
		device: c.Device,
		buffer: frame.CommandBuffer,
	}, nil
}

// BindPipeline binds a graphics pipeline and remembers its layout for
// subsequent descriptor set binds.
func (p *Pass) BindPipeline(pipeline core1_0.Pipeline, layout core1_0.PipelineLayout) {
	p.layout = layout
	p.device.CmdBindPipeline(p.buffer, core1_0.PipelineBindPointGraphics, pipeline)
}

// BindVertexBuffers binds vertex buffers starting at the given slot.
func (p *Pass) BindVertexBuffers(firstBinding int, buffers []core1_0.Buffer, offsets []int) {
	p.device.CmdBindVertexBuffers(p.buffer, firstBinding, buffers, offsets)
}

// BindIndexBuffer binds a buffer of 32-bit indices.
func (p *Pass) BindIndexBuffer(buffer core1_0.Buffer, offset int, indexType core1_0.IndexType) {
	p.device.CmdBindIndexBuffer(p.buffer, buffer, offset, indexType)
}

// BindDescriptorSets binds descriptor sets against the bound pipeline's
// layout starting at the given set slot.
func (p *Pass) BindDescriptorSets(firstSet int, sets []core1_0.DescriptorSet) {
	p.device.CmdBindDescriptorSets(p.buffer, core1_0.PipelineBindPointGraphics, p.layout, firstSet, sets, nil)
}

// Draw issues a non-indexed draw.
func (p *Pass) Draw(vertexCount, instanceCount, firstVertex, firstInstance int) {
	p.device.CmdDraw(p.buffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexed issues an indexed draw.
func (p *Pass) DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) {
	p.device.CmdDrawIndexed(p.buffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// End closes the render pass.
func (p *Pass) End() {
	p.device.CmdEndRenderPass(p.buffer)
}
