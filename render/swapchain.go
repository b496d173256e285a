package render

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func (c *Context) querySwapchainSupport(device core1_0.PhysicalDevice) (swapchainSupportDetails, error) {
	var details swapchainSupportDetails
	var err error

	details.Capabilities, _, err = c.SurfaceExtension.GetPhysicalDeviceSurfaceCapabilities(c.Surface, device)
	if err != nil {
		return details, err
	}

	details.Formats, _, err = c.SurfaceExtension.GetPhysicalDeviceSurfaceFormats(c.Surface, device)
	if err != nil {
		return details, err
	}

	details.PresentModes, _, err = c.SurfaceExtension.GetPhysicalDeviceSurfacePresentModes(c.Surface, device)
	return details, err
}

func chooseSwapSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return availableFormats[0]
}

func chooseSwapPresentMode(availablePresentModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == khr_surface.PresentModeMailbox {
			return presentMode
		}
	}

	return khr_surface.PresentModeFIFO
}

func chooseSwapExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	width := drawableWidth
	height := drawableHeight

	if width < capabilities.MinImageExtent.Width {
		width = capabilities.MinImageExtent.Width
	}
	if width > capabilities.MaxImageExtent.Width {
		width = capabilities.MaxImageExtent.Width
	}
	if height < capabilities.MinImageExtent.Height {
		height = capabilities.MinImageExtent.Height
	}
	if height > capabilities.MaxImageExtent.Height {
		height = capabilities.MaxImageExtent.Height
	}

	return core1_0.Extent2D{Width: width, Height: height}
}

func (c *Context) createSwapchain() error {
	if c.SwapchainExtension == nil {
		c.SwapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(c.Device)
	}

	swapchainSupport, err := c.querySwapchainSupport(c.PhysicalDevice)
	if err != nil {
		return err
	}

	surfaceFormat := chooseSwapSurfaceFormat(swapchainSupport.Formats)
	presentMode := chooseSwapPresentMode(swapchainSupport.PresentModes)

	w, h := c.Window.VulkanGetDrawableSize()
	extent := chooseSwapExtent(swapchainSupport.Capabilities, int(w), int(h))

	imageCount := swapchainSupport.Capabilities.MinImageCount + 1
	if swapchainSupport.Capabilities.MaxImageCount > 0 && swapchainSupport.Capabilities.MaxImageCount < imageCount {
		imageCount = swapchainSupport.Capabilities.MaxImageCount
	}

	sharingMode := core1_0.SharingModeExclusive
	var familyIndices []int

	indices, err := c.findQueueFamilies(c.PhysicalDevice)
	if err != nil {
		return err
	}

	if *indices.Graphics != *indices.Present {
		sharingMode = core1_0.SharingModeConcurrent
		familyIndices = append(familyIndices, *indices.Graphics, *indices.Present)
	}

	swapchain, _, err := c.SwapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: c.Surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: familyIndices,

		PreTransform:   swapchainSupport.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return err
	}
	c.Extent = extent
	c.Swapchain = swapchain
	c.SwapchainFormat = surfaceFormat.Format

	return nil
}

func (c *Context) createImageViews() error {
	images, _, err := c.SwapchainExtension.GetSwapchainImages(c.Swapchain)
	if err != nil {
		return err
	}
	c.SwapchainImages = images

	var imageViews []core1_0.ImageView
	for _, image := range images {
		view, err := c.CreateImageView(image, c.SwapchainFormat, core1_0.ImageAspectColor, 1)
		if err != nil {
			return err
		}

		imageViews = append(imageViews, view)
	}
	c.swapchainImageViews = imageViews

	return nil
}

func (c *Context) createRenderPass() error {
	depthFormat, err := c.findDepthFormat()
	if err != nil {
		return err
	}
	c.DepthFormat = depthFormat

	renderPass, _, err := c.Device.CreateRenderPass(nil, core1_0.RenderPassCreateInfo{
		Attachments: []core1_0.AttachmentDescription{
			{
				Format:         c.SwapchainFormat,
				Samples:        core1_0.Samples1,
				LoadOp:         core1_0.AttachmentLoadOpClear,
				StoreOp:        core1_0.AttachmentStoreOpStore,
				StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
				StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
				InitialLayout:  core1_0.ImageLayoutUndefined,
				FinalLayout:    khr_swapchain.ImageLayoutPresentSrc,
			},
			{
				Format:         depthFormat,
				Samples:        core1_0.Samples1,
				LoadOp:         core1_0.AttachmentLoadOpClear,
				StoreOp:        core1_0.AttachmentStoreOpDontCare,
				StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
				StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
				InitialLayout:  core1_0.ImageLayoutUndefined,
				FinalLayout:    core1_0.ImageLayoutDepthStencilAttachmentOptimal,
			},
		},
		Subpasses: []core1_0.SubpassDescription{
			{
				PipelineBindPoint: core1_0.PipelineBindPointGraphics,
				ColorAttachments: []core1_0.AttachmentReference{
					{
						Attachment: 0,
						Layout:     core1_0.ImageLayoutColorAttachmentOptimal,
					},
				},
				DepthStencilAttachment: &core1_0.AttachmentReference{
					Attachment: 1,
					Layout:     core1_0.ImageLayoutDepthStencilAttachmentOptimal,
				},
			},
		},
		SubpassDependencies: []core1_0.SubpassDependency{
			{
				SrcSubpass: core1_0.SubpassExternal,
				DstSubpass: 0,

				SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput | core1_0.PipelineStageEarlyFragmentTests,
				SrcAccessMask: 0,

				DstStageMask:  core1_0.PipelineStageColorAttachmentOutput | core1_0.PipelineStageEarlyFragmentTests,
				DstAccessMask: core1_0.AccessColorAttachmentWrite | core1_0.AccessDepthStencilAttachmentWrite,
			},
		},
	})
	if err != nil {
		return err
	}

	c.RenderPass = renderPass

	return nil
}

func (c *Context) findDepthFormat() (core1_0.Format, error) {
	return c.findSupportedFormat(
		[]core1_0.Format{core1_0.FormatD32SignedFloat, core1_0.FormatD32SignedFloatS8UnsignedInt, core1_0.FormatD24UnsignedNormalizedS8UnsignedInt},
		core1_0.ImageTilingOptimal,
		core1_0.FormatFeatureDepthStencilAttachment)
}

func (c *Context) createDepthResources() error {
	var err error
	c.depthImage, c.depthImageMemory, err = c.CreateImage(
		c.Extent.Width,
		c.Extent.Height,
		1,
		c.DepthFormat,
		core1_0.ImageTilingOptimal,
		core1_0.ImageUsageDepthStencilAttachment,
		core1_0.MemoryPropertyDeviceLocal)
	if err != nil {
		return err
	}

	c.depthImageView, err = c.CreateImageView(c.depthImage, c.DepthFormat, core1_0.ImageAspectDepth, 1)
	return err
}

func (c *Context) createFramebuffers() error {
	for _, imageView := range c.swapchainImageViews {
		framebuffer, _, err := c.Device.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
			RenderPass: c.RenderPass,
			Layers:     1,
			Attachments: []core1_0.ImageView{
				imageView,
				c.depthImageView,
			},
			Width:  c.Extent.Width,
			Height: c.Extent.Height,
		})
		if err != nil {
			return err
		}

		c.swapchainFramebuffers = append(c.swapchainFramebuffers, framebuffer)
	}

	return nil
}

// SetWindowResized records a new drawable size. The surface itself is only
// reconfigured by the next ResizeSurfaceIfNeeded call: window systems deliver
// resizes at a higher rate than frames are produced, and reconfiguring on
// every event causes visible flicker during interactive resize.
func (c *Context) SetWindowResized(width, height int32) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
}

// ResizeSurfaceIfNeeded rebuilds the swapchain when a resize has been
// recorded since the last applied configuration. Call at the top of each
// render.
func (c *Context) ResizeSurfaceIfNeeded() error {
	if !c.sizeChanged {
		return nil
	}
	c.sizeChanged = false
	return c.recreateSwapchain()
}

func (c *Context) recreateSwapchain() error {
	w, h := c.Window.VulkanGetDrawableSize()
	if w == 0 || h == 0 {
		return nil
	}

	_, err := c.Device.DeviceWaitIdle()
	if err != nil {
		return err
	}

	c.destroySwapchainResources()

	err = c.createSwapchain()
	if err != nil {
		return err
	}

	err = c.createImageViews()
	if err != nil {
		return err
	}

	err = c.createDepthResources()
	if err != nil {
		return err
	}

	err = c.createFramebuffers()
	if err != nil {
		return err
	}

	// The device is idle, so the old per-image semaphores are unreferenced
	// and can be replaced along with the fence table.
	return c.createImageSyncObjects()
}

func (c *Context) destroySwapchainResources() {
	if c.depthImageView.Initialized() {
		c.Device.DestroyImageView(c.depthImageView, nil)
		c.depthImageView = core1_0.ImageView{}
	}

	if c.depthImage.Initialized() {
		c.Device.DestroyImage(c.depthImage, nil)
		c.depthImage = core1_0.Image{}
	}

	if c.depthImageMemory.Initialized() {
		c.Device.FreeMemory(c.depthImageMemory, nil)
		c.depthImageMemory = core1_0.DeviceMemory{}
	}

	for _, framebuffer := range c.swapchainFramebuffers {
		c.Device.DestroyFramebuffer(framebuffer, nil)
	}
	c.swapchainFramebuffers = nil

	for _, imageView := range c.swapchainImageViews {
		c.Device.DestroyImageView(imageView, nil)
	}
	c.swapchainImageViews = nil

	if c.Swapchain.Initialized() {
		c.SwapchainExtension.DestroySwapchain(c.Swapchain, nil)
		c.Swapchain = khr_swapchain.Swapchain{}
	}
}
