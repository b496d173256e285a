package render

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// MaxFramesInFlight is the number of frames the CPU may record ahead of the
// GPU.
const MaxFramesInFlight = 2

var validationLayers = []string{"VK_LAYER_KHRONOS_validation"}
var deviceExtensions = []string{khr_swapchain.ExtensionName}

// Options configures context creation. The zero value enables validation and
// skips the pipeline cache.
type Options struct {
	AppName string

	// EnableValidation turns on the Khronos validation layer and a debug
	// messenger that forwards messages to the standard logger.
	EnableValidation bool

	// PipelineCachePath, when set, seeds the pipeline cache from this file if
	// its header matches the device, and is where SavePipelineCache writes.
	PipelineCachePath string
}

type queueFamilyIndices struct {
	Graphics *int
	Present  *int
}

func (i *queueFamilyIndices) IsComplete() bool {
	return i.Graphics != nil && i.Present != nil
}

type swapchainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// Context owns the negotiated adapter, logical device, queues, and the
// presentable surface with its swapchain, sized to the window. It is created
// once per window and shared by everything that talks to the GPU.
//
// A Context is not safe for concurrent use. All methods are expected to be
// called from the single event-loop thread.
type Context struct {
	Window *sdl.Window

	GlobalDriver   core1_0.GlobalDriver
	InstanceDriver core1_0.CoreInstanceDriver
	Device         core1_0.CoreDeviceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	SurfaceExtension khr_surface.ExtensionDriver
	Surface          khr_surface.Surface

	PhysicalDevice core1_0.PhysicalDevice

	GraphicsQueue core1_0.Queue
	PresentQueue  core1_0.Queue

	SwapchainExtension khr_swapchain.ExtensionDriver
	Swapchain          khr_swapchain.Swapchain
	SwapchainImages    []core1_0.Image
	SwapchainFormat    core1_0.Format
	Extent             core1_0.Extent2D

	swapchainImageViews   []core1_0.ImageView
	swapchainFramebuffers []core1_0.Framebuffer

	RenderPass  core1_0.RenderPass
	DepthFormat core1_0.Format

	depthImage       core1_0.Image
	depthImageMemory core1_0.DeviceMemory
	depthImageView   core1_0.ImageView

	CommandPool    core1_0.CommandPool
	DescriptorPool core1_0.DescriptorPool
	PipelineCache  core1_0.PipelineCache

	commandBuffers          []core1_0.CommandBuffer
	imageAvailableSemaphore []core1_0.Semaphore
	renderFinishedSemaphore []core1_0.Semaphore
	inFlightFence           []core1_0.Fence
	imagesInFlight          []core1_0.Fence
	currentFrame            int

	// Two-phase resize: SetWindowResized records, ResizeSurfaceIfNeeded
	// applies on the next frame.
	width, height int32
	sizeChanged   bool

	opts Options
}

// NewContext negotiates a device and builds a presentable surface for the
// given window. Every example shares this bootstrap. Failures here indicate
// an unusable host environment and are fatal to the caller.
func NewContext(window *sdl.Window, opts Options) (*Context, error) {
	if opts.AppName == "" {
		opts.AppName = "vulkan-dance"
	}

	c := &Context{
		Window: window,
		opts:   opts,
	}

	w, h := window.VulkanGetDrawableSize()
	c.width, c.height = w, h

	var err error
	c.GlobalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, errors.Wrap(err, "loading vulkan driver")
	}

	steps := []func() error{
		c.createInstance,
		c.setupDebugMessenger,
		c.createSurface,
		c.pickPhysicalDevice,
		c.createLogicalDevice,
		c.createSwapchain,
		c.createImageViews,
		c.createRenderPass,
		c.createDepthResources,
		c.createFramebuffers,
		c.createCommandPool,
		c.createDescriptorPool,
		c.createPipelineCache,
		c.createCommandBuffers,
		c.createSyncObjects,
	}
	for _, step := range steps {
		err = step()
		if err != nil {
			c.Destroy()
			return nil, err
		}
	}

	return c, nil
}

func (c *Context) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    c.opts.AppName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "vulkan-dance",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	sdlExtensions := c.Window.VulkanGetInstanceExtensions()
	extensions, _, err := c.GlobalDriver.AvailableExtensions()
	if err != nil {
		return err
	}

	for _, ext := range sdlExtensions {
		_, hasExt := extensions[ext]
		if !hasExt {
			return errors.Errorf("createInstance: window system requires missing extension %s", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if c.opts.EnableValidation {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	}

	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	layers, _, err := c.GlobalDriver.AvailableLayers()
	if err != nil {
		return err
	}

	if c.opts.EnableValidation {
		for _, layer := range validationLayers {
			_, hasValidation := layers[layer]
			if !hasValidation {
				return errors.Errorf("createInstance: validation layer %s not available- install LunarG Vulkan SDK", layer)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		instanceOptions.Next = c.debugMessengerOptions()
	}

	c.InstanceDriver, _, err = c.GlobalDriver.CreateInstance(nil, instanceOptions)
	return err
}

func (c *Context) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    c.logDebug,
	}
}

func (c *Context) setupDebugMessenger() error {
	if !c.opts.EnableValidation {
		return nil
	}

	var err error
	c.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(c.InstanceDriver)
	c.debugMessenger, _, err = c.debugDriver.CreateDebugUtilsMessenger(nil, c.debugMessengerOptions())
	return err
}

func (c *Context) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("[%s %s] - %s", severity, msgType, data.Message)
	return false
}

func (c *Context) createSurface() error {
	c.SurfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(c.InstanceDriver)
	surface, err := vkng_sdl2.CreateSurface(c.InstanceDriver.Instance(), c.SurfaceExtension, c.Window)
	if err != nil {
		return err
	}

	c.Surface = surface
	return nil
}

func (c *Context) pickPhysicalDevice() error {
	physicalDevices, _, err := c.InstanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return err
	}

	for _, device := range physicalDevices {
		if c.isDeviceSuitable(device) {
			c.PhysicalDevice = device
			break
		}
	}

	if !c.PhysicalDevice.Initialized() {
		return errors.Errorf("failed to find a suitable GPU!")
	}

	return nil
}

func (c *Context) isDeviceSuitable(device core1_0.PhysicalDevice) bool {
	indices, err := c.findQueueFamilies(device)
	if err != nil {
		return false
	}

	extensionsSupported := c.checkDeviceExtensionSupport(device)

	var swapchainAdequate bool
	if extensionsSupported {
		swapchainSupport, err := c.querySwapchainSupport(device)
		if err != nil {
			return false
		}

		swapchainAdequate = len(swapchainSupport.Formats) > 0 && len(swapchainSupport.PresentModes) > 0
	}

	features := c.InstanceDriver.GetPhysicalDeviceFeatures(device)
	return indices.IsComplete() && extensionsSupported && swapchainAdequate && features.SamplerAnisotropy
}

func (c *Context) checkDeviceExtensionSupport(device core1_0.PhysicalDevice) bool {
	extensions, _, err := c.InstanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return false
	}

	for _, extension := range deviceExtensions {
		_, hasExtension := extensions[extension]
		if !hasExtension {
			return false
		}
	}

	return true
}

func (c *Context) findQueueFamilies(device core1_0.PhysicalDevice) (queueFamilyIndices, error) {
	indices := queueFamilyIndices{}
	queueFamilies := c.InstanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if (queueFamily.QueueFlags & core1_0.QueueGraphics) != 0 {
			indices.Graphics = new(int)
			*indices.Graphics = queueFamilyIdx
		}

		supported, _, err := c.SurfaceExtension.GetPhysicalDeviceSurfaceSupport(c.Surface, device, queueFamilyIdx)
		if err != nil {
			return indices, err
		}

		if supported {
			indices.Present = new(int)
			*indices.Present = queueFamilyIdx
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}

func (c *Context) createLogicalDevice() error {
	indices, err := c.findQueueFamilies(c.PhysicalDevice)
	if err != nil {
		return err
	}

	uniqueQueueFamilies := []int{*indices.Graphics}
	if uniqueQueueFamilies[0] != *indices.Present {
		uniqueQueueFamilies = append(uniqueQueueFamilies, *indices.Present)
	}

	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range uniqueQueueFamilies {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	var extensionNames []string
	extensionNames = append(extensionNames, deviceExtensions...)

	// Necessary to run on top of vulkan portability (mobile & mac)
	extensions, _, err := c.InstanceDriver.EnumerateDeviceExtensionProperties(c.PhysicalDevice)
	if err != nil {
		return err
	}

	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	c.Device, _, err = c.InstanceDriver.CreateDevice(c.PhysicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: queueFamilyOptions,
		EnabledFeatures: &core1_0.PhysicalDeviceFeatures{
			SamplerAnisotropy: true,
		},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return err
	}

	c.GraphicsQueue = c.Device.GetQueue(*indices.Graphics, 0)
	c.PresentQueue = c.Device.GetQueue(*indices.Present, 0)
	return nil
}

func (c *Context) createCommandPool() error {
	indices, err := c.findQueueFamilies(c.PhysicalDevice)
	if err != nil {
		return err
	}

	pool, _, err := c.Device.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: *indices.Graphics,
	})
	if err != nil {
		return err
	}
	c.CommandPool = pool

	return nil
}

func (c *Context) createDescriptorPool() error {
	var err error
	c.DescriptorPool, _, err = c.Device.CreateDescriptorPool(nil, core1_0.DescriptorPoolCreateInfo{
		Flags:   core1_0.DescriptorPoolCreateFreeDescriptorSet,
		MaxSets: 64,
		PoolSizes: []core1_0.DescriptorPoolSize{
			{
				Type:            core1_0.DescriptorTypeUniformBuffer,
				DescriptorCount: 32,
			},
			{
				Type:            core1_0.DescriptorTypeCombinedImageSampler,
				DescriptorCount: 32,
			},
		},
	})
	return err
}

// WaitIdle blocks until the device has finished all submitted work.
func (c *Context) WaitIdle() error {
	_, err := c.Device.DeviceWaitIdle()
	return err
}

// Destroy releases every GPU resource owned by the context, in reverse
// creation order. Safe to call on a partially constructed context.
func (c *Context) Destroy() {
	if c.Device != nil {
		_, _ = c.Device.DeviceWaitIdle()
	}

	c.destroySwapchainResources()

	for _, fence := range c.inFlightFence {
		c.Device.DestroyFence(fence, nil)
	}
	c.inFlightFence = nil

	for _, semaphore := range c.renderFinishedSemaphore {
		c.Device.DestroySemaphore(semaphore, nil)
	}
	c.renderFinishedSemaphore = nil

	for _, semaphore := range c.imageAvailableSemaphore {
		c.Device.DestroySemaphore(semaphore, nil)
	}
	c.imageAvailableSemaphore = nil

	if len(c.commandBuffers) > 0 {
		c.Device.FreeCommandBuffers(c.commandBuffers...)
		c.commandBuffers = nil
	}

	if c.RenderPass.Initialized() {
		c.Device.DestroyRenderPass(c.RenderPass, nil)
		c.RenderPass = core1_0.RenderPass{}
	}

	if c.PipelineCache.Initialized() {
		c.Device.DestroyPipelineCache(c.PipelineCache, nil)
		c.PipelineCache = core1_0.PipelineCache{}
	}

	if c.DescriptorPool.Initialized() {
		c.Device.DestroyDescriptorPool(c.DescriptorPool, nil)
		c.DescriptorPool = core1_0.DescriptorPool{}
	}

	if c.CommandPool.Initialized() {
		c.Device.DestroyCommandPool(c.CommandPool, nil)
		c.CommandPool = core1_0.CommandPool{}
	}

	if c.Device != nil {
		c.Device.DestroyDevice(nil)
		c.Device = nil
	}

	if c.debugMessenger.Initialized() {
		c.debugDriver.DestroyDebugUtilsMessenger(c.debugMessenger, nil)
		c.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
	}

	if c.Surface.Initialized() {
		c.SurfaceExtension.DestroySurface(c.Surface, nil)
		c.Surface = khr_surface.Surface{}
	}

	if c.InstanceDriver != nil {
		c.InstanceDriver.DestroyInstance(nil)
		c.InstanceDriver = nil
	}
}
