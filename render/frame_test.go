package render

import (
	"testing"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
)

func TestFrameSlotIsFrameInFlightIndex(t *testing.T) {
	for i := 0; i < MaxFramesInFlight; i++ {
		f := Frame{ImageIndex: 2, frameIndex: i}
		if f.Slot() != i {
			t.Errorf("slot = %d, want %d", f.Slot(), i)
		}
	}
}

// semaphoreDevice counts semaphore churn; every other driver call panics
// through the embedded nil interface.
type semaphoreDevice struct {
	core1_0.CoreDeviceDriver
	created   int
	destroyed int
}

func (d *semaphoreDevice) CreateSemaphore(allocationCallbacks *loader.AllocationCallbacks, o core1_0.SemaphoreCreateInfo) (core1_0.Semaphore, common.VkResult, error) {
	d.created++
	return core1_0.Semaphore{}, common.VKSuccess, nil
}

func (d *semaphoreDevice) DestroySemaphore(semaphore core1_0.Semaphore, allocationCallbacks *loader.AllocationCallbacks) {
	d.destroyed++
}

func TestImageSyncObjectsFollowSwapchainImageCount(t *testing.T) {
	device := &semaphoreDevice{}
	c := &Context{
		Device:          device,
		SwapchainImages: make([]core1_0.Image, 3),
	}

	if err := c.createImageSyncObjects(); err != nil {
		t.Fatal(err)
	}
	if device.created != 3 || device.destroyed != 0 {
		t.Fatalf("initial pass created %d, destroyed %d", device.created, device.destroyed)
	}

	// A recreated swapchain can come back with a different image count; the
	// old per-image semaphores must be released and replaced.
	c.SwapchainImages = make([]core1_0.Image, 4)
	if err := c.createImageSyncObjects(); err != nil {
		t.Fatal(err)
	}

	if device.destroyed != 3 {
		t.Errorf("destroyed %d old semaphores, want 3", device.destroyed)
	}
	if got := len(c.renderFinishedSemaphore); got != 4 {
		t.Errorf("got %d per-image semaphores, want 4", got)
	}
	if got := len(c.imagesInFlight); got != 4 {
		t.Errorf("got %d in-flight fence slots, want 4", got)
	}
}
