package render

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Surface errors reported by BeginFrame and EndFrame. They are transient: the
// caller is expected to skip the frame and let the next resize/redraw cycle
// reconfigure the swapchain.
var (
	// ErrSurfaceLost indicates the presentation surface is gone and must be
	// recreated before any further frame can be produced.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrSurfaceOutdated indicates the swapchain no longer matches the
	// surface (typically after a window resize) and needs reconfiguration.
	ErrSurfaceOutdated = errors.New("render: surface outdated")

	// ErrSurfaceTimeout indicates the next swapchain image was not available
	// in time for this frame.
	ErrSurfaceTimeout = errors.New("render: surface acquire timed out")
)

// classifySurfaceResult converts a Vulkan result code from image acquisition
// or presentation into the surface error taxonomy. Success codes return nil.
func classifySurfaceResult(res common.VkResult, err error) error {
	switch res {
	case khr_surface.VKErrorSurfaceLost:
		return errors.Mark(errors.Errorf("present surface lost (%s)", res), ErrSurfaceLost)
	case khr_swapchain.VKErrorOutOfDate, khr_swapchain.VKSuboptimal:
		return errors.Mark(errors.Errorf("swapchain out of date (%s)", res), ErrSurfaceOutdated)
	case common.VKTimeout, common.VKNotReady:
		return errors.Mark(errors.Errorf("swapchain image not ready (%s)", res), ErrSurfaceTimeout)
	}

	return err
}

// IsSurfaceLost reports whether err is a lost-surface condition.
func IsSurfaceLost(err error) bool {
	return errors.Is(err, ErrSurfaceLost)
}

// IsTransient reports whether err is one of the per-frame surface conditions
// that resolve on a subsequent frame.
func IsTransient(err error) bool {
	return errors.Is(err, ErrSurfaceLost) ||
		errors.Is(err, ErrSurfaceOutdated) ||
		errors.Is(err, ErrSurfaceTimeout)
}
