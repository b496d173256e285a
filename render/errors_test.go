package render

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func TestClassifySurfaceResult(t *testing.T) {
	tests := []struct {
		name     string
		res      common.VkResult
		sentinel error
	}{
		{"surface lost", khr_surface.VKErrorSurfaceLost, ErrSurfaceLost},
		{"out of date", khr_swapchain.VKErrorOutOfDate, ErrSurfaceOutdated},
		{"suboptimal", khr_swapchain.VKSuboptimal, ErrSurfaceOutdated},
		{"timeout", common.VKTimeout, ErrSurfaceTimeout},
		{"not ready", common.VKNotReady, ErrSurfaceTimeout},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := classifySurfaceResult(test.res, nil)
			if !errors.Is(err, test.sentinel) {
				t.Errorf("classifySurfaceResult(%s) = %v, want %v", test.res, err, test.sentinel)
			}
			if !IsTransient(err) {
				t.Errorf("classifySurfaceResult(%s) not transient", test.res)
			}
		})
	}
}

func TestClassifySurfaceResultSuccess(t *testing.T) {
	if err := classifySurfaceResult(common.VKSuccess, nil); err != nil {
		t.Errorf("success classified as %v", err)
	}
}

func TestClassifySurfaceResultPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("device fault")
	err := classifySurfaceResult(common.VKErrorDeviceLost, boom)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the original error", err)
	}
	if IsTransient(err) {
		t.Error("device fault classified as transient")
	}
}

func TestIsSurfaceLostDistinguishesLost(t *testing.T) {
	lost := classifySurfaceResult(khr_surface.VKErrorSurfaceLost, nil)
	outdated := classifySurfaceResult(khr_swapchain.VKErrorOutOfDate, nil)

	if !IsSurfaceLost(lost) {
		t.Error("lost surface not detected")
	}
	if IsSurfaceLost(outdated) {
		t.Error("outdated surface misreported as lost")
	}
	if IsSurfaceLost(nil) {
		t.Error("nil misreported as lost")
	}
}
