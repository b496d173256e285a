package render

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSwapExtentUsesCurrentExtentWhenFixed(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent: core1_0.Extent2D{Width: 640, Height: 480},
	}

	extent := chooseSwapExtent(capabilities, 1920, 1080)
	if extent.Width != 640 || extent.Height != 480 {
		t.Errorf("extent = %v, want the surface's fixed 640x480", extent)
	}
}

func TestChooseSwapExtentClampsDrawableSize(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 100, Height: 100},
		MaxImageExtent: core1_0.Extent2D{Width: 2000, Height: 2000},
	}

	tests := []struct {
		name                  string
		width, height         int
		wantWidth, wantHeight int
	}{
		{"in range", 800, 600, 800, 600},
		{"below minimum", 10, 10, 100, 100},
		{"above maximum", 4000, 3000, 2000, 2000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			extent := chooseSwapExtent(capabilities, test.width, test.height)
			if extent.Width != test.wantWidth || extent.Height != test.wantHeight {
				t.Errorf("extent = %v, want %dx%d", extent, test.wantWidth, test.wantHeight)
			}
		})
	}
}

func TestChooseSwapSurfaceFormatPrefersSRGB(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := chooseSwapSurfaceFormat(formats)
	if chosen.Format != core1_0.FormatB8G8R8A8SRGB {
		t.Errorf("chose %v, want B8G8R8A8 SRGB", chosen.Format)
	}
}

func TestChooseSwapSurfaceFormatFallsBackToFirst(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := chooseSwapSurfaceFormat(formats)
	if chosen != formats[0] {
		t.Errorf("chose %v, want the first available format", chosen)
	}
}

func TestChooseSwapPresentModePrefersMailbox(t *testing.T) {
	withMailbox := []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox}
	if mode := chooseSwapPresentMode(withMailbox); mode != khr_surface.PresentModeMailbox {
		t.Errorf("mode = %v, want mailbox", mode)
	}

	withoutMailbox := []khr_surface.PresentMode{khr_surface.PresentModeImmediate}
	if mode := chooseSwapPresentMode(withoutMailbox); mode != khr_surface.PresentModeFIFO {
		t.Errorf("mode = %v, want FIFO fallback", mode)
	}
}

func TestSetWindowResizedRecordsOnce(t *testing.T) {
	c := &Context{width: 800, height: 600}

	c.SetWindowResized(800, 600)
	if c.sizeChanged {
		t.Error("unchanged size flagged a resize")
	}

	c.SetWindowResized(1024, 768)
	if !c.sizeChanged {
		t.Fatal("size change not recorded")
	}
	if c.width != 1024 || c.height != 768 {
		t.Errorf("recorded size = %dx%d, want 1024x768", c.width, c.height)
	}
}

func TestResizeSurfaceIfNeededNoopWithoutChange(t *testing.T) {
	// No device is attached; reaching recreateSwapchain would crash, which
	// is exactly what must not happen when nothing changed.
	c := &Context{width: 800, height: 600}
	if err := c.ResizeSurfaceIfNeeded(); err != nil {
		t.Fatal(err)
	}
}
