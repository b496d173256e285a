package app

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/hhllhhyyds/vulkan-dance/render"
)

type fakeApp struct {
	calls []string

	resizes   [][2]int32
	renderErr error
	destroyed bool
}

func (f *fakeApp) SetWindowResized(width, height int32) {
	f.calls = append(f.calls, "resize")
	f.resizes = append(f.resizes, [2]int32{width, height})
}

func (f *fakeApp) ResizeSurfaceIfNeeded() error {
	f.calls = append(f.calls, "apply-resize")
	return nil
}

func (f *fakeApp) KeyboardInput(event *sdl.KeyboardEvent) bool {
	f.calls = append(f.calls, "keyboard")
	return false
}

func (f *fakeApp) Update() {
	f.calls = append(f.calls, "update")
}

func (f *fakeApp) Render() error {
	f.calls = append(f.calls, "render")
	return f.renderErr
}

func (f *fakeApp) Destroy() {
	f.destroyed = true
}

func testShell(t *testing.T, app *fakeApp) (*Shell[*fakeApp], *int) {
	t.Helper()

	constructions := 0
	s := NewShell[*fakeApp]("test", 800, 600, func(ctx context.Context, window *sdl.Window) (*fakeApp, error) {
		constructions++
		return app, nil
	})

	s.requestRedraw = func() {}
	return s, &constructions
}

func TestResumedConstructsOnce(t *testing.T) {
	app := &fakeApp{}
	s, constructions := testShell(t, app)

	if err := s.handleResumed(); err != nil {
		t.Fatal(err)
	}
	if err := s.handleResumed(); err != nil {
		t.Fatal(err)
	}

	if *constructions != 1 {
		t.Errorf("constructed %d times, want 1", *constructions)
	}
}

func TestResumedPropagatesConstructionError(t *testing.T) {
	boom := errors.New("no adapter")
	s := NewShell[*fakeApp]("test", 800, 600, func(ctx context.Context, window *sdl.Window) (*fakeApp, error) {
		return nil, boom
	})
	s.requestRedraw = func() {}

	err := s.handleResumed()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped construction error", err)
	}
	if s.initialized {
		t.Error("shell marked initialized after failed construction")
	}
}

func TestZeroSizeResizeIgnored(t *testing.T) {
	app := &fakeApp{}
	s, _ := testShell(t, app)
	if err := s.handleResumed(); err != nil {
		t.Fatal(err)
	}

	s.handleResize(0, 600)
	s.handleResize(800, 0)
	if len(app.resizes) != 0 {
		t.Errorf("zero-size resize forwarded: %v", app.resizes)
	}

	s.handleResize(1024, 768)
	if len(app.resizes) != 1 || app.resizes[0] != [2]int32{1024, 768} {
		t.Errorf("resizes = %v, want [[1024 768]]", app.resizes)
	}
}

func TestEventsBeforeResumedIgnored(t *testing.T) {
	app := &fakeApp{}
	s, _ := testShell(t, app)

	s.handleResize(800, 600)
	s.handleKeyboard(&sdl.KeyboardEvent{})
	s.handleRedraw()

	if len(app.calls) != 0 {
		t.Errorf("events reached the application before construction: %v", app.calls)
	}
}

func TestRedrawOrderAndRerequest(t *testing.T) {
	app := &fakeApp{}
	s, _ := testShell(t, app)

	redraws := 0
	s.requestRedraw = func() { redraws++ }

	if err := s.handleResumed(); err != nil {
		t.Fatal(err)
	}
	if redraws != 1 {
		t.Fatalf("redraws after init = %d, want 1", redraws)
	}

	s.handleRedraw()

	want := []string{"update", "apply-resize", "render"}
	if len(app.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", app.calls, want)
	}
	for i := range want {
		if app.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", app.calls, want)
		}
	}

	if redraws != 2 {
		t.Errorf("redraws after frame = %d, want 2", redraws)
	}
}

func TestRedrawSurvivesRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"surface lost", render.ErrSurfaceLost},
		{"surface outdated", render.ErrSurfaceOutdated},
		{"timeout", render.ErrSurfaceTimeout},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			app := &fakeApp{renderErr: test.err}
			s, _ := testShell(t, app)

			redraws := 0
			s.requestRedraw = func() { redraws++ }

			if err := s.handleResumed(); err != nil {
				t.Fatal(err)
			}
			s.handleRedraw()
			s.handleRedraw()

			renders := 0
			for _, call := range app.calls {
				if call == "render" {
					renders++
				}
			}
			if renders != 2 {
				t.Errorf("renders = %d, want 2 (frames must keep coming)", renders)
			}
			if redraws != 3 {
				t.Errorf("redraws = %d, want 3", redraws)
			}
		})
	}
}
