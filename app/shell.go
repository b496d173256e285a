package app

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"github.com/hhllhhyyds/vulkan-dance/render"
)

// SDL requires window creation and event dispatch to stay on one OS thread.
// Pinning in init catches the main goroutine before it can be rescheduled.
func init() {
	runtime.LockOSThread()
}

// Shell owns at most one Application behind a mutex and drives it from the
// SDL event loop. The mutex exists to make the ownership rule explicit; the
// loop itself is single threaded.
type Shell[A Application] struct {
	Title  string
	Width  int32
	Height int32

	construct Constructor[A]

	mu          sync.Mutex
	app         A
	initialized bool

	window      *sdl.Window
	redrawEvent uint32

	// requestRedraw and prePresentNotify are swappable for tests. SDL fires
	// a requested redraw once, so the shell re-requests after every frame.
	requestRedraw    func()
	prePresentNotify func()
}

func NewShell[A Application](title string, width, height int32, construct Constructor[A]) *Shell[A] {
	s := &Shell[A]{
		Title:     title,
		Width:     width,
		Height:    height,
		construct: construct,
	}
	s.requestRedraw = s.pushRedrawEvent
	// SDL has no pre-present notification; the hook is kept so applications
	// run against a stable redraw sequence if one appears.
	s.prePresentNotify = func() {}
	return s
}

// Run opens the window and processes events until a quit or window-close
// request. Construction failure is fatal and returned. Run must be called
// from the main goroutine, which the package init pins to its OS thread.
func (s *Shell[A]) Run() error {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return errors.Wrap(err, "failed to initialize SDL")
	}
	defer sdl.Quit()

	s.window, err = sdl.CreateWindow(s.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		s.Width, s.Height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}
	defer s.window.Destroy()

	s.redrawEvent = sdl.RegisterEvents(1)

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.initialized {
			s.app.Destroy()
		}
	}()

	for {
		event := sdl.WaitEvent()
		if event == nil {
			continue
		}

		switch e := event.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SHOWN:
				err = s.handleResumed()
				if err != nil {
					return err
				}
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				s.handleResize(e.Data1, e.Data2)
			case sdl.WINDOWEVENT_CLOSE:
				return nil
			}
		case *sdl.KeyboardEvent:
			s.handleKeyboard(e)
		case *sdl.UserEvent:
			if e.Type == s.redrawEvent {
				s.handleRedraw()
			}
		}
	}
}

// handleResumed constructs the Application on the first call; later calls
// are no-ops. Construction runs in its own goroutine and is waited on, so
// constructors are free to block.
func (s *Shell[A]) handleResumed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		app, err := s.construct(ctx, s.window)
		if err != nil {
			return err
		}
		s.app = app
		return nil
	})
	err := group.Wait()
	if err != nil {
		return errors.Wrap(err, "failed to construct application")
	}

	s.initialized = true
	s.requestRedraw()
	return nil
}

// handleResize records new dimensions for the next frame. Zero dimensions
// mean the window is minimized and are ignored.
func (s *Shell[A]) handleResize(width, height int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if width == 0 || height == 0 {
		return
	}
	s.app.SetWindowResized(width, height)
}

func (s *Shell[A]) handleKeyboard(event *sdl.KeyboardEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	// The consumed result is unused for now; nothing sits behind the
	// application in the input stack.
	_ = s.app.KeyboardInput(event)
}

// handleRedraw runs one frame: update, apply any pending resize, render.
// Transient surface errors are logged and the frame skipped; a lost surface
// is logged distinctly but recovery is likewise left to the next frame.
// Another redraw is always requested afterward.
func (s *Shell[A]) handleRedraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.app.Update()

	err := s.app.ResizeSurfaceIfNeeded()
	if err != nil {
		log.Printf("failed to resize surface: %v", err)
	}

	s.prePresentNotify()

	err = s.app.Render()
	switch {
	case render.IsSurfaceLost(err):
		log.Printf("surface lost, skipping frame: %v", err)
	case err != nil:
		log.Printf("render error, skipping frame: %v", err)
	}

	s.requestRedraw()
}

func (s *Shell[A]) pushRedrawEvent() {
	_, err := sdl.PushEvent(&sdl.UserEvent{Type: s.redrawEvent})
	if err != nil {
		log.Printf("failed to request redraw: %v", err)
	}
}
