package window

import "github.com/go-moor/moor/pkg/geometry"

// Headless is an in-memory Backend. It backs the engine's tests and
// lets embedders drive the docking model without a real window system.
type Headless struct {
	stages []*HeadlessStage
}

// NewHeadless creates an empty headless backend.
func NewHeadless() *Headless {
	return &Headless{}
}

// CreateStage creates an in-memory stage.
func (h *Headless) CreateStage(opts StageOptions) (Stage, error) {
	stage := &HeadlessStage{opts: opts}
	h.stages = append(h.stages, stage)
	return stage, nil
}

// Stages returns every stage ever created, including closed ones.
func (h *Headless) Stages() []*HeadlessStage {
	return h.stages
}

// OpenStages returns the stages currently shown.
func (h *Headless) OpenStages() []*HeadlessStage {
	var open []*HeadlessStage
	for _, s := range h.stages {
		if s.shown && !s.closed {
			open = append(open, s)
		}
	}
	return open
}

// HeadlessStage is the Stage implementation of the Headless backend.
type HeadlessStage struct {
	opts   StageOptions
	bounds geometry.Rect
	shown  bool
	closed bool

	resizeHandlers []resizeEntry
	nextResizeID   int
}

type resizeEntry struct {
	id int
	fn func(geometry.Size)
}

// Show makes the stage visible at the given bounds.
func (s *HeadlessStage) Show(bounds geometry.Rect) {
	s.bounds = bounds
	s.shown = true
}

// Close marks the stage closed.
func (s *HeadlessStage) Close() {
	s.closed = true
	s.shown = false
}

// Bounds returns the current stage bounds.
func (s *HeadlessStage) Bounds() geometry.Rect {
	return s.bounds
}

// SetBounds moves and resizes the stage, firing resize listeners when
// the size changes.
func (s *HeadlessStage) SetBounds(bounds geometry.Rect) {
	oldSize := s.bounds.Size()
	s.bounds = bounds
	if oldSize != bounds.Size() {
		s.notifyResize(bounds.Size())
	}
}

// AddResizeListener registers a size-change callback.
func (s *HeadlessStage) AddResizeListener(fn func(geometry.Size)) func() {
	s.nextResizeID++
	id := s.nextResizeID
	s.resizeHandlers = append(s.resizeHandlers, resizeEntry{id: id, fn: fn})
	return func() {
		for i, e := range s.resizeHandlers {
			if e.id == id {
				s.resizeHandlers = append(s.resizeHandlers[:i], s.resizeHandlers[i+1:]...)
				return
			}
		}
	}
}

// Title returns the stage title passed at creation.
func (s *HeadlessStage) Title() string {
	return s.opts.Title
}

// Owner returns the owner window passed at creation.
func (s *HeadlessStage) Owner() Window {
	return s.opts.Owner
}

// Shown reports whether the stage is currently visible.
func (s *HeadlessStage) Shown() bool {
	return s.shown && !s.closed
}

// Closed reports whether the stage has been closed.
func (s *HeadlessStage) Closed() bool {
	return s.closed
}

// RequestClose simulates the user pressing the window close control.
func (s *HeadlessStage) RequestClose() {
	if s.opts.OnCloseRequest != nil {
		s.opts.OnCloseRequest()
	}
}

func (s *HeadlessStage) notifyResize(size geometry.Size) {
	handlers := make([]resizeEntry, len(s.resizeHandlers))
	copy(handlers, s.resizeHandlers)
	for _, e := range handlers {
		e.fn(size)
	}
}
