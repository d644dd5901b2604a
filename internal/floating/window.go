// Package floating implements the floating window set: independently
// positioned, overlapping windows grouped into desktops, with snap,
// maximize, minimize, and cascade arrangement. All geometry is clamped
// rather than rejected; operations never fail.
package floating

import "github.com/deskmux/deskmux/internal/geometry"

// State is a window's display state.
type State int

const (
	// StateNormal is a freely positioned window.
	StateNormal State = iota
	// StateMaximized occupies the full screen.
	StateMaximized
	// StateMinimized keeps its rect but is skipped by focus cycling
	// and, by convention, by rendering.
	StateMinimized
)

// SnapPosition names the screen region a snap occupies.
type SnapPosition int

const (
	// SnapLeft is the left half at full height.
	SnapLeft SnapPosition = iota
	// SnapRight is the right half at full height.
	SnapRight
	// SnapTopLeft is the top-left quarter.
	SnapTopLeft
	// SnapTopRight is the top-right quarter.
	SnapTopRight
	// SnapBottomLeft is the bottom-left quarter.
	SnapBottomLeft
	// SnapBottomRight is the bottom-right quarter.
	SnapBottomRight
)

// Window is one floating window. It carries no saved pre-maximize rect:
// Restore flips the state tag only, and preserving the prior Normal rect
// across a maximize is the caller's contract.
type Window struct {
	ID    int
	Name  string
	Title string
	Rect  geometry.Rect
	State State

	// AlwaysOnTop stacks the window above all others regardless of
	// focus order.
	AlwaysOnTop bool
	// Sticky asks the renderer to show the window on every desktop.
	// It never changes desktop membership.
	Sticky bool
}

// NewWindow returns a Normal-state window at rect.
func NewWindow(id int, name, title string, rect geometry.Rect) *Window {
	return &Window{ID: id, Name: name, Title: title, Rect: rect, State: StateNormal}
}

// MoveBy translates the window, keeping its rect fully within
// [0, screenW) x [0, screenH).
func (w *Window) MoveBy(dx, dy, screenW, screenH int) {
	w.Rect = w.Rect.Offset(dx, dy).ClampToScreen(screenW, screenH)
}

// ResizeBy grows or shrinks the window, clamped to the configured
// minimums. The screen bound is re-applied by the shell after resizing,
// not here.
func (w *Window) ResizeBy(dw, dh, minW, minH int) {
	w.Rect = w.Rect.Grow(dw, dh).ClampMinSize(minW, minH)
}

// Maximize fills the screen. This is the one state transition that
// overwrites the rect.
func (w *Window) Maximize(screenW, screenH int) {
	w.Rect = geometry.NewRect(0, 0, screenW, screenH)
	w.State = StateMaximized
}

// Restore returns the window to Normal. Only the state tag changes; the
// rect is retained verbatim. Calling Restore on a Normal window is a
// no-op.
func (w *Window) Restore() {
	w.State = StateNormal
}

// Minimize hides the window from focus cycling. Only the state tag
// changes; the rect is retained.
func (w *Window) Minimize() {
	w.State = StateMinimized
}

// Snap positions and sizes the window to exactly occupy the named screen
// region, flush against its edges, and returns it to Normal state. Halves
// span the full screen height; odd screen dimensions leave their slack
// cell on the far side.
func (w *Window) Snap(position SnapPosition, screenW, screenH int) {
	halfW := screenW / 2
	halfH := screenH / 2

	switch position {
	case SnapLeft:
		w.Rect = geometry.NewRect(0, 0, halfW, screenH)
	case SnapRight:
		w.Rect = geometry.NewRect(halfW, 0, halfW, screenH)
	case SnapTopLeft:
		w.Rect = geometry.NewRect(0, 0, halfW, halfH)
	case SnapTopRight:
		w.Rect = geometry.NewRect(halfW, 0, halfW, halfH)
	case SnapBottomLeft:
		w.Rect = geometry.NewRect(0, halfH, halfW, halfH)
	case SnapBottomRight:
		w.Rect = geometry.NewRect(halfW, halfH, halfW, halfH)
	}
	w.State = StateNormal
}
