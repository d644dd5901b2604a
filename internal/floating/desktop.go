package floating

// Desktop is one named, independently focused collection of windows.
// The window list keeps insertion order; stacking is derived on demand
// by StackOrder rather than stored per window.
type Desktop struct {
	Name    string
	Windows []*Window

	// Focused is the focused window's id, 0 when the desktop holds no
	// focus (ids are allocated from 1).
	Focused int
}

// NewDesktop returns an empty desktop.
func NewDesktop(name string) *Desktop {
	return &Desktop{Name: name}
}

// Window returns the window with the given id, or nil.
func (d *Desktop) Window(id int) *Window {
	for _, w := range d.Windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// FocusedWindow returns the focused window, or nil when none is focused.
func (d *Desktop) FocusedWindow() *Window {
	if d.Focused == 0 {
		return nil
	}
	return d.Window(d.Focused)
}

// Focus moves focus to the given window if it lives on this desktop.
func (d *Desktop) Focus(id int) {
	if d.Window(id) != nil {
		d.Focused = id
	}
}

// AddWindow appends the window and focuses it.
func (d *Desktop) AddWindow(w *Window) {
	if w == nil {
		return
	}
	d.Windows = append(d.Windows, w)
	d.Focused = w.ID
}

// RemoveWindow deletes the window and returns it so the caller can hand
// it to another desktop. When the focused window is removed, focus falls
// back to the last remaining window.
func (d *Desktop) RemoveWindow(id int) *Window {
	for i, w := range d.Windows {
		if w.ID != id {
			continue
		}
		d.Windows = append(d.Windows[:i], d.Windows[i+1:]...)
		if d.Focused == id {
			d.Focused = 0
			if len(d.Windows) > 0 {
				d.Focused = d.Windows[len(d.Windows)-1].ID
			}
		}
		return w
	}
	return nil
}

// CycleFocus advances (or retreats, when reverse) focus through the
// window list, wrapping at the ends and skipping minimized windows.
func (d *Desktop) CycleFocus(reverse bool) {
	var visible []int
	for _, w := range d.Windows {
		if w.State != StateMinimized {
			visible = append(visible, w.ID)
		}
	}
	if len(visible) == 0 {
		return
	}

	current := 0
	for i, id := range visible {
		if id == d.Focused {
			current = i
			break
		}
	}

	var next int
	if reverse {
		next = current - 1
		if next < 0 {
			next = len(visible) - 1
		}
	} else {
		next = (current + 1) % len(visible)
	}
	d.Focused = visible[next]
}

// StackOrder returns the non-minimized windows bottom to top: regular
// windows first, always-on-top windows above them, the focused window
// last within its layer. The order is derived from list order plus the
// two flags; nothing is stored.
func (d *Desktop) StackOrder() []*Window {
	var regular, onTop []*Window
	var regularFocused, onTopFocused *Window

	for _, w := range d.Windows {
		if w.State == StateMinimized {
			continue
		}
		switch {
		case w.AlwaysOnTop && w.ID == d.Focused:
			onTopFocused = w
		case w.AlwaysOnTop:
			onTop = append(onTop, w)
		case w.ID == d.Focused:
			regularFocused = w
		default:
			regular = append(regular, w)
		}
	}

	stack := regular
	if regularFocused != nil {
		stack = append(stack, regularFocused)
	}
	stack = append(stack, onTop...)
	if onTopFocused != nil {
		stack = append(stack, onTopFocused)
	}
	return stack
}

// Cascade rearranges every non-minimized window diagonally with a local
// stair-step offset: x = 2+off, y = 1+off/2, advancing by 3 per window
// and wrapping to 0 once the offset passes 15. Sizes and states are left
// alone.
func (d *Desktop) Cascade() {
	offset := 0
	for _, w := range d.Windows {
		if w.State == StateMinimized {
			continue
		}
		w.Rect.X = 2 + offset
		w.Rect.Y = 1 + offset/2
		offset += 3
		if offset > 15 {
			offset = 0
		}
	}
}

// MinimizedWindows returns the minimized windows in list order, for
// taskbar-style display.
func (d *Desktop) MinimizedWindows() []*Window {
	var minimized []*Window
	for _, w := range d.Windows {
		if w.State == StateMinimized {
			minimized = append(minimized, w)
		}
	}
	return minimized
}
