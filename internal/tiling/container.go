// Package tiling implements the recursive split-container tree used by
// tiling workspaces. A tree is mutated in place by spawn/split/close/focus
// operations and never holds parent pointers; every operation is total and
// silently ignores structurally invalid requests.
package tiling

// Kind discriminates the container variants.
type Kind int

const (
	// KindEmpty is an unoccupied slot awaiting a spawn.
	KindEmpty Kind = iota
	// KindApp hosts a reference to a running application.
	KindApp
	// KindSplit holds an ordered row or column of child containers.
	KindSplit
	// KindTabbed is reserved for tab-group semantics. No operation
	// constructs or mutates it; every operation treats it as a no-op.
	KindTabbed
)

// Direction is the axis of a split.
type Direction int

const (
	// Horizontal lays children out left to right.
	Horizontal Direction = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// Toggle returns the opposite axis.
func (d Direction) Toggle() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the lowercase axis name.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FocusDir is a directional focus or movement request.
type FocusDir int

const (
	// FocusLeft moves toward lower indices of a horizontal split.
	FocusLeft FocusDir = iota
	// FocusRight moves toward higher indices of a horizontal split.
	FocusRight
	// FocusUp moves toward lower indices of a vertical split.
	FocusUp
	// FocusDown moves toward higher indices of a vertical split.
	FocusDown
)

// axis returns the split orientation this direction travels along and
// whether it heads toward lower indices.
func (d FocusDir) axis() (Direction, bool) {
	switch d {
	case FocusLeft:
		return Horizontal, true
	case FocusRight:
		return Horizontal, false
	case FocusUp:
		return Vertical, true
	default:
		return Vertical, false
	}
}

// Container is one node of the layout tree. Which fields are meaningful
// depends on Kind: App nodes carry Name and Title; Split (and the reserved
// Tabbed) nodes carry Children, Ratios, and Focused.
type Container struct {
	ID   int
	Kind Kind

	// App identity. Only display metadata lives here; the running
	// instance is owned by the app manager.
	Name  string
	Title string

	// Split state. Invariants after every mutation:
	// len(Children) == len(Ratios), sum(Ratios) ~ 1.0,
	// 0 <= Focused < len(Children), len(Children) >= 1.
	Direction Direction
	Children  []*Container
	Ratios    []float64
	Focused   int
}

// NewEmpty returns an unoccupied slot.
func NewEmpty(id int) *Container {
	return &Container{ID: id, Kind: KindEmpty}
}

// NewApp returns a container hosting an application reference.
func NewApp(id int, name, title string) *Container {
	return &Container{ID: id, Kind: KindApp, Name: name, Title: title}
}

// NewSplit returns a split along direction with the given children, each
// granted an equal ratio share and focus on the first child.
func NewSplit(id int, direction Direction, children ...*Container) *Container {
	ratios := make([]float64, len(children))
	for i := range ratios {
		ratios[i] = 1.0 / float64(len(children))
	}
	return &Container{
		ID:        id,
		Kind:      KindSplit,
		Direction: direction,
		Children:  children,
		Ratios:    ratios,
		Focused:   0,
	}
}

// IsEmpty reports whether the container is an unoccupied slot.
func (c *Container) IsEmpty() bool {
	return c != nil && c.Kind == KindEmpty
}

// IsApp reports whether the container hosts an application.
func (c *Container) IsApp() bool {
	return c != nil && c.Kind == KindApp
}

// IsSplit reports whether the container is a split node.
func (c *Container) IsSplit() bool {
	return c != nil && c.Kind == KindSplit
}

// FindFocusedApp descends through the focused child at each split (or the
// active tab of a tabbed group) until it reaches a leaf, returning that
// leaf if it hosts an application and nil otherwise.
func (c *Container) FindFocusedApp() *Container {
	switch c.Kind {
	case KindApp:
		return c
	case KindSplit, KindTabbed:
		if c.Focused < 0 || c.Focused >= len(c.Children) {
			return nil
		}
		return c.Children[c.Focused].FindFocusedApp()
	default:
		return nil
	}
}

// Apps returns every application leaf in the subtree in traversal order.
func (c *Container) Apps() []*Container {
	if c == nil {
		return nil
	}
	var apps []*Container
	c.walk(func(node *Container) {
		if node.Kind == KindApp {
			apps = append(apps, node)
		}
	})
	return apps
}

// walk visits the subtree depth-first, parents before children.
func (c *Container) walk(fn func(*Container)) {
	fn(c)
	for _, child := range c.Children {
		child.walk(fn)
	}
}
