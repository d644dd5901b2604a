// Package workspace maintains the fixed pool of named workspaces and
// the active selection. Workspaces are created once at startup and
// never destroyed; switching only moves the active index.
package workspace

import (
	"github.com/deskmux/deskmux/internal/floating"
	"github.com/deskmux/deskmux/internal/tiling"
)

// Style selects which layout engine backs every workspace in a registry.
type Style int

const (
	// StyleTiling backs each workspace with a split tree.
	StyleTiling Style = iota
	// StyleFloating backs each workspace with a free-form desktop.
	StyleFloating
)

func (s Style) String() string {
	if s == StyleFloating {
		return "floating"
	}
	return "tiling"
}

// ParseStyle maps a config string to a Style. Unknown values fall
// back to tiling.
func ParseStyle(s string) Style {
	if s == "floating" {
		return StyleFloating
	}
	return StyleTiling
}

// Workspace is one named layout surface. Exactly one of Tree and
// Desktop is set, matching the registry's style.
type Workspace struct {
	Name    string
	Tree    *tiling.Tree
	Desktop *floating.Desktop
}

// Registry holds the workspace pool and the active index.
type Registry struct {
	workspaces []*Workspace
	active     int
	style      Style
}

// New builds the pool from the configured names. Tiling workspaces
// share the id source so container ids stay unique across the pool.
// An empty name list still yields one workspace so the shell always
// has an active surface.
func New(names []string, style Style, ids tiling.IDSource) *Registry {
	if len(names) == 0 {
		names = []string{"1"}
	}
	r := &Registry{style: style}
	for _, name := range names {
		ws := &Workspace{Name: name}
		if style == StyleFloating {
			ws.Desktop = floating.NewDesktop(name)
		} else {
			ws.Tree = tiling.NewTree(ids)
		}
		r.workspaces = append(r.workspaces, ws)
	}
	return r
}

// Style reports the layout style the registry was built with.
func (r *Registry) Style() Style { return r.style }

// Count reports the number of workspaces in the pool.
func (r *Registry) Count() int { return len(r.workspaces) }

// Active returns the active workspace.
func (r *Registry) Active() *Workspace { return r.workspaces[r.active] }

// ActiveIndex reports the active workspace's position in the pool.
func (r *Registry) ActiveIndex() int { return r.active }

// ActiveName reports the active workspace's name.
func (r *Registry) ActiveName() string { return r.workspaces[r.active].Name }

// Workspace returns the workspace at index i, or nil when out of range.
func (r *Registry) Workspace(i int) *Workspace {
	if i < 0 || i >= len(r.workspaces) {
		return nil
	}
	return r.workspaces[i]
}

// Names lists the workspace names in pool order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.workspaces))
	for i, ws := range r.workspaces {
		names[i] = ws.Name
	}
	return names
}

// SwitchTo activates the workspace at index i. Out-of-range indices
// are ignored. Reports whether the active workspace changed.
func (r *Registry) SwitchTo(i int) bool {
	if i < 0 || i >= len(r.workspaces) || i == r.active {
		return false
	}
	r.active = i
	return true
}

// Next activates the following workspace, wrapping at the end.
func (r *Registry) Next() {
	r.active = (r.active + 1) % len(r.workspaces)
}

// Prev activates the preceding workspace, wrapping at the start.
func (r *Registry) Prev() {
	r.active = (r.active - 1 + len(r.workspaces)) % len(r.workspaces)
}

// Rename sets the name of the workspace at index i. Out-of-range
// indices and empty names are ignored.
func (r *Registry) Rename(i int, name string) {
	if i < 0 || i >= len(r.workspaces) || name == "" {
		return
	}
	r.workspaces[i].Name = name
	if r.workspaces[i].Desktop != nil {
		r.workspaces[i].Desktop.Name = name
	}
}
