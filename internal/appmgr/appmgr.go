// Package appmgr tracks launchable application definitions and the
// virtual instances hosted by layout containers. The layout engines
// store only (id, name, title) pairs; everything about an instance's
// lifecycle lives here. No processes are spawned: an instance is a
// bookkeeping record, not a PTY.
package appmgr

import (
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// maxRecents caps the recent-launch list used for launcher suggestions.
const maxRecents = 10

// fuzzyCutoff is the minimum normalized similarity for a catalog entry
// to count as a fuzzy match.
const fuzzyCutoff = 0.5

// Meta describes a launchable application in the catalog.
type Meta struct {
	Name     string
	Title    string
	Category string
	Keywords []string
}

// Instance is one running virtual application.
type Instance struct {
	ID         string
	Name       string
	Title      string
	LaunchedAt time.Time
}

// Manager owns the catalog, the running set, and the launch history.
type Manager struct {
	catalog []Meta
	byName  map[string]Meta

	running map[string]*Instance
	order   []string // running ids in launch order

	recents  []string // app names, most recent first
	launches map[string]int

	focus []string // running ids, most recently focused last
}

// DefaultCatalog is the builtin application set registered by New.
func DefaultCatalog() []Meta {
	return []Meta{
		{Name: "shell", Title: "Shell", Category: "system", Keywords: []string{"terminal", "console", "sh"}},
		{Name: "editor", Title: "Editor", Category: "tools", Keywords: []string{"text", "vim", "write"}},
		{Name: "files", Title: "File Browser", Category: "tools", Keywords: []string{"fm", "directory", "tree"}},
		{Name: "monitor", Title: "System Monitor", Category: "system", Keywords: []string{"top", "cpu", "memory"}},
		{Name: "scratch", Title: "Scratchpad", Category: "tools", Keywords: []string{"notes", "buffer"}},
	}
}

// New builds a manager holding the builtin catalog plus any extra
// definitions (typically from the user config).
func New(extra ...Meta) *Manager {
	m := &Manager{
		byName:   make(map[string]Meta),
		running:  make(map[string]*Instance),
		launches: make(map[string]int),
	}
	for _, meta := range DefaultCatalog() {
		m.Register(meta)
	}
	for _, meta := range extra {
		m.Register(meta)
	}
	return m
}

// Register adds a catalog entry, replacing any existing entry with the
// same name. Entries without a name are ignored.
func (m *Manager) Register(meta Meta) {
	if meta.Name == "" {
		return
	}
	if meta.Title == "" {
		meta.Title = meta.Name
	}
	if _, exists := m.byName[meta.Name]; exists {
		for i := range m.catalog {
			if m.catalog[i].Name == meta.Name {
				m.catalog[i] = meta
				break
			}
		}
	} else {
		m.catalog = append(m.catalog, meta)
	}
	m.byName[meta.Name] = meta
}

// Lookup returns the catalog entry for name.
func (m *Manager) Lookup(name string) (Meta, bool) {
	meta, ok := m.byName[name]
	return meta, ok
}

// Catalog lists the registered definitions in registration order.
func (m *Manager) Catalog() []Meta {
	out := make([]Meta, len(m.catalog))
	copy(out, m.catalog)
	return out
}

// Launch creates a running instance for name and records it in the
// launch history. Names outside the catalog are allowed: the launcher
// spawns whatever was typed, and the title falls back to the name.
func (m *Manager) Launch(name string) *Instance {
	if name == "" {
		return nil
	}
	title := name
	if meta, ok := m.byName[name]; ok {
		title = meta.Title
	}
	inst := &Instance{
		ID:         newInstanceID(),
		Name:       name,
		Title:      title,
		LaunchedAt: time.Now(),
	}
	m.running[inst.ID] = inst
	m.order = append(m.order, inst.ID)
	m.focus = append(m.focus, inst.ID)

	m.launches[name]++
	m.recordRecent(name)
	return inst
}

// Kill removes a running instance. Unknown ids are ignored.
func (m *Manager) Kill(id string) bool {
	if _, ok := m.running[id]; !ok {
		return false
	}
	delete(m.running, id)
	m.order = removeString(m.order, id)
	m.focus = removeString(m.focus, id)
	return true
}

// Focus raises a running instance to the top of the focus history.
func (m *Manager) Focus(id string) bool {
	if _, ok := m.running[id]; !ok {
		return false
	}
	m.focus = append(removeString(m.focus, id), id)
	return true
}

// Get returns the running instance with the given id.
func (m *Manager) Get(id string) *Instance {
	return m.running[id]
}

// LastFocused returns the most recently focused running instance.
func (m *Manager) LastFocused() *Instance {
	if len(m.focus) == 0 {
		return nil
	}
	return m.running[m.focus[len(m.focus)-1]]
}

// ListRunning lists running instances in launch order.
func (m *Manager) ListRunning() []*Instance {
	out := make([]*Instance, 0, len(m.order))
	for _, id := range m.order {
		if inst, ok := m.running[id]; ok {
			out = append(out, inst)
		}
	}
	return out
}

// Recents lists recently launched app names, most recent first.
func (m *Manager) Recents() []string {
	out := make([]string, len(m.recents))
	copy(out, m.recents)
	return out
}

// LaunchCount reports how many times name has been launched.
func (m *Manager) LaunchCount(name string) int {
	return m.launches[name]
}

// Search ranks catalog entries against the query. An exact name prefix
// beats a substring hit (name, title, or keyword), which beats a fuzzy
// name match; within a band, more frequently launched apps sort first.
// An empty query suggests recent apps followed by the rest of the
// catalog.
func (m *Manager) Search(query string) []Meta {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.suggestions()
	}

	var prefix, substring, fuzzy []Meta
	for _, meta := range m.catalog {
		name := strings.ToLower(meta.Name)
		switch {
		case strings.HasPrefix(name, query):
			prefix = append(prefix, meta)
		case m.substringMatch(meta, query):
			substring = append(substring, meta)
		case similarity(name, query) >= fuzzyCutoff:
			fuzzy = append(fuzzy, meta)
		}
	}

	m.sortByFrequency(prefix)
	m.sortByFrequency(substring)
	m.sortByFrequency(fuzzy)

	out := make([]Meta, 0, len(prefix)+len(substring)+len(fuzzy))
	out = append(out, prefix...)
	out = append(out, substring...)
	out = append(out, fuzzy...)
	return out
}

func (m *Manager) substringMatch(meta Meta, query string) bool {
	if strings.Contains(strings.ToLower(meta.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(meta.Title), query) {
		return true
	}
	for _, kw := range meta.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}

// suggestions lists recent apps first, then the remaining catalog in
// registration order.
func (m *Manager) suggestions() []Meta {
	seen := make(map[string]bool, len(m.recents))
	out := make([]Meta, 0, len(m.catalog))
	for _, name := range m.recents {
		if meta, ok := m.byName[name]; ok && !seen[name] {
			out = append(out, meta)
			seen[name] = true
		}
	}
	for _, meta := range m.catalog {
		if !seen[meta.Name] {
			out = append(out, meta)
		}
	}
	return out
}

func (m *Manager) sortByFrequency(metas []Meta) {
	sort.SliceStable(metas, func(i, j int) bool {
		return m.launches[metas[i].Name] > m.launches[metas[j].Name]
	})
}

func (m *Manager) recordRecent(name string) {
	m.recents = removeString(m.recents, name)
	m.recents = append([]string{name}, m.recents...)
	if len(m.recents) > maxRecents {
		m.recents = m.recents[:maxRecents]
	}
}

// similarity normalizes Levenshtein distance into [0,1], where 1 is an
// exact match.
func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func removeString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func newInstanceID() string {
	return uuid.New().String()
}
