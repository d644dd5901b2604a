package appmgr_test

import (
	"testing"

	"github.com/deskmux/deskmux/internal/appmgr"
)

// =============================================================================
// Launch and Kill Tests
// =============================================================================

func TestLaunchCreatesInstance(t *testing.T) {
	m := appmgr.New()

	inst := m.Launch("shell")
	if inst == nil {
		t.Fatal("Expected an instance")
	}
	if inst.ID == "" {
		t.Error("Expected a non-empty instance id")
	}
	if inst.Title != "Shell" {
		t.Errorf("Expected catalog title, got %q", inst.Title)
	}
	if inst.LaunchedAt.IsZero() {
		t.Error("Expected a launch timestamp")
	}
	if got := m.Get(inst.ID); got != inst {
		t.Error("Expected Get to return the running instance")
	}
}

func TestLaunchUnknownNameUsesNameAsTitle(t *testing.T) {
	m := appmgr.New()

	inst := m.Launch("htop")
	if inst == nil {
		t.Fatal("Expected launch to accept names outside the catalog")
	}
	if inst.Title != "htop" {
		t.Errorf("Expected title to fall back to the name, got %q", inst.Title)
	}
}

func TestLaunchEmptyNameIsRefused(t *testing.T) {
	m := appmgr.New()
	if m.Launch("") != nil {
		t.Error("Expected nil for an empty name")
	}
}

func TestLaunchAssignsUniqueIDs(t *testing.T) {
	m := appmgr.New()

	a := m.Launch("shell")
	b := m.Launch("shell")
	if a.ID == b.ID {
		t.Errorf("Expected unique ids, both were %q", a.ID)
	}
	if len(m.ListRunning()) != 2 {
		t.Errorf("Expected 2 running instances, got %d", len(m.ListRunning()))
	}
}

func TestKillRemovesInstance(t *testing.T) {
	m := appmgr.New()
	inst := m.Launch("editor")

	if !m.Kill(inst.ID) {
		t.Error("Expected kill of a running instance to succeed")
	}
	if m.Kill(inst.ID) {
		t.Error("Expected second kill to report false")
	}
	if m.Get(inst.ID) != nil {
		t.Error("Expected killed instance to be gone")
	}
	if len(m.ListRunning()) != 0 {
		t.Errorf("Expected no running instances, got %d", len(m.ListRunning()))
	}
}

func TestListRunningKeepsLaunchOrder(t *testing.T) {
	m := appmgr.New()
	a := m.Launch("shell")
	b := m.Launch("editor")
	c := m.Launch("files")

	m.Kill(b.ID)

	running := m.ListRunning()
	if len(running) != 2 || running[0] != a || running[1] != c {
		t.Errorf("Expected [shell files] in launch order, got %d instances", len(running))
	}
}

// =============================================================================
// Focus History Tests
// =============================================================================

func TestFocusHistoryTracksMostRecent(t *testing.T) {
	m := appmgr.New()
	a := m.Launch("shell")
	m.Launch("editor")
	c := m.Launch("files")

	if got := m.LastFocused(); got != c {
		t.Errorf("Expected newest launch focused, got %v", got)
	}

	if !m.Focus(a.ID) {
		t.Error("Expected focus of a running instance to succeed")
	}
	if got := m.LastFocused(); got != a {
		t.Errorf("Expected explicit focus to win, got %v", got)
	}

	m.Kill(a.ID)
	if got := m.LastFocused(); got != c {
		t.Errorf("Expected focus to fall back to the previous entry, got %v", got)
	}
}

func TestFocusUnknownIDIsRefused(t *testing.T) {
	m := appmgr.New()
	if m.Focus("nope") {
		t.Error("Expected focus of an unknown id to be refused")
	}
}

// =============================================================================
// Launch History Tests
// =============================================================================

func TestRecentsDedupeMostRecentFirst(t *testing.T) {
	m := appmgr.New()
	m.Launch("shell")
	m.Launch("editor")
	m.Launch("shell")

	recents := m.Recents()
	if len(recents) != 2 || recents[0] != "shell" || recents[1] != "editor" {
		t.Errorf("Expected [shell editor], got %v", recents)
	}
}

func TestRecentsCapped(t *testing.T) {
	m := appmgr.New()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, name := range names {
		m.Launch(name)
	}

	recents := m.Recents()
	if len(recents) != 10 {
		t.Fatalf("Expected recents capped at 10, got %d", len(recents))
	}
	if recents[0] != "l" {
		t.Errorf("Expected most recent first, got %q", recents[0])
	}
}

func TestLaunchCount(t *testing.T) {
	m := appmgr.New()
	m.Launch("shell")
	m.Launch("shell")
	m.Launch("editor")

	if m.LaunchCount("shell") != 2 {
		t.Errorf("Expected 2 launches of shell, got %d", m.LaunchCount("shell"))
	}
	if m.LaunchCount("never") != 0 {
		t.Errorf("Expected 0 launches of never, got %d", m.LaunchCount("never"))
	}
}

// =============================================================================
// Search Tests
// =============================================================================

func TestSearchPrefixBeatsSubstring(t *testing.T) {
	m := appmgr.New()
	m.Register(appmgr.Meta{Name: "dash", Title: "Dashboard", Keywords: []string{"shell"}})

	results := m.Search("sh")
	if len(results) == 0 {
		t.Fatal("Expected matches for \"sh\"")
	}
	if results[0].Name != "shell" {
		t.Errorf("Expected prefix match first, got %q", results[0].Name)
	}

	foundDash := false
	for _, meta := range results[1:] {
		if meta.Name == "dash" {
			foundDash = true
		}
	}
	if !foundDash {
		t.Error("Expected keyword substring match to follow prefix matches")
	}
}

func TestSearchMatchesKeywordsAndTitle(t *testing.T) {
	m := appmgr.New()

	results := m.Search("cpu")
	if len(results) != 1 || results[0].Name != "monitor" {
		t.Errorf("Expected keyword match on monitor, got %v", results)
	}
}

func TestSearchFuzzyCatchesTypos(t *testing.T) {
	m := appmgr.New()

	results := m.Search("editr")
	if len(results) != 1 || results[0].Name != "editor" {
		t.Errorf("Expected fuzzy match on editor, got %v", results)
	}
}

func TestSearchRejectsGarbage(t *testing.T) {
	m := appmgr.New()

	if results := m.Search("zzz"); len(results) != 0 {
		t.Errorf("Expected no matches, got %v", results)
	}
}

func TestSearchFrequencyBreaksTies(t *testing.T) {
	m := appmgr.New()
	m.Launch("scratch")
	m.Launch("scratch")
	m.Launch("shell")

	results := m.Search("s")
	if len(results) < 2 {
		t.Fatalf("Expected at least 2 matches, got %d", len(results))
	}
	if results[0].Name != "scratch" || results[1].Name != "shell" {
		t.Errorf("Expected frequency order [scratch shell], got [%s %s]",
			results[0].Name, results[1].Name)
	}
}

func TestSearchEmptyQuerySuggestsRecents(t *testing.T) {
	m := appmgr.New()
	m.Launch("monitor")

	results := m.Search("")
	if len(results) == 0 || results[0].Name != "monitor" {
		t.Errorf("Expected recent app first in suggestions, got %v", results)
	}
	if len(results) != len(m.Catalog()) {
		t.Errorf("Expected every catalog entry suggested once, got %d of %d",
			len(results), len(m.Catalog()))
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	m := appmgr.New()
	before := len(m.Catalog())

	m.Register(appmgr.Meta{Name: "shell", Title: "Zsh"})
	if len(m.Catalog()) != before {
		t.Errorf("Expected catalog size unchanged, got %d", len(m.Catalog()))
	}
	meta, ok := m.Lookup("shell")
	if !ok || meta.Title != "Zsh" {
		t.Errorf("Expected replaced title, got %q", meta.Title)
	}
}
