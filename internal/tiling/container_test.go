package tiling_test

import (
	"testing"

	"github.com/deskmux/deskmux/internal/tiling"
)

func TestDirectionToggle(t *testing.T) {
	if tiling.Horizontal.Toggle() != tiling.Vertical {
		t.Error("Expected horizontal to toggle to vertical")
	}
	if tiling.Vertical.Toggle() != tiling.Horizontal {
		t.Error("Expected vertical to toggle to horizontal")
	}
}

func TestNewSplitSharesEqually(t *testing.T) {
	split := tiling.NewSplit(1, tiling.Horizontal,
		tiling.NewEmpty(2), tiling.NewEmpty(3), tiling.NewEmpty(4), tiling.NewEmpty(5))

	if len(split.Ratios) != 4 {
		t.Fatalf("Expected 4 ratios, got %d", len(split.Ratios))
	}
	for i, r := range split.Ratios {
		if r != 0.25 {
			t.Errorf("Ratio %d = %f, want 0.25", i, r)
		}
	}
	if split.Focused != 0 {
		t.Errorf("Expected new split focused on first child, got %d", split.Focused)
	}
}

func TestAppsCollectsLeavesInOrder(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Vertical)

	apps := tree.Root.Apps()
	if len(apps) != 2 {
		t.Fatalf("Expected 2 apps, got %d", len(apps))
	}
	if apps[0].Name != "a" || apps[1].Name != "b" {
		t.Errorf("Expected apps a,b, got %s,%s", apps[0].Name, apps[1].Name)
	}
}

func TestFindFocusedAppOnLeaves(t *testing.T) {
	app := tiling.NewApp(1, "a", "A")
	if app.FindFocusedApp() != app {
		t.Error("Expected an app leaf to return itself")
	}
	if tiling.NewEmpty(2).FindFocusedApp() != nil {
		t.Error("Expected an empty leaf to return nil")
	}
}
