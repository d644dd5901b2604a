package tiling_test

import (
	"math"
	"testing"

	"github.com/deskmux/deskmux/internal/tiling"
)

// counter is a minimal IDSource for tests.
type counter int

func (c *counter) Next() int {
	*c++
	return int(*c)
}

func newTree() *tiling.Tree {
	var ids counter
	return tiling.NewTree(&ids)
}

// checkSplitInvariants walks the tree and fails the test when any split
// violates its structural invariants.
func checkSplitInvariants(t *testing.T, c *tiling.Container) {
	t.Helper()
	if c == nil {
		return
	}
	if c.Kind == tiling.KindSplit {
		if len(c.Children) != len(c.Ratios) {
			t.Errorf("Split %d: %d children but %d ratios", c.ID, len(c.Children), len(c.Ratios))
		}
		if len(c.Children) < 1 {
			t.Errorf("Split %d: reduced to zero children", c.ID)
		}
		if c.Focused < 0 || c.Focused >= len(c.Children) {
			t.Errorf("Split %d: focused %d out of range [0,%d)", c.ID, c.Focused, len(c.Children))
		}
		sum := 0.0
		for _, r := range c.Ratios {
			sum += r
		}
		if math.Abs(sum-1.0) > 1e-6 {
			t.Errorf("Split %d: ratios sum to %f, want 1.0", c.ID, sum)
		}
	}
	for _, child := range c.Children {
		checkSplitInvariants(t, child)
	}
}

// =============================================================================
// Spawn Tests
// =============================================================================

func TestSpawnIntoEmptyRoot(t *testing.T) {
	tree := newTree()

	if !tree.Spawn("tasks", "Task Manager") {
		t.Fatal("Expected spawn into empty root to succeed")
	}
	if !tree.Root.IsApp() {
		t.Fatalf("Expected app root, got kind %v", tree.Root.Kind)
	}
	if tree.Root.Name != "tasks" || tree.Root.Title != "Task Manager" {
		t.Errorf("Expected tasks/Task Manager, got %s/%s", tree.Root.Name, tree.Root.Title)
	}
}

func TestSpawnOnAppRootIsNoOp(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")

	if tree.Spawn("b", "B") {
		t.Error("Expected spawn on app root to report no slot")
	}
	if tree.Root.Name != "a" {
		t.Errorf("Expected root to keep hosting a, got %s", tree.Root.Name)
	}
}

func TestSpawnRequiresEmptyFocusedChild(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	// Focused child now hosts b; a further spawn has no slot to fill.
	if tree.Spawn("c", "C") {
		t.Error("Expected spawn into occupied slot to report no slot")
	}
	checkSplitInvariants(t, tree.Root)
}

// =============================================================================
// Split Tests
// =============================================================================

func TestSplitEmptyRootPreparesSlot(t *testing.T) {
	tree := newTree()
	tree.Split(tiling.Horizontal)

	root := tree.Root
	if !root.IsSplit() {
		t.Fatalf("Expected split root, got kind %v", root.Kind)
	}
	if len(root.Children) != 1 || !root.Children[0].IsEmpty() {
		t.Fatal("Expected a single empty child")
	}
	if len(root.Ratios) != 1 || root.Ratios[0] != 1.0 {
		t.Errorf("Expected ratios [1.0], got %v", root.Ratios)
	}
	if root.Focused != 0 {
		t.Errorf("Expected focused 0, got %d", root.Focused)
	}
	checkSplitInvariants(t, root)
}

func TestSplitWrapsAppRootAndFocusesNewSlot(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	if !tree.Spawn("b", "B") {
		t.Fatal("Expected spawn to fill the slot created by split")
	}

	root := tree.Root
	if !root.IsSplit() || root.Direction != tiling.Horizontal {
		t.Fatalf("Expected horizontal split root, got kind %v dir %v", root.Kind, root.Direction)
	}
	if len(root.Children) != 2 {
		t.Fatalf("Expected two children, got %d", len(root.Children))
	}
	if root.Children[0].Name != "a" || root.Children[1].Name != "b" {
		t.Errorf("Expected children a,b, got %s,%s", root.Children[0].Name, root.Children[1].Name)
	}
	if root.Ratios[0] != 0.5 || root.Ratios[1] != 0.5 {
		t.Errorf("Expected ratios [0.5 0.5], got %v", root.Ratios)
	}
	if root.Focused != 1 {
		t.Errorf("Expected focused 1, got %d", root.Focused)
	}
	checkSplitInvariants(t, root)
}

func TestSplitSameDirectionInsertsAfterFocused(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Horizontal)

	root := tree.Root
	if len(root.Children) != 3 {
		t.Fatalf("Expected three children, got %d", len(root.Children))
	}
	if !root.Children[2].IsEmpty() {
		t.Error("Expected new empty slot inserted after focused child")
	}
	if root.Focused != 2 {
		t.Errorf("Expected focus to advance to inserted slot, got %d", root.Focused)
	}
	for i, r := range root.Ratios {
		if math.Abs(r-1.0/3.0) > 1e-9 {
			t.Errorf("Ratio %d = %f, want 1/3", i, r)
		}
	}
	checkSplitInvariants(t, root)
}

func TestSplitDifferentDirectionNestsFocusedChild(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Vertical)

	root := tree.Root
	if root.Direction != tiling.Horizontal || len(root.Children) != 2 {
		t.Fatal("Expected root split shape to be preserved")
	}
	if root.Focused != 1 {
		t.Errorf("Expected root focus unchanged at 1, got %d", root.Focused)
	}

	nested := root.Children[1]
	if !nested.IsSplit() || nested.Direction != tiling.Vertical {
		t.Fatalf("Expected nested vertical split, got kind %v", nested.Kind)
	}
	if nested.Children[0].Name != "b" || !nested.Children[1].IsEmpty() {
		t.Error("Expected nested split to hold old child then a new empty slot")
	}
	if nested.Ratios[0] != 0.5 || nested.Ratios[1] != 0.5 {
		t.Errorf("Expected nested ratios [0.5 0.5], got %v", nested.Ratios)
	}
	if nested.Focused != 0 {
		t.Errorf("Expected nested focus to stay on old child, got %d", nested.Focused)
	}

	// The focused path still ends at b, not the new empty slot.
	if app := tree.FindFocusedApp(); app == nil || app.Name != "b" {
		t.Error("Expected focused app to remain b after nesting")
	}
	checkSplitInvariants(t, root)
}

func TestSplitTabbedRootIsNoOp(t *testing.T) {
	tree := newTree()
	tree.Root = &tiling.Container{ID: 99, Kind: tiling.KindTabbed}

	tree.Split(tiling.Horizontal)
	if tree.Root.Kind != tiling.KindTabbed {
		t.Error("Expected tabbed root to be left untouched by split")
	}
	if tree.Spawn("a", "A") {
		t.Error("Expected spawn on tabbed root to report no slot")
	}
	if closed := tree.CloseFocused(); closed != nil {
		t.Error("Expected close on tabbed root to be a no-op")
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestCloseFocusedOnAppRoot(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")

	closed := tree.CloseFocused()
	if closed == nil || closed.Name != "a" {
		t.Fatal("Expected close to hand back the hosted app")
	}
	if !tree.Root.IsEmpty() {
		t.Errorf("Expected empty root after close, got kind %v", tree.Root.Kind)
	}
}

func TestCloseFocusedRemovesChildAndReshares(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	closed := tree.CloseFocused()
	if closed == nil || closed.Name != "b" {
		t.Fatal("Expected focused child b to be closed")
	}

	root := tree.Root
	if len(root.Children) != 1 || root.Children[0].Name != "a" {
		t.Fatal("Expected a single remaining child a")
	}
	if len(root.Ratios) != 1 || root.Ratios[0] != 1.0 {
		t.Errorf("Expected ratios [1.0], got %v", root.Ratios)
	}
	if root.Focused != 0 {
		t.Errorf("Expected focused clamped to 0, got %d", root.Focused)
	}
	checkSplitInvariants(t, root)
}

func TestSplitThenCloseRoundTrip(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.CloseFocused()

	// Single child at ratio 1.0: now split and immediately close again.
	tree.Split(tiling.Horizontal)
	tree.CloseFocused()

	root := tree.Root
	if len(root.Children) != 1 || root.Children[0].Name != "a" {
		t.Fatal("Expected round trip back to a single app child")
	}
	if len(root.Ratios) != 1 || root.Ratios[0] != 1.0 {
		t.Errorf("Expected ratios [1.0], got %v", root.Ratios)
	}
	checkSplitInvariants(t, root)
}

func TestCloseFocusedKeepsSingleChildSplit(t *testing.T) {
	tree := newTree()
	tree.Split(tiling.Horizontal)
	tree.Spawn("a", "A")

	closed := tree.CloseFocused()
	if closed == nil || closed.Name != "a" {
		t.Fatal("Expected the single app child to be closed")
	}

	// The split node survives; only its child is blanked.
	root := tree.Root
	if !root.IsSplit() {
		t.Fatalf("Expected split root to remain, got kind %v", root.Kind)
	}
	if len(root.Children) != 1 || !root.Children[0].IsEmpty() {
		t.Error("Expected the single child to become an empty slot")
	}
	checkSplitInvariants(t, root)
}

func TestCloseFocusedOnEmptyIsNoOp(t *testing.T) {
	tree := newTree()
	if closed := tree.CloseFocused(); closed != nil {
		t.Error("Expected close on empty root to be a no-op")
	}

	tree.Split(tiling.Horizontal)
	if closed := tree.CloseFocused(); closed != nil {
		t.Error("Expected close on a lone empty slot to be a no-op")
	}
	checkSplitInvariants(t, tree.Root)
}

func TestCloseFocusedReturnsRemovedSubtree(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Vertical) // nest b with an empty slot

	closed := tree.CloseFocused()
	if closed == nil || !closed.IsSplit() {
		t.Fatal("Expected the nested split subtree to be handed back")
	}
	apps := closed.Apps()
	if len(apps) != 1 || apps[0].Name != "b" {
		t.Errorf("Expected removed subtree to contain app b, got %v", apps)
	}
	checkSplitInvariants(t, tree.Root)
}

// =============================================================================
// Focus Tests
// =============================================================================

func TestFocusDirectionMovesWithinRootSplit(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Horizontal)
	tree.Spawn("c", "C")

	if tree.Root.Focused != 2 {
		t.Fatalf("Expected focus 2 after setup, got %d", tree.Root.Focused)
	}

	tree.FocusDirection(tiling.FocusLeft)
	if tree.Root.Focused != 1 {
		t.Errorf("Expected focus 1 after left, got %d", tree.Root.Focused)
	}

	tree.FocusDirection(tiling.FocusLeft)
	tree.FocusDirection(tiling.FocusLeft) // saturates at 0
	if tree.Root.Focused != 0 {
		t.Errorf("Expected focus saturated at 0, got %d", tree.Root.Focused)
	}

	tree.FocusDirection(tiling.FocusRight)
	if tree.Root.Focused != 1 {
		t.Errorf("Expected focus 1 after right, got %d", tree.Root.Focused)
	}
}

func TestFocusDirectionRequiresMatchingOrientation(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	tree.FocusDirection(tiling.FocusUp)
	tree.FocusDirection(tiling.FocusDown)
	if tree.Root.Focused != 1 {
		t.Errorf("Expected vertical moves to be ignored on a horizontal split, focus %d", tree.Root.Focused)
	}
}

func TestFocusDirectionOnLeafRootIsNoOp(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.FocusDirection(tiling.FocusLeft) // must not panic or mutate
	if !tree.Root.IsApp() {
		t.Error("Expected app root to be untouched")
	}
}

func TestFindFocusedAppDescendsNestedSplits(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")
	tree.Split(tiling.Vertical)

	// Focused path: root child 1 -> nested split child 0 -> app b.
	if app := tree.FindFocusedApp(); app == nil || app.Name != "b" {
		t.Fatal("Expected focused app b through the nested split")
	}

	// Point the nested split at its empty slot: no app on the path.
	tree.Root.Children[1].Focused = 1
	if app := tree.FindFocusedApp(); app != nil {
		t.Errorf("Expected no focused app when the path ends in an empty slot, got %s", app.Name)
	}
}

// =============================================================================
// Move and Resize Tests
// =============================================================================

func TestMoveFocusedSwapsWithNeighbor(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	tree.MoveFocused(tiling.FocusLeft)
	root := tree.Root
	if root.Children[0].Name != "b" || root.Children[1].Name != "a" {
		t.Errorf("Expected children swapped to b,a, got %s,%s", root.Children[0].Name, root.Children[1].Name)
	}
	if root.Focused != 0 {
		t.Errorf("Expected focus to follow moved child to 0, got %d", root.Focused)
	}

	// At the edge there is no neighbor to swap with.
	tree.MoveFocused(tiling.FocusLeft)
	if root.Children[0].Name != "b" {
		t.Error("Expected move at the edge to be a no-op")
	}
	checkSplitInvariants(t, root)
}

func TestResizeFocusedShiftsRatioAgainstNeighbor(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	tree.ResizeFocused(tiling.FocusRight) // grow focused child b
	root := tree.Root
	if math.Abs(root.Ratios[1]-0.55) > 1e-9 || math.Abs(root.Ratios[0]-0.45) > 1e-9 {
		t.Errorf("Expected ratios [0.45 0.55], got %v", root.Ratios)
	}

	tree.ResizeFocused(tiling.FocusLeft) // shrink back
	if math.Abs(root.Ratios[1]-0.5) > 1e-9 {
		t.Errorf("Expected ratios restored to [0.5 0.5], got %v", root.Ratios)
	}
	checkSplitInvariants(t, root)
}

func TestResizeFocusedRespectsMinimumShare(t *testing.T) {
	tree := newTree()
	tree.Spawn("a", "A")
	tree.Split(tiling.Horizontal)
	tree.Spawn("b", "B")

	// Shrink b until the minimum share stops further adjustment.
	for range 20 {
		tree.ResizeFocused(tiling.FocusLeft)
	}
	root := tree.Root
	if root.Ratios[1] < 0.1-1e-9 {
		t.Errorf("Expected focused share clamped at 0.1, got %f", root.Ratios[1])
	}
	sum := root.Ratios[0] + root.Ratios[1]
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Expected ratios to keep summing to 1.0, got %f", sum)
	}

	// Wrong orientation never adjusts.
	before := root.Ratios[0]
	tree.ResizeFocused(tiling.FocusUp)
	if root.Ratios[0] != before {
		t.Error("Expected vertical resize on horizontal split to be a no-op")
	}
}
