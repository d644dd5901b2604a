package tiling

// IDSource allocates container identifiers. The shell owns the single
// counter so ids stay unique across workspaces for the life of a session.
type IDSource interface {
	Next() int
}

// Tree owns one container root and mutates it in place. All structural
// operations act on the root; nested splits are reached only through the
// focused path.
type Tree struct {
	Root *Container

	ids IDSource
}

// NewTree returns a tree holding a single empty slot.
func NewTree(ids IDSource) *Tree {
	return &Tree{Root: NewEmpty(ids.Next()), ids: ids}
}

// Spawn places an application into the tree and reports whether a slot
// accepted it. An empty root becomes the app; a split root fills its
// focused child when that child is empty. Anything else is a no-op: the
// caller must split first to create a slot.
func (t *Tree) Spawn(name, title string) bool {
	switch t.Root.Kind {
	case KindEmpty:
		t.Root = NewApp(t.ids.Next(), name, title)
		return true
	case KindSplit:
		if t.Root.Focused < 0 || t.Root.Focused >= len(t.Root.Children) {
			return false
		}
		child := t.Root.Children[t.Root.Focused]
		if !child.IsEmpty() {
			return false
		}
		t.Root.Children[t.Root.Focused] = NewApp(t.ids.Next(), name, title)
		return true
	default:
		return false
	}
}

// Split restructures the tree along direction:
//
//   - empty root: becomes a split holding one empty slot at ratio 1.0,
//     ready for a subsequent Spawn;
//   - split root of the same direction: a new empty child is inserted
//     right after the focused child, ratios are re-shared equally, and
//     focus advances to the inserted slot;
//   - split root of the other direction: the focused child is replaced by
//     a nested split holding the old child and a new empty slot at 0.5
//     each (focus inside the nested split stays on the old child);
//   - app root: wrapped into a split holding the app and a new empty
//     slot at 0.5 each, with focus on the empty slot;
//   - tabbed root: reserved, no-op.
func (t *Tree) Split(direction Direction) {
	switch t.Root.Kind {
	case KindEmpty:
		t.Root = NewSplit(t.ids.Next(), direction, NewEmpty(t.ids.Next()))

	case KindSplit:
		root := t.Root
		if root.Focused < 0 || root.Focused >= len(root.Children) {
			return
		}
		if root.Direction == direction {
			slot := NewEmpty(t.ids.Next())
			i := root.Focused + 1
			root.Children = append(root.Children, nil)
			copy(root.Children[i+1:], root.Children[i:])
			root.Children[i] = slot
			root.Ratios = append(root.Ratios, 0)
			equalize(root.Ratios)
			root.Focused++
		} else {
			current := root.Children[root.Focused]
			root.Children[root.Focused] = NewSplit(
				t.ids.Next(), direction, current, NewEmpty(t.ids.Next()),
			)
		}

	case KindApp:
		old := t.Root
		wrapped := NewSplit(t.ids.Next(), direction, old, NewEmpty(t.ids.Next()))
		wrapped.Focused = 1
		t.Root = wrapped
	}
}

// CloseFocused removes the focused container and returns what was taken
// out so the caller can release any hosted applications; nil means the
// close was a no-op. An app root reverts to an empty slot. A split root
// with several children drops the focused child, re-shares the ratios
// equally, and clamps focus. A split root whose single child is an app
// blanks that child but keeps the split node itself.
func (t *Tree) CloseFocused() *Container {
	switch t.Root.Kind {
	case KindApp:
		closed := t.Root
		t.Root = NewEmpty(t.ids.Next())
		return closed

	case KindSplit:
		root := t.Root
		if root.Focused < 0 || root.Focused >= len(root.Children) {
			return nil
		}
		if len(root.Children) > 1 {
			closed := root.Children[root.Focused]
			root.Children = append(root.Children[:root.Focused], root.Children[root.Focused+1:]...)
			root.Ratios = root.Ratios[:len(root.Ratios)-1]
			equalize(root.Ratios)
			if root.Focused >= len(root.Children) {
				root.Focused = len(root.Children) - 1
			}
			return closed
		}
		if root.Children[0].IsApp() {
			closed := root.Children[0]
			root.Children[0] = NewEmpty(t.ids.Next())
			return closed
		}
		return nil

	default:
		return nil
	}
}

// FocusDirection moves focus between the root split's direct children.
// It applies only when the root is a split whose orientation matches the
// requested direction, and saturates at both ends. Nested splits keep
// their own focus untouched.
func (t *Tree) FocusDirection(dir FocusDir) {
	root := t.Root
	if root.Kind != KindSplit {
		return
	}
	axis, backward := dir.axis()
	if root.Direction != axis {
		return
	}
	if backward {
		if root.Focused > 0 {
			root.Focused--
		}
	} else {
		if root.Focused < len(root.Children)-1 {
			root.Focused++
		}
	}
}

// MoveFocused swaps the focused child of the root split with its
// neighbor in the requested direction; focus follows the moved child.
// Ratios stay with their positions. Scope matches FocusDirection:
// root-level only, orientation must match.
func (t *Tree) MoveFocused(dir FocusDir) {
	root := t.Root
	if root.Kind != KindSplit {
		return
	}
	axis, backward := dir.axis()
	if root.Direction != axis {
		return
	}
	target := root.Focused + 1
	if backward {
		target = root.Focused - 1
	}
	if target < 0 || target >= len(root.Children) {
		return
	}
	root.Children[root.Focused], root.Children[target] = root.Children[target], root.Children[root.Focused]
	root.Focused = target
}

// ratioStep is how much one resize nudge shifts a child's share.
const ratioStep = 0.05

// minRatio is the smallest share a child may be squeezed to.
const minRatio = 0.1

// ResizeFocused grows or shrinks the focused child's ratio along the
// root split's axis, taking the difference from its next neighbor (or the
// previous one when the focused child is last). The adjustment is skipped
// when either share would drop below the minimum, so ratios always keep
// summing to 1.0.
func (t *Tree) ResizeFocused(dir FocusDir) {
	root := t.Root
	if root.Kind != KindSplit || len(root.Children) < 2 {
		return
	}
	axis, shrink := dir.axis()
	if root.Direction != axis {
		return
	}
	if root.Focused < 0 || root.Focused >= len(root.Children) {
		return
	}

	neighbor := root.Focused + 1
	if neighbor >= len(root.Children) {
		neighbor = root.Focused - 1
	}

	delta := ratioStep
	if shrink {
		delta = -ratioStep
	}
	newFocused := root.Ratios[root.Focused] + delta
	newNeighbor := root.Ratios[neighbor] - delta
	if newFocused < minRatio || newNeighbor < minRatio {
		return
	}
	root.Ratios[root.Focused] = newFocused
	root.Ratios[neighbor] = newNeighbor
}

// FindFocusedApp returns the application leaf on the focused path, or nil
// when the path ends in an empty slot.
func (t *Tree) FindFocusedApp() *Container {
	return t.Root.FindFocusedApp()
}

// equalize re-shares ratios equally among all entries.
func equalize(ratios []float64) {
	if len(ratios) == 0 {
		return
	}
	share := 1.0 / float64(len(ratios))
	for i := range ratios {
		ratios[i] = share
	}
}
