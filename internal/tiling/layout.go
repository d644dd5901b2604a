package tiling

import (
	"math"

	"github.com/deskmux/deskmux/internal/geometry"
)

// LeafRect pairs a leaf container with the screen cells it occupies.
type LeafRect struct {
	Node *Container
	Rect geometry.Rect
}

// LayoutRects derives concrete rectangles for every leaf by recursively
// subdividing the screen along each split's axis according to its ratios.
// The derivation is pure and idempotent: tree shape and ratios are its
// only inputs, nothing is cached, and integer rounding slack always lands
// on the last child so children exactly tile their parent. This is a
// per-render computation, not part of the tree's mutable state.
func (t *Tree) LayoutRects(screen geometry.Rect) []LeafRect {
	var leaves []LeafRect
	subdivide(t.Root, screen, &leaves)
	return leaves
}

func subdivide(node *Container, area geometry.Rect, leaves *[]LeafRect) {
	if node == nil {
		return
	}
	if node.Kind != KindSplit || len(node.Children) == 0 {
		*leaves = append(*leaves, LeafRect{Node: node, Rect: area})
		return
	}

	total := area.Width
	if node.Direction == Vertical {
		total = area.Height
	}

	pos := 0
	for i, child := range node.Children {
		size := total - pos
		if i < len(node.Children)-1 {
			// Round rather than truncate so a ratio sitting a float
			// epsilon under its ideal share does not lose a cell.
			size = int(math.Round(float64(total) * node.Ratios[i]))
		}

		childArea := area
		if node.Direction == Horizontal {
			childArea.X = area.X + pos
			childArea.Width = size
		} else {
			childArea.Y = area.Y + pos
			childArea.Height = size
		}
		subdivide(child, childArea, leaves)
		pos += size
	}
}
