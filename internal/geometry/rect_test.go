package geometry_test

import (
	"testing"

	"github.com/deskmux/deskmux/internal/geometry"
)

// =============================================================================
// Clamping Tests
// =============================================================================

func TestClampToScreen(t *testing.T) {
	tests := []struct {
		name    string
		rect    geometry.Rect
		screenW int
		screenH int
		want    geometry.Rect
	}{
		{
			name:    "already inside",
			rect:    geometry.NewRect(2, 1, 40, 20),
			screenW: 80,
			screenH: 24,
			want:    geometry.NewRect(2, 1, 40, 20),
		},
		{
			name:    "negative x clamps to zero",
			rect:    geometry.NewRect(-8, 1, 40, 20),
			screenW: 80,
			screenH: 24,
			want:    geometry.NewRect(0, 1, 40, 20),
		},
		{
			name:    "right overflow pulls window back",
			rect:    geometry.NewRect(60, 1, 40, 20),
			screenW: 80,
			screenH: 24,
			want:    geometry.NewRect(40, 1, 40, 20),
		},
		{
			name:    "bottom overflow pulls window up",
			rect:    geometry.NewRect(2, 20, 40, 20),
			screenW: 80,
			screenH: 24,
			want:    geometry.NewRect(2, 4, 40, 20),
		},
		{
			name:    "wider than screen shrinks to screen",
			rect:    geometry.NewRect(5, 0, 100, 10),
			screenW: 80,
			screenH: 24,
			want:    geometry.NewRect(0, 0, 80, 10),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rect.ClampToScreen(tc.screenW, tc.screenH)
			if got != tc.want {
				t.Errorf("ClampToScreen(%d, %d) = %+v, want %+v", tc.screenW, tc.screenH, got, tc.want)
			}
		})
	}
}

func TestClampMinSize(t *testing.T) {
	r := geometry.NewRect(0, 0, 10, 3).ClampMinSize(20, 5)
	if r.Width != 20 || r.Height != 5 {
		t.Errorf("Expected 20x5 after min clamp, got %dx%d", r.Width, r.Height)
	}

	// Already large enough: untouched.
	r = geometry.NewRect(0, 0, 60, 20).ClampMinSize(20, 5)
	if r.Width != 60 || r.Height != 20 {
		t.Errorf("Expected 60x20 to survive min clamp, got %dx%d", r.Width, r.Height)
	}
}

// =============================================================================
// Containment and Intersection Tests
// =============================================================================

func TestContains(t *testing.T) {
	rect := geometry.NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y int
		want bool
	}{
		{15, 15, true},
		{10, 10, true},  // top-left corner is inside
		{29, 29, true},  // last cell is inside
		{30, 30, false}, // exclusive far edges
		{5, 5, false},
	}

	for _, tc := range tests {
		if got := rect.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIntersects(t *testing.T) {
	a := geometry.NewRect(0, 0, 10, 10)

	if !a.Intersects(geometry.NewRect(5, 5, 10, 10)) {
		t.Error("Expected overlapping rects to intersect")
	}
	if a.Intersects(geometry.NewRect(10, 0, 5, 5)) {
		t.Error("Expected edge-adjacent rects not to intersect")
	}
	if a.Intersects(geometry.NewRect(20, 20, 5, 5)) {
		t.Error("Expected disjoint rects not to intersect")
	}
}

func TestEdges(t *testing.T) {
	r := geometry.NewRect(2, 1, 40, 20)
	if r.Right() != 42 {
		t.Errorf("Right() = %d, want 42", r.Right())
	}
	if r.Bottom() != 21 {
		t.Errorf("Bottom() = %d, want 21", r.Bottom())
	}
}
