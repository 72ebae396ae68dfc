package catchit

import (
	"math"
	"testing"
)

func TestObjectBounds(t *testing.T) {
	o := Object{Pos: V(10, 20), HalfSize: 5, Shape: Square}

	if o.Left() != 5 || o.Right() != 15 {
		t.Errorf("Left/Right = %v/%v, expected 5/15", o.Left(), o.Right())
	}
	if o.Top() != 15 || o.Bottom() != 25 {
		t.Errorf("Top/Bottom = %v/%v, expected 15/25", o.Top(), o.Bottom())
	}
}

func TestObjectIntersects(t *testing.T) {
	circle := func(x, y, h float64) Object { return Object{Pos: V(x, y), HalfSize: h, Shape: Circle} }
	square := func(x, y, h float64) Object { return Object{Pos: V(x, y), HalfSize: h, Shape: Square} }

	tests := []struct {
		name     string
		a, b     Object
		expected bool
	}{
		{"circles overlapping", circle(0, 0, 5), circle(6, 0, 5), true},
		{"circles touching", circle(0, 0, 5), circle(10, 0, 5), true},
		{"circles apart", circle(0, 0, 5), circle(10.5, 0, 5), false},
		// Boxes would overlap at the corners, the circles do not.
		{"circles diagonal gap", circle(0, 0, 5), circle(8, 8, 5), false},
		{"squares overlapping", square(0, 0, 5), square(8, 8, 5), true},
		{"squares touching edges", square(0, 0, 5), square(10, 0, 5), true},
		{"squares apart", square(0, 0, 5), square(0, 11, 5), false},
		{"circle vs square uses boxes", circle(0, 0, 5), square(8, 8, 5), true},
		{"circle vs square apart", circle(0, 0, 5), square(20, 0, 5), false},
		{"contained", square(0, 0, 50), circle(3, 3, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	a, b := V(3, 4), V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}

	n := a.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 || math.Abs(n.X-0.6) > 1e-12 {
		t.Errorf("Normalized = %v", n)
	}
	if got := (Vec2{}).Normalized(); got != (Vec2{}) {
		t.Errorf("zero vector Normalized = %v, expected zero", got)
	}
}
