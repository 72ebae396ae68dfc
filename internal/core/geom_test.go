package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even", NewRect(0, 0, 80, 24), 40, 6, NewRect(20, 9, 40, 6)},
		{"odd remainder", NewRect(0, 0, 81, 25), 40, 6, NewRect(20, 9, 40, 6)},
		{"offset", NewRect(10, 2, 20, 10), 10, 4, NewRect(15, 5, 10, 4)},
		{"larger than outer", NewRect(0, 0, 10, 4), 20, 6, NewRect(-5, -1, 20, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"Bright-Cyan", ColorBrightCyan, true},
		{" gray ", ColorGray, true},
		{"dark-gray", ColorDarkGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.name)
			if (err == nil) != tc.ok {
				t.Fatalf("ParseColor(%q) error = %v, ok expected %v", tc.name, err, tc.ok)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, c, tc.expected)
			}
		})
	}

	for c := range colorNames {
		parsed, err := ParseColor(c.String())
		if err != nil || parsed != c {
			t.Errorf("color %d does not round-trip through its name %q", c, c.String())
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionForceToggle) || f.Pointer != nil {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionForceToggle)
	f.MovePointer(3, 4)
	f.MovePointer(5, 6)

	if !f.Has(ActionForceToggle) {
		t.Error("Has(ActionForceToggle) should be true")
	}
	if f.Pointer == nil || *f.Pointer != (Pointer{X: 5, Y: 6}) {
		t.Errorf("Pointer = %v, expected the last position (5, 6)", f.Pointer)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionForceToggle) || f.Pointer != nil {
		t.Error("Clear should drop actions and the pointer")
	}
	if !clone.Has(ActionForceToggle) || clone.Pointer == nil || clone.Pointer.X != 5 {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should work")
	}
}
