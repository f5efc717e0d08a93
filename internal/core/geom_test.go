package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestBoundsContains(t *testing.T) {
	b := NewBounds(-50, -10, 455, 436)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{name: "interior", x: 300, y: 390, expected: true},
		{name: "on left edge", x: -50, y: 0, expected: true},
		{name: "on right edge", x: 455, y: 0, expected: true},
		{name: "on top edge", x: 0, y: -10, expected: true},
		{name: "on bottom edge", x: 0, y: 436, expected: true},
		{name: "just past left", x: -50.001, y: 0, expected: false},
		{name: "just past right", x: 455.001, y: 0, expected: false},
		{name: "just past top", x: 0, y: -10.001, expected: false},
		{name: "just past bottom", x: 0, y: 436.001, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := b.Outside(tc.x, tc.y); got == tc.expected {
				t.Errorf("Outside(%v, %v) = %v, expected %v", tc.x, tc.y, got, !tc.expected)
			}
		})
	}
}

func TestBoundsSize(t *testing.T) {
	b := NewBounds(0, 0, 505, 606)
	if b.Width() != 505 || b.Height() != 606 {
		t.Errorf("size = %vx%v, expected 505x606", b.Width(), b.Height())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
}
