package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 10, true},
		{"inside", 12, 12, true},
		{"bottom-right inside", 14, 14, true},
		{"right edge (exclusive)", 15, 12, false},
		{"bottom edge (exclusive)", 12, 15, false},
		{"left of rect", 9, 12, false},
		{"above rect", 12, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)

	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) = %d, expected 7", Max(3, 7))
	}
	if Max(-1, -5) != -1 {
		t.Errorf("Max(-1, -5) = %d, expected -1", Max(-1, -5))
	}
}
