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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInner(t *testing.T) {
	got := NewRect(2, 3, 10, 6).Inner()
	if got != NewRect(3, 4, 8, 4) {
		t.Errorf("Inner() = %+v", got)
	}
	if tiny := NewRect(0, 0, 1, 1).Inner(); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inner of 1x1 = %+v, expected zero size", tiny)
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 10, 10), 4, 2, NewRect(3, 4, 4, 2)},
		{"offset outer", NewRect(5, 5, 10, 10), 4, 4, NewRect(8, 8, 4, 4)},
		{"larger than outer", NewRect(0, 0, 4, 4), 8, 6, NewRect(-2, -1, 8, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestColorIsPiece(t *testing.T) {
	if ColorEmpty.IsPiece() {
		t.Error("empty colour must not be a piece colour")
	}
	if !Color(7).IsPiece() {
		t.Error("palette index 7 should be a piece colour")
	}
	if ColorOutline.IsPiece() {
		t.Error("outline colour must not be a piece colour")
	}
}
