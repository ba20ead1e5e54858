package core

import "testing"

func TestPointStep(t *testing.T) {
	origin := Pt(5, 5)

	tests := []struct {
		name     string
		dir      Direction
		expected Point
	}{
		{"up decrements y", DirUp, Pt(5, 4)},
		{"down increments y", DirDown, Pt(5, 6)},
		{"left decrements x", DirLeft, Pt(4, 5)},
		{"right increments x", DirRight, Pt(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := origin.Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions() {
		opp := d.Opposite()
		if opp == d {
			t.Errorf("Opposite(%v) returned the same direction", d)
		}
		if opp.Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		dx, dy := d.Delta()
		ox, oy := opp.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("Delta(%v) + Delta(%v) should be zero", d, opp)
		}
	}
}

func TestDirectionsOrder(t *testing.T) {
	dirs := Directions()
	expected := []Direction{DirUp, DirDown, DirLeft, DirRight}
	if len(dirs) != len(expected) {
		t.Fatalf("Expected %d directions, got %d", len(expected), len(dirs))
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("Directions()[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b     Point
		expected int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 0), Pt(3, 4), 7},
		{Pt(3, 4), Pt(0, 0), 7},
		{Pt(-2, 5), Pt(2, -5), 14},
	}

	for _, tc := range tests {
		if got := Manhattan(tc.a, tc.b); got != tc.expected {
			t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestContainsPoint(t *testing.T) {
	cells := []Point{Pt(1, 1), Pt(2, 1), Pt(3, 1)}
	if !ContainsPoint(cells, Pt(2, 1)) {
		t.Error("Expected (2,1) to be found")
	}
	if ContainsPoint(cells, Pt(1, 2)) {
		t.Error("Did not expect (1,2) to be found")
	}
	if ContainsPoint(nil, Pt(0, 0)) {
		t.Error("Empty slice should contain nothing")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"last cell", Pt(29, 24), true},
		{"left of rect", Pt(9, 15), false},
		{"above rect", Pt(15, 9), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
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
	if c := r.Center(); c != Pt(15, 17) {
		t.Errorf("Center() = %v, expected (15,17)", c)
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
	if NewRect(0, 0, 0, 5).Area() != 0 {
		t.Error("Degenerate rect should have zero area")
	}
}

func TestMin(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{3, 5, 3},
		{5, 3, 3},
		{-2, 0, -2},
		{4, 4, 4},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.expected {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
