package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirRight, 1, 0},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for d, want := range pairs {
		if d.Opposite() != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), want)
		}
		// Double opposite returns to origin
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestPointStep(t *testing.T) {
	p := Point{X: 5, Y: 5}

	if got := p.Step(DirUp); got != (Point{X: 5, Y: 4}) {
		t.Errorf("Step(up) = %v", got)
	}
	if got := p.Step(DirRight); got != (Point{X: 6, Y: 5}) {
		t.Errorf("Step(right) = %v", got)
	}
	if got := p.Add(-2, 3); got != (Point{X: 3, Y: 8}) {
		t.Errorf("Add(-2, 3) = %v", got)
	}
}

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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
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

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Direction(); ok {
		t.Error("empty frame should have no direction")
	}

	f.Set(ActionLeft)
	d, ok := f.Direction()
	if !ok || d != DirLeft {
		t.Errorf("Direction() = %v, %v; expected left, true", d, ok)
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should remove buffered actions")
	}
}

func TestMemPrefsRoundTrip(t *testing.T) {
	p := NewMemPrefs()

	if p.GetBool("missing", true) != true {
		t.Error("missing key should return default")
	}

	p.SetBool("comfort", true)
	if !p.GetBool("comfort", false) {
		t.Error("SetBool/GetBool round trip failed")
	}

	p.SetInt("best", 42)
	if p.GetInt("best", 0) != 42 {
		t.Error("SetInt/GetInt round trip failed")
	}

	p.SetString("name", "abc")
	if p.GetString("name", "") != "abc" {
		t.Error("SetString/GetString round trip failed")
	}

	// Corrupt value falls back to default
	p.SetString("best", "not-a-number")
	if p.GetInt("best", 7) != 7 {
		t.Error("unparseable int should return default")
	}
}
