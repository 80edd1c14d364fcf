package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalize returns the shape's occupied cells translated so the minimal
// row/column is zero, as a set. Lets shapes be compared independently of
// bounding-box placement.
func normalize(s Shape) map[[2]int]bool {
	minR, minC := len(s), 1<<30
	for r, row := range s {
		for c, v := range row {
			if v != 0 {
				if r < minR {
					minR = r
				}
				if c < minC {
					minC = c
				}
			}
		}
	}
	cells := make(map[[2]int]bool)
	for r, row := range s {
		for c, v := range row {
			if v != 0 {
				cells[[2]int{r - minR, c - minC}] = true
			}
		}
	}
	return cells
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for idx := 0; idx < ShapeCount; idx++ {
		s := shapeFor(idx)
		r := s
		for i := 0; i < 4; i++ {
			r = rotateCW(r)
		}
		assert.Equal(t, normalize(s), normalize(r), "piece %d should return to itself after four rotations", idx)
		// The bounding box itself also returns exactly
		assert.Equal(t, s, r, "piece %d bounding box should be restored", idx)
	}
}

func TestRotateDimensionsSwap(t *testing.T) {
	i := shapeFor(0) // I piece: 1×4
	require.Equal(t, 1, i.height())
	require.Equal(t, 4, i.width())

	r := rotateCW(i)
	assert.Equal(t, 4, r.height())
	assert.Equal(t, 1, r.width())
}

func TestRotateTExplicit(t *testing.T) {
	tPiece := Shape{
		{0, 1, 0},
		{1, 1, 1},
	}
	want := Shape{
		{1, 0},
		{1, 1},
		{1, 0},
	}
	assert.Equal(t, want, rotateCW(tPiece))
}

func TestShapeForReturnsCopy(t *testing.T) {
	s := shapeFor(1)
	s[0][0] = 99
	assert.Equal(t, 1, shapeDefs[1][0][0], "mutating a spawned shape must not touch the canonical definitions")
}
