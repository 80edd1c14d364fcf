package tetris

import "github.com/arcbox/arcbox/internal/core"

// Shape is a tetromino bitmap: rows of 0/1 cells. The anchor used for
// positioning is the bitmap's top-left corner.
type Shape [][]int

// The seven canonical tetrominoes: I, O, T, S, Z, J, L.
// Index order matters: it doubles as the piece identity used by the
// hold/next slots and maps to color index+1.
var shapeDefs = []Shape{
	{
		{1, 1, 1, 1},
	},
	{
		{1, 1},
		{1, 1},
	},
	{
		{0, 1, 0},
		{1, 1, 1},
	},
	{
		{0, 1, 1},
		{1, 1, 0},
	},
	{
		{1, 1, 0},
		{0, 1, 1},
	},
	{
		{1, 0, 0},
		{1, 1, 1},
	},
	{
		{0, 0, 1},
		{1, 1, 1},
	},
}

// ShapeCount is the number of distinct tetrominoes.
const ShapeCount = 7

// pieceColors maps a piece index to its display color (board stores index+1).
var pieceColors = []core.Color{
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorGreen,   // S
	core.ColorRed,     // Z
	core.ColorBlue,    // J
	core.ColorOrange,  // L
}

// shapeFor returns a fresh copy of the canonical bitmap for a piece index,
// safe to rotate without touching the shared definitions.
func shapeFor(idx int) Shape {
	def := shapeDefs[idx]
	s := make(Shape, len(def))
	for r, row := range def {
		s[r] = make([]int, len(row))
		copy(s[r], row)
	}
	return s
}

// rotateCW rotates a shape 90 degrees clockwise: for an R×C bitmap the
// result is C×R with result[c][R-1-r] = shape[r][c].
func rotateCW(s Shape) Shape {
	if len(s) == 0 {
		return s
	}
	rows := len(s)
	cols := len(s[0])

	out := make(Shape, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]int, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = s[r][c]
		}
	}
	return out
}

// width returns the column count of the shape's bounding box.
func (s Shape) width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// height returns the row count of the shape's bounding box.
func (s Shape) height() int {
	return len(s)
}
