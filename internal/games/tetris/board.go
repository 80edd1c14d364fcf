package tetris

// Board is the well: rows×cols cells, 0 for empty or a color index
// (piece index + 1) for a committed block. The active piece is never
// written into the board until it locks.
type Board struct {
	rows  int
	cols  int
	cells [][]int
}

func newBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]int, rows)
	for y := range b.cells {
		b.cells[y] = make([]int, cols)
	}
	return b
}

// Cell returns the committed value at (x, y), 0 outside the well.
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return 0
	}
	return b.cells[y][x]
}

// collides reports whether the shape anchored at (px, py) overlaps a
// committed block or leaves the well. Cells above the top (negative y)
// are legal; only the side walls and the floor bound the piece.
func (b *Board) collides(s Shape, px, py int) bool {
	for r, row := range s {
		for c, v := range row {
			if v == 0 {
				continue
			}
			x := px + c
			y := py + r
			if x < 0 || x >= b.cols || y >= b.rows {
				return true
			}
			if y >= 0 && b.cells[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

// merge commits the shape into the board with the given color index.
// Cells still above the top edge are discarded.
func (b *Board) merge(s Shape, px, py, color int) {
	for r, row := range s {
		for c, v := range row {
			if v == 0 {
				continue
			}
			x := px + c
			y := py + r
			if y >= 0 && y < b.rows && x >= 0 && x < b.cols {
				b.cells[y][x] = color
			}
		}
	}
}

// clearLines removes every fully occupied row, shifts the rows above down,
// and backfills empty rows at the top. Returns the number of rows cleared.
func (b *Board) clearLines() int {
	kept := make([][]int, 0, b.rows)
	for y := 0; y < b.rows; y++ {
		full := true
		for x := 0; x < b.cols; x++ {
			if b.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, b.cells[y])
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]int, cleared, b.rows)
	for i := range fresh {
		fresh[i] = make([]int, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}
