package domain

import "iter"

// Direction is one of the four ways a winning line can run.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalDownRight
	DiagonalDownLeft
)

// WinDirections lists every direction CheckWin looks at, in scan order.
var WinDirections = [...]Direction{Horizontal, Vertical, DiagonalDownRight, DiagonalDownLeft}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDownRight:
		return "diagonal down-right"
	case DiagonalDownLeft:
		return "diagonal down-left"
	}
	return "unknown"
}

func (d Direction) step() (dRow, dCol int) {
	switch d {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case DiagonalDownRight:
		return 1, 1
	default:
		return 1, -1
	}
}

type point struct {
	row, col int
}

// diagonal families: every diagonal of length >= ToWin starts at one of
// these cells and runs in the family's direction until it leaves the board
var diagonalFamilies = []struct {
	dir    Direction
	starts []point
}{
	{DiagonalDownRight, []point{{0, 0}, {1, 0}, {2, 0}}},
	{DiagonalDownRight, []point{{0, 1}, {0, 2}, {0, 3}}},
	{DiagonalDownLeft, []point{{0, Columns - 1}, {1, Columns - 1}, {2, Columns - 1}}},
	{DiagonalDownLeft, []point{{0, 3}, {0, 4}, {0, 5}}},
}

func (d Direction) starts() []point {
	var pts []point
	switch d {
	case Horizontal:
		for r := 0; r < Rows; r++ {
			pts = append(pts, point{r, 0})
		}
	case Vertical:
		for c := 0; c < Columns; c++ {
			pts = append(pts, point{0, c})
		}
	default:
		for _, f := range diagonalFamilies {
			if f.dir == d {
				pts = append(pts, f.starts...)
			}
		}
	}
	return pts
}

// Lines yields the cell values of every line running in direction d.
// The yielded slice is only valid until the next iteration.
func (s GameState) Lines(d Direction) iter.Seq[[]PlayerID] {
	return func(yield func([]PlayerID) bool) {
		dRow, dCol := d.step()
		buf := make([]PlayerID, 0, Columns)
		for _, p := range d.starts() {
			buf = buf[:0]
			for r, c := p.row, p.col; r >= 0 && r < Rows && c >= 0 && c < Columns; r, c = r+dRow, c+dCol {
				buf = append(buf, s.Grid[r][c])
			}
			if len(buf) < ToWin {
				continue
			}
			if !yield(buf) {
				return
			}
		}
	}
}

// HasRun reports whether line holds at least n consecutive cells equal to
// player. The count resets on any other cell.
func HasRun(line []PlayerID, player PlayerID, n int) bool {
	count := 0
	for _, cell := range line {
		if cell == player {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 0
		}
	}
	return false
}
