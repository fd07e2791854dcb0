package domain

// Grid holds the cells of the board. Row 0 is the top and Rows-1 the bottom.
type Grid [Rows][Columns]PlayerID

// ColumnHistory records the pieces dropped into one column, bottom first.
type ColumnHistory struct {
	pieces [Rows]PlayerID
	n      int
}

func (h ColumnHistory) Len() int {
	return h.n
}

func (h ColumnHistory) IsFull() bool {
	return h.n >= Rows
}

// Pieces returns a copy of the dropped pieces in drop order.
func (h ColumnHistory) Pieces() []PlayerID {
	out := make([]PlayerID, h.n)
	copy(out, h.pieces[:h.n])
	return out
}

func (h ColumnHistory) push(p PlayerID) ColumnHistory {
	h.pieces[h.n] = p
	h.n++
	return h
}

// GameState is the whole state of a game in progress. It is a plain value:
// copying it copies the grid and every column history, so functions that
// take a GameState and return a new one never share memory with the caller.
type GameState struct {
	Grid    Grid
	History [Columns]ColumnHistory
	Current PlayerID
	Moves   int
}

func NewGameState() GameState {
	return GameState{Current: Player1}
}

// Cell returns the piece at (row, column) or Empty when outside the board.
func (s GameState) Cell(row, column int) PlayerID {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return s.Grid[row][column]
}

// LandingRow is the row a piece dropped into column would occupy, or -1 when
// the column is full or out of range.
func (s GameState) LandingRow(column int) int {
	if column < 0 || column >= Columns || s.History[column].IsFull() {
		return -1
	}
	return Rows - 1 - s.History[column].Len()
}

func IsBoardFull(s GameState) bool {
	for c := 0; c < Columns; c++ {
		if !s.History[c].IsFull() {
			return false
		}
	}
	return true
}

// helper listing every playable column (0-indexed)
func ValidMoves(s GameState) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if ValidateMove(s, col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SwitchPlayer hands the turn to the other player.
func SwitchPlayer(s GameState) GameState {
	s.Current = s.Current.Opponent()
	return s
}
