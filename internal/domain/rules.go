package domain

// ValidateMove reports whether a piece can be dropped into column
// (0-indexed). It never changes the state.
func ValidateMove(s GameState, column int) bool {
	return s.LandingRow(column) >= 0
}

func moveErr(s GameState, column int) error {
	if column < 0 || column >= Columns {
		return ErrColumnOutOfRange
	}
	if s.History[column].IsFull() {
		return ErrColumnFull
	}
	return nil
}

// ApplyMove drops a piece for the current player. The turn is not switched:
// the caller checks for a win first.
func ApplyMove(s GameState, column int) (GameState, int, error) {
	return ApplyMoveFor(s, column, s.Current)
}

// ApplyMoveFor drops a piece for player into column and returns the new
// state along with the row the piece landed on. The history is appended
// first and the landing row is computed from its length before the append,
// so pieces stack from the bottom up.
func ApplyMoveFor(s GameState, column int, player PlayerID) (GameState, int, error) {
	if err := moveErr(s, column); err != nil {
		return s, -1, err
	}

	before := s.History[column].Len()
	s.History[column] = s.History[column].push(player)
	row := Rows - 1 - before
	s.Grid[row][column] = player
	s.Moves++

	return s, row, nil
}

// CheckWin reports whether player has ToWin pieces in a row anywhere on the
// board. It is meant to be called for the player who just moved.
func CheckWin(s GameState, player PlayerID) bool {
	_, ok := WinningDirection(s, player)
	return ok
}

// WinningDirection returns the first direction in which player has a
// winning line.
func WinningDirection(s GameState, player PlayerID) (Direction, bool) {
	if player != Player1 && player != Player2 {
		return 0, false
	}
	for _, d := range WinDirections {
		for line := range s.Lines(d) {
			if HasRun(line, player, ToWin) {
				return d, true
			}
		}
	}
	return 0, false
}
