package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

func (s GameStatus) IsFinished() bool {
	return s == StatusWon || s == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove Error = "invalid move"
	ErrGameOver    Error = "game is over"
)

// ErrColumnOutOfRange and ErrColumnFull are the two ways a move can be
// invalid. Both match ErrInvalidMove with errors.Is.
var (
	ErrColumnOutOfRange = &moveError{reason: "column out of range"}
	ErrColumnFull       = &moveError{reason: "column is full"}
)

type moveError struct {
	reason string
}

func (e *moveError) Error() string {
	return string(ErrInvalidMove) + ": " + e.reason
}

func (e *moveError) Unwrap() error {
	return ErrInvalidMove
}
