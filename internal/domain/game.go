package domain

type Game struct {
	State  GameState
	Status GameStatus
	Winner PlayerID
}

func NewGame() *Game {
	return &Game{
		State:  NewGameState(),
		Status: StatusActive,
		Winner: Empty,
	}
}

func (g *Game) CurrentPlayer() PlayerID {
	return g.State.Current
}

func (g *Game) MoveCount() int {
	return g.State.Moves
}

// MakeMove plays column (0-indexed) for the current player. The player only
// changes when the move neither wins nor draws the game.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	next, row, err := ApplyMove(g.State, column)
	if err != nil {
		return -1, err
	}
	g.State = next

	if CheckWin(g.State, g.State.Current) {
		g.Status = StatusWon
		g.Winner = g.State.Current
		return row, nil
	}

	if IsBoardFull(g.State) {
		g.Status = StatusDraw
		return row, nil
	}

	g.State = SwitchPlayer(g.State)
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status.IsFinished()
}
