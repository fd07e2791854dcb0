package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// MoveReader supplies the columns the players pick, already 0-indexed.
type MoveReader interface {
	ReadColumn() (int, error)
	WaitForEnter() error
}

type Renderer interface {
	Intro()
	Board(s domain.GameState)
	Prompt(p domain.PlayerID)
	InvalidMove()
	Winner(p domain.PlayerID)
	Draw()
}

type Options struct {
	ShowIntro bool
	EndPause  time.Duration
}

// Result is how a finished game ended.
type Result struct {
	GameID string
	Status domain.GameStatus
	Winner domain.PlayerID
	Moves  int
}

// GameSession runs one game between two players sharing the console.
type GameSession struct {
	GameID   string
	Game     *domain.Game
	reader   MoveReader
	renderer Renderer
	logger   zerolog.Logger
	opts     Options
	sleep    func(time.Duration)
}

func NewGameSession(reader MoveReader, renderer Renderer, logger zerolog.Logger, opts Options) *GameSession {
	gameID := uid.GenerateGameID()
	return &GameSession{
		GameID:   gameID,
		Game:     domain.NewGame(),
		reader:   reader,
		renderer: renderer,
		logger:   logger.With().Str("game_id", gameID).Logger(),
		opts:     opts,
		sleep:    time.Sleep,
	}
}

// Play runs the game until a player wins or the board fills up. It only
// fails when the input can no longer be read.
func (gs *GameSession) Play() (Result, error) {
	gs.logger.Info().Msg("Game started")

	if gs.opts.ShowIntro {
		gs.renderer.Intro()
		if err := gs.reader.WaitForEnter(); err != nil {
			return gs.result(), fmt.Errorf("waiting for start: %w", err)
		}
	}

	for !gs.Game.IsFinished() {
		gs.renderer.Board(gs.Game.State)
		if err := gs.HandleTurn(); err != nil {
			return gs.result(), err
		}
	}

	gs.renderer.Board(gs.Game.State)
	if gs.opts.EndPause > 0 {
		gs.sleep(gs.opts.EndPause)
	}

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.renderer.Winner(gs.Game.Winner)
	case domain.StatusDraw:
		gs.renderer.Draw()
	}

	res := gs.result()
	gs.logger.Info().
		Str("status", string(res.Status)).
		Int("winner", int(res.Winner)).
		Int("moves", res.Moves).
		Msg("Game finished")
	return res, nil
}

// HandleTurn prompts the current player and keeps reading until a valid
// column comes in, then plays it.
func (gs *GameSession) HandleTurn() error {
	player := gs.Game.CurrentPlayer()
	gs.renderer.Prompt(player)

	for {
		column, err := gs.reader.ReadColumn()
		if err != nil {
			return fmt.Errorf("reading move for player %d: %w", player, err)
		}

		row, err := gs.Game.MakeMove(column)
		if errors.Is(err, domain.ErrInvalidMove) {
			gs.logger.Info().
				Int("player", int(player)).
				Int("column", column+1).
				Err(err).
				Msg("Rejected move")
			gs.renderer.InvalidMove()
			continue
		}
		if err != nil {
			return err
		}

		gs.logger.Debug().
			Int("player", int(player)).
			Int("column", column+1).
			Int("row", row).
			Int("move", gs.Game.MoveCount()).
			Msg("Move played")
		return nil
	}
}

func (gs *GameSession) result() Result {
	return Result{
		GameID: gs.GameID,
		Status: gs.Game.Status,
		Winner: gs.Game.Winner,
		Moves:  gs.Game.MoveCount(),
	}
}
