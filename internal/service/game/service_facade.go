package game

import (
	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Reader   MoveReader
	Renderer Renderer
	Logger   zerolog.Logger
	Options  Options
}

func NewService(cfg *config.Config, reader MoveReader, renderer Renderer, logger zerolog.Logger) *Service {
	return &Service{
		Reader:   reader,
		Renderer: renderer,
		Logger:   logger,
		Options: Options{
			ShowIntro: cfg.ShowIntro,
			EndPause:  cfg.EndPause,
		},
	}
}

// NewSession starts a fresh game on the service's console.
func (s *Service) NewSession() *GameSession {
	return NewGameSession(s.Reader, s.Renderer, s.Logger, s.Options)
}

// PlayGame runs one game to the end.
func (s *Service) PlayGame() (Result, error) {
	return s.NewSession().Play()
}
