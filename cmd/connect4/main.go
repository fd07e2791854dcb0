package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/logging"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
)

func main() {
	os.Exit(run())
}

func run() int {
	// a missing .env is fine, the defaults cover every setting
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not read .env file")
	}

	cfg := config.LoadConfig()

	logger, closer, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	reader := console.NewReader(os.Stdin)
	renderer := console.NewRenderer(os.Stdout, cfg.Color, cfg.ClearScreen)
	gameService := game.NewService(cfg, reader, renderer, logger)

	if _, err := gameService.PlayGame(); err != nil {
		logger.Error().Err(err).Msg("Game aborted")
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		return 1
	}

	return 0
}
