package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	ShowIntro   bool
	ClearScreen bool
	Color       bool
	EndPause    time.Duration
	LogLevel    string
	LogFile     string
}

var AppConfig *Config

// LoadConfig reads the game settings from the environment. main loads the
// optional .env file before calling it.
func LoadConfig() *Config {
	showIntro := GetEnvAsBool("CONNECT4_SHOW_INTRO", true)
	clearScreen := GetEnvAsBool("CONNECT4_CLEAR_SCREEN", true)
	color := GetEnvAsBool("CONNECT4_COLOR", true)

	// pause before announcing the result
	endPauseMs := GetEnvAsInt("CONNECT4_END_PAUSE_MS", 500)
	if endPauseMs < 0 {
		log.Warn().Int("value", endPauseMs).Msg("CONNECT4_END_PAUSE_MS is negative, using 0")
		endPauseMs = 0
	}

	// Logging
	logLevel := strings.ToLower(GetEnv("LOG_LEVEL", "warn"))
	logFile := GetEnv("LOG_FILE", "")

	AppConfig = &Config{
		ShowIntro:   showIntro,
		ClearScreen: clearScreen,
		Color:       color,
		EndPause:    time.Duration(endPauseMs) * time.Millisecond,
		LogLevel:    logLevel,
		LogFile:     logFile,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).
			Msg("Invalid boolean value, using default")
		return defaultValue
	}
	return value
}
