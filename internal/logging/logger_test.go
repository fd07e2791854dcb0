package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
)

func TestNewWithWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Debug().Msg("hidden")
	logger.Info().Str("game_id", "abc").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %s", out)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, out)
	}
	if entry["message"] != "shown" || entry["game_id"] != "abc" {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := New(&config.Config{LogLevel: "debug", LogFile: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content %q", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(&config.Config{LogLevel: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
