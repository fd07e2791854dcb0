package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"CONNECT4_SHOW_INTRO", "CONNECT4_CLEAR_SCREEN", "CONNECT4_COLOR",
		"CONNECT4_END_PAUSE_MS", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if !cfg.ShowIntro || !cfg.ClearScreen || !cfg.Color {
		t.Errorf("display defaults = %+v, want all enabled", cfg)
	}
	if cfg.EndPause != 500*time.Millisecond {
		t.Errorf("EndPause = %v, want 500ms", cfg.EndPause)
	}
	if cfg.LogLevel != "warn" || cfg.LogFile != "" {
		t.Errorf("log settings = %q %q", cfg.LogLevel, cfg.LogFile)
	}
	if AppConfig != cfg {
		t.Error("AppConfig not set")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONNECT4_SHOW_INTRO", "false")
	t.Setenv("CONNECT4_CLEAR_SCREEN", "0")
	t.Setenv("CONNECT4_COLOR", "FALSE")
	t.Setenv("CONNECT4_END_PAUSE_MS", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FILE", "/tmp/connect4.log")

	cfg := LoadConfig()
	if cfg.ShowIntro || cfg.ClearScreen || cfg.Color {
		t.Errorf("display settings = %+v, want all disabled", cfg)
	}
	if cfg.EndPause != 0 {
		t.Errorf("EndPause = %v, want 0", cfg.EndPause)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/connect4.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Setenv("CONNECT4_SHOW_INTRO", "maybe")
	t.Setenv("CONNECT4_END_PAUSE_MS", "soon")

	cfg := LoadConfig()
	if !cfg.ShowIntro {
		t.Error("invalid bool should fall back to the default")
	}
	if cfg.EndPause != 500*time.Millisecond {
		t.Errorf("EndPause = %v, want the default", cfg.EndPause)
	}

	t.Setenv("CONNECT4_END_PAUSE_MS", "-20")
	if cfg := LoadConfig(); cfg.EndPause != 0 {
		t.Errorf("negative pause gave %v, want 0", cfg.EndPause)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("C4_TEST_STR", "value")
	t.Setenv("C4_TEST_INT", "42")
	t.Setenv("C4_TEST_BOOL", "true")

	if got := GetEnv("C4_TEST_STR", "x"); got != "value" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("C4_TEST_MISSING", "x"); got != "x" {
		t.Errorf("GetEnv default = %q", got)
	}
	if got := GetEnvAsInt("C4_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvAsInt = %d", got)
	}
	if got := GetEnvAsBool("C4_TEST_BOOL", false); !got {
		t.Error("GetEnvAsBool = false")
	}
}
