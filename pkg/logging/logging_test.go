package logging_test

import (
	"log/slog"
	"testing"

	"github.com/fedstack/federation-registry/pkg/logging"
)

func TestLevelValidate(t *testing.T) {
	for _, l := range []logging.Level{
		logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError,
	} {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%s) error: %v", l, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate should reject unknown levels")
	}
}

func TestLevelToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.ToSlogLevel(); got != tt.want {
			t.Errorf("ToSlogLevel(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFormatValidate(t *testing.T) {
	if err := logging.FormatText.Validate(); err != nil {
		t.Errorf("Validate(text) error: %v", err)
	}
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error: %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate should reject unknown formats")
	}
}
