package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("level = %v, want warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewLoggerBadLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("level = %v, want info", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "LOG_LEVEL") {
		t.Fatal("bad level should be reported")
	}
}
