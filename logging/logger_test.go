package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, LogLevelInfo)

	logger.Debug("ignored")
	logger.Info("kept")
	logger.Warn("also kept")

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Error("debug should be filtered below the minimum level")
	}
	if !strings.Contains(out, "INFO kept") {
		t.Errorf("missing info line, got %q", out)
	}
	if !strings.Contains(out, "WARN also kept") {
		t.Errorf("missing warn line, got %q", out)
	}
}

func TestConsoleLogger_CategoryAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, LogLevelDebug).WithCategory("factory")

	logger.Warn("attribute skipped", F("bean", "car"), F("attribute", "color"))

	out := buf.String()
	if !strings.Contains(out, "[factory]") {
		t.Errorf("missing category, got %q", out)
	}
	if !strings.Contains(out, "{bean=car, attribute=color}") {
		t.Errorf("missing fields, got %q", out)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("dropped")
	if logger.WithCategory("x") == nil {
		t.Error("WithCategory must return a usable logger")
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelDebug.String() != "DEBUG" || LogLevel(42).String() != "UNKNOWN" {
		t.Error("LogLevel.String mismatch")
	}
}
