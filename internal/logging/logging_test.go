package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	if got := New(false).GetLevel(); got != log.InfoLevel {
		t.Errorf("default level: got %v, want info", got)
	}
	if got := New(true).GetLevel(); got != log.DebugLevel {
		t.Errorf("verbose level: got %v, want debug", got)
	}
}

func TestNewWithOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOptions(&buf, DefaultOptions())

	logger.Debug("hidden")
	logger.Info("converted", "tasks", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug output should be suppressed at info level")
	}
	if !strings.Contains(out, "converted") || !strings.Contains(out, "tasks") {
		t.Errorf("info output missing fields: %q", out)
	}
	if !strings.Contains(out, "gt2sp") {
		t.Errorf("prefix missing: %q", out)
	}
}
