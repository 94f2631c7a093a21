package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"fnm/internal/config"
	"fnm/internal/logging"
)

func TestLoggerFiltersBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogLevelWarn, &buf)

	logger.Info("quiet", "key", "dropped")
	logger.Warn("loud", "alias", "default")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "loud") {
		t.Fatalf("warn record missing: %q", out)
	}
	if !strings.Contains(out, "alias=default") {
		t.Fatalf("attrs missing: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes on a non-terminal writer: %q", out)
	}
}

func TestLoggerGroupsPrefixAttrKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogLevelInfo, &buf).WithGroup("dirs").With("base", "/x")

	logger.Info("resolved")

	if out := buf.String(); !strings.Contains(out, "dirs.base=/x") {
		t.Fatalf("expected grouped attr key, got %q", out)
	}
}

func TestTraceLevelEnablesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LogLevelTrace, &buf)

	logger.Debug("verbose")

	if out := buf.String(); !strings.Contains(out, "verbose") {
		t.Fatalf("expected debug record at trace level, got %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("ignored")
}
