package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestRunLoggerPrefix(t *testing.T) {
	base := &bufferLogger{}
	logger := newRunLogger(base)
	logger.Log("Status: %d", 403)

	line := strings.TrimSpace(base.buf.String())
	if !regexp.MustCompile(`^\[[0-9a-f-]{8}\] Status: 403$`).MatchString(line) {
		t.Errorf("unexpected line %q", line)
	}
	if logger.id == newRunLogger(base).id {
		t.Error("run IDs should differ between runs")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")
	l, closer := setupLogging(path)
	l.Printf("hello %s", "file")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file content = %q", data)
	}
}

func TestSetupLoggingFallsBackToStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "probe.log")
	l, closer := setupLogging(path)
	if l == nil || closer == nil {
		t.Fatal("expected a usable logger and closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
