package main

import (
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

type Logger interface {
	Log(format string, args ...any)
}

type stdLogger struct {
	logger *log.Logger
}

func (s *stdLogger) Log(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// runLogger tags every line with the ID of the current run so lines from
// repeated runs can be told apart in the shared log file.
type runLogger struct {
	id   string
	base Logger
}

func newRunLogger(base Logger) *runLogger {
	return &runLogger{id: generateRunID(), base: base}
}

func generateRunID() string {
	return uuid.New().String()[:8]
}

func (r *runLogger) Log(format string, args ...any) {
	r.base.Log("[%s] "+format, append([]any{r.id}, args...)...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging sends log output to stdout and, if it can be opened, to
// logPath. The returned closer is never nil.
func setupLogging(logPath string) (*log.Logger, io.Closer) {
	if logPath == "" {
		return log.New(os.Stdout, "", log.LstdFlags), nopCloser{}
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		l := log.New(os.Stdout, "", log.LstdFlags)
		l.Printf("Failed to open log file %s, logging to stdout only: %v", logPath, err)
		return l, nopCloser{}
	}

	return log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags), logFile
}
