package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "swipedeck.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging keeps the terminal clean: without debug every log is discarded,
// with debug it goes to logs/swipedeck.log, rotated once it grows past maxLogSize
// The returned file is nil when logging is disabled
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("swipedeck-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	log.SetOutput(f)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	logger.Info("logging started", "pid", os.Getpid())
	return logger, f
}
