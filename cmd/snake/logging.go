package main

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"gridsnake/internal/config"
)

// Log files roll over at maxLogSizeMB, keeping maxLogBackups old files.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// setupLogging builds the process logger. The terminal frontend owns stdout
// and stderr, so without a log file its output is discarded. The returned
// closer is never nil.
func setupLogging(cfg config.LogConfig, terminal bool) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.File != "":
		f := openLogFile(cfg.File)
		w, closer = f, f
	case terminal:
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), closer, nil
}

// openLogFile returns an appending writer on path. Missing directories are
// created on first write.
func openLogFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
