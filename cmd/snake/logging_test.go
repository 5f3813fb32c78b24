package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridsnake/internal/config"
)

func TestSetupLoggingTerminalDiscards(t *testing.T) {
	logger, closer, err := setupLogging(config.LogConfig{Level: "info", Format: "text"}, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer closer.Close()
	if logger == nil {
		t.Fatal("nil logger")
	}
	if _, ok := closer.(nopCloser); !ok {
		t.Fatalf("closer = %T, want nopCloser", closer)
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	logger, closer, err := setupLogging(config.LogConfig{Level: "debug", Format: "json", File: path}, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	logger.Debug("round started", "round", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"round started"`) {
		t.Fatalf("log = %q", data)
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.log")
	if err := os.WriteFile(path, make([]byte, maxLogSizeMB*1024*1024), 0644); err != nil {
		t.Fatal(err)
	}
	logger, closer, err := setupLogging(config.LogConfig{Level: "info", Format: "text", File: path}, false)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	logger.Info("round ended", "score", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("found %d files, want the rotated log plus a fresh one", len(entries))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round ended") || len(data) > 1024 {
		t.Fatalf("fresh log = %q", data)
	}
}

func TestSetupLoggingBadLevel(t *testing.T) {
	if _, _, err := setupLogging(config.LogConfig{Level: "chatty"}, false); err == nil {
		t.Fatal("expected error")
	}
}
