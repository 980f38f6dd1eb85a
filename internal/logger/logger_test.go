package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNopBeforeInit(t *testing.T) {
	// Logging before Init must not panic.
	Debug("debug before init")
	Info("info before init")
	Sync()
}

func TestFileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "render.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer Sync()

	Info("frame rendered")
	Sugar.Debugf("tile %d done", 3)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "frame rendered") {
		t.Error("log file missing info message")
	}
	if !strings.Contains(string(data), "tile 3 done") {
		t.Error("log file missing debug message")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"error":   "error",
		"info":    "info",
		"bogus":   "info",
		"":        "info",
		"INVALID": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
