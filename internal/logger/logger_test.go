package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	err := InitWithOptions(Options{Level: "debug", File: logPath, Console: false})
	if err != nil {
		t.Fatalf("InitWithOptions: %v", err)
	}

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	err := InitWithOptions(Options{Level: "warn", File: logPath, Console: false})
	if err != nil {
		t.Fatalf("InitWithOptions: %v", err)
	}

	Debug("should be filtered")
	Warn("should appear")
	Sync()

	data, _ := os.ReadFile(logPath)
	if strings.Contains(string(data), "should be filtered") {
		t.Error("debug message should have been filtered at warn level")
	}
	if !strings.Contains(string(data), "should appear") {
		t.Error("warn message missing from log file")
	}
}
