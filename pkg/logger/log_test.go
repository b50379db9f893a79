package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	golocalv1 "github.com/hinfosvc/hinfosvc/pkg/golocal/v1"
)

func TestLoggerFileOut(t *testing.T) {
	dir := t.TempDir()
	logger := newLoggerHandler(&Config{
		Level:    DebugLevel,
		Path:     dir,
		FileName: "test.log",
	})

	golocalv1.PutTraceID("lt-test")
	defer golocalv1.Clean()

	logger.Trace("trace is below the configured level")
	logger.Debug("debug message %d", 1)
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")
	logger.Close()

	content, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(content)

	for _, want := range []string{
		"[DEBUG] [lt-test]",
		"debug message 1",
		"[INFO]",
		"[WARN]",
		"[ERROR]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "trace is below") {
		t.Fatalf("TRACE line written despite DEBUG level:\n%s", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	dir := t.TempDir()
	logger := newLoggerHandler(&Config{
		Level:    ErrorLevel,
		Path:     dir,
		FileName: "test.log",
	})

	logger.Info("filtered")
	logger.Error("kept")
	logger.Close()

	content, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "filtered") {
		t.Fatalf("INFO line written despite ERROR level:\n%s", content)
	}
	if !strings.Contains(string(content), "kept") {
		t.Fatalf("ERROR line missing:\n%s", content)
	}
}

func TestLoggerCloseIsIdempotentForWriters(t *testing.T) {
	logger := newLoggerHandler(&Config{Level: InfoLevel, Path: t.TempDir()})
	logger.Close()

	// Logging after Close must be a no-op, not a send on a closed channel.
	logger.Info("dropped")
}
