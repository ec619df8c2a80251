package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"omrdata/internal/config"
	"omrdata/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible", "file", "page 1.xml")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "INFO visible") || !strings.Contains(out, `file="page 1.xml"`) {
		t.Fatalf("unexpected console output: %q", out)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")
	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "annotation").Info("decoded", logging.Int("symbols", 3))
	if !strings.Contains(buf.String(), "annotation: decoded symbols=3") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestJSONLoggerWithFileTee(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "omrdata.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: &buf, FilePath: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("unknown shape", logging.String(logging.FieldShapeToken, "noteHeadBlack"))

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("console output is not JSON: %v (%q)", err, buf.String())
	}
	if line["level"] != "warn" || line[logging.FieldShapeToken] != "noteHeadBlack" {
		t.Fatalf("unexpected JSON line: %v", line)
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected ts key: %v", line)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "noteHeadBlack") {
		t.Fatalf("expected tee to log file, got %q", content)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "null shape", "annotation.missing_shape",
		logging.String(logging.FieldImpact, "symbol skipped"))

	out := buf.String()
	for _, want := range []string{"WARN null shape", "event_type=annotation.missing_shape", "impact=\"symbol skipped\"", "error_hint="} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-42")
	logging.WithContext(ctx, logger).Info("started")
	if !strings.Contains(buf.String(), "run_id=run-42") {
		t.Fatalf("expected run id in %q", buf.String())
	}
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
}

func TestTeeHandler(t *testing.T) {
	if _, ok := logging.TeeHandler(nil, nil).(logging.NoopHandler); !ok {
		t.Fatal("expected NoopHandler when all handlers are nil")
	}
}
