package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "autogitignore.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logger       *zap.Logger
)

// Configure routes the shared logger to the given file. Empty values fall
// back to the default path. Directories are created automatically when
// missing. The terminal belongs to the UI, so nothing is ever written to
// stdout or stderr besides setup failures.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	target := strings.TrimSpace(path)
	if target == "" {
		target = defaultLogFile
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			target = defaultLogFile
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{target}
	cfg.ErrorOutputPaths = []string{target}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	built, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		return
	}
	logger = built
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error writes an error entry to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Error(err.Error())
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	l := logger
	mu.Unlock()
	if !enabled || l == nil {
		return
	}
	l.Info(event, zap.Any("payload", payload))
}

// Sync flushes buffered log entries. Safe to call before exit even when
// Configure never ran.
func Sync() {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	_ = l.Sync()
}
