// Package logfile writes the per-run wizard log. Each run gets its own
// timestamped file under a fixed per-user directory; the terminal output is
// rendered separately and never goes through here.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is an append-only, leveled log file for a single wizard run.
// The zero-value methods are safe: a Log that failed to open drops
// everything, matching the best-effort contract of the wizard's logging.
type Log struct {
	logger *zap.Logger
	path   string
	closer func()
}

// New creates the log directory under the user's home and opens a fresh
// run log in it. Any failure yields a no-op log rather than an error;
// logging must never stop the installation.
func New(dirName string) *Log {
	home, err := os.UserHomeDir()
	if err != nil {
		return nop()
	}
	return NewAt(filepath.Join(home, dirName))
}

// NewAt opens a fresh run log inside dir, creating dir if needed.
func NewAt(dir string) *Log {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nop()
	}
	name := fmt.Sprintf("claude_setup_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nop()
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zap.InfoLevel)

	logger := zap.New(core)
	return &Log{
		logger: logger,
		path:   path,
		closer: func() {
			_ = logger.Sync()
			_ = f.Close()
		},
	}
}

func nop() *Log {
	return &Log{logger: zap.NewNop()}
}

// Path returns the log file path, or "" when logging is disabled.
func (l *Log) Path() string { return l.path }

// Name returns the base file name shown in the summary, or "Not available".
func (l *Log) Name() string {
	if l.path == "" {
		return "Not available"
	}
	return filepath.Base(l.path)
}

func (l *Log) Info(msg string)    { l.logger.Info(msg) }
func (l *Log) Warning(msg string) { l.logger.Warn(msg) }
func (l *Log) Error(msg string)   { l.logger.Error(msg) }

// Close flushes and closes the underlying file.
func (l *Log) Close() {
	if l.closer != nil {
		l.closer()
	}
}
