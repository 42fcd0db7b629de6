package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const fileName = "mooncyc.log"

// Config holds logger configuration.
type Config struct {
	Debug bool
	Dir   string
}

// New returns a structured logger writing to a rotating file under cfg.Dir.
// In debug mode it also writes to stderr and logs at debug level; otherwise
// only info and above reach the file. The returned closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, fileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}
	return slog.New(newHandler(writer, cfg.Debug)), fileWriter, nil
}

// newHandler builds the charmbracelet handler that backs every slog call.
func newHandler(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "mooncyc",
	})
}

// Discard returns a logger that drops everything. Used when no log
// directory is available and in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
