package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	level slog.Level

	writer io.Writer

	logToFile bool
	logFile   string
}

type Option func(*Config)

func WithLevel(level slog.Level) Option {
	return func(c *Config) {
		c.level = level
	}
}

func WithWriter(w io.Writer) Option {
	return func(c *Config) {
		c.writer = w
	}
}

func WithLogToFile(enabled bool) Option {
	return func(c *Config) {
		c.logToFile = enabled
	}
}

func WithLogFile(path string) Option {
	return func(c *Config) {
		c.logFile = path
	}
}

// New returns a logger writing colored text to stderr and, when enabled,
// JSON lines to a rotating log file.
func New(options ...Option) *slog.Logger {
	cfg := &Config{
		level:  slog.LevelInfo,
		writer: os.Stderr,

		logFile: "logs/text2speech.log",
	}

	for _, option := range options {
		option(cfg)
	}

	console := tint.NewHandler(cfg.writer, &tint.Options{
		Level:      cfg.level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(cfg.writer),
	})

	if !cfg.logToFile || cfg.logFile == "" {
		return slog.New(console)
	}

	file := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   cfg.logFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	}, &slog.HandlerOptions{
		Level: cfg.level,
	})

	return slog.New(slog.NewMultiHandler(console, file))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	if !ok {
		return false
	}

	info, err := f.Stat()

	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
