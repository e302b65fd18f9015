package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config это настройки логгера. Переменные: TRACKER_LOG_LEVEL, TRACKER_LOG_FORMAT, TRACKER_LOG_FILE.
type Config struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
	File   string `envconfig:"FILE" default:"app.log"`
}

// logWriter возвращает writer в файл + stderr. Без файла или при ошибке открытия пишет только в stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку уровня (debug, info, warn, error) в slog.Level. Неизвестное значение даёт Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер по конфигу.
func New(cfg Config) *slog.Logger {
	return newTo(logWriter(cfg.File), cfg)
}

// NewWithLevel возвращает текстовый логгер в stderr с заданным уровнем.
func NewWithLevel(level string) *slog.Logger {
	return New(Config{Level: level})
}

func newTo(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
