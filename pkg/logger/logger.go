package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger простой уровневый логгер, пишет одновременно в файл и stderr
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер, пишущий в указанный файл
// Если path пустой - пишет только в stderr
func New(path string, level string) (*Logger, error) {
	var writers []io.Writer
	writers = append(writers, os.Stderr)

	var file *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	return &Logger{
		level: parseLevel(level),
		out:   log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		file:  file,
	}, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) printf(level Level, prefix, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(prefix+" "+format, v...)
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.printf(LevelDebug, "[DEBUG]", format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(LevelInfo, "[INFO]", format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.printf(LevelWarn, "[WARN]", format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(LevelError, "[ERROR]", format, v...)
}

// Fatal логирует сообщение уровня ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.printf(LevelError, "[FATAL]", format, v...)
	if l.file != nil {
		_ = l.file.Close()
	}
	os.Exit(1)
}
