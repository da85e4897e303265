package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	zlog  zerolog.Logger
}

func NewLogger(level int) *defaultLogger {
	return newLogger(level, os.Stderr)
}

func newLogger(level int, w io.Writer) *defaultLogger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return &defaultLogger{
		level: level,
		zlog:  zerolog.New(output).With().Timestamp().Logger(),
	}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		l.zlog.Debug().Msgf(msg, a...)
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		l.zlog.Info().Msgf(msg, a...)
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		l.zlog.Warn().Msgf(msg, a...)
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		l.zlog.Error().Msgf(msg, a...)
	}
}
