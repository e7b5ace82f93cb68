// Package logs builds the logrus logger used by the CLI.
package logs

import (
	"io"
	"os"

	"github.com/rustyeddy/riskmate/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus with the rotated file it may own.
type Logger struct {
	*logrus.Logger
	stderr io.Writer
	file   *lumberjack.Logger
}

// New configures a logger writing text to stderr and, when cfg.File is
// set, to a rotated log file. Unknown levels fall back to info.
func New(cfg config.LogConfig, stderr io.Writer) *Logger {
	if stderr == nil {
		stderr = os.Stderr
	}

	l := &Logger{Logger: logrus.New(), stderr: stderr}
	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	out := stderr
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out = io.MultiWriter(stderr, l.file)
	}
	l.SetOutput(out)

	return l
}

// Close releases the log file, if any. Later entries go to stderr only.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.SetOutput(l.stderr)
	err := l.file.Close()
	l.file = nil
	return err
}
