package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures logger.
type Options struct {
	Level string
	JSON  bool

	// File enables rotated file output when not empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New creates logger writing to stdout or rotated file.
// If log file can't be prepared, logger falls back to stdout and reports the problem as a warning.
func New(opts Options) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}

	output, outErr := buildOutput(opts)

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(output)
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if outErr != nil {
		l.WithField("path", opts.File).Warnf("logging to stdout: %v", outErr)
	}

	return l, nil
}

func buildOutput(opts Options) (io.Writer, error) {
	if opts.File == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return os.Stdout, fmt.Errorf("creating log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}, nil
}
