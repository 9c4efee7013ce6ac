package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging opens dir/snake.log when debug is set, rotating it to .old past maxLogSize
// Without debug all output is discarded, the terminal owns stdout and stderr
// The stdlib log package is redirected to the same destination
func setupLogging(debug bool, dir string) (zerolog.Logger, io.Closer, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			log.SetOutput(io.Discard)
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f, nil
}
