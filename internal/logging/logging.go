// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the zerolog sink shared by all commands.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logMaxSizeMB is the rotation threshold for the file sink.
const logMaxSizeMB = 1

// New returns a logger writing human-readable output to stderr and JSON
// lines to a rotating file capped at 1 MB per segment. An empty path
// disables the file sink.
func New(path string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var w io.Writer = console
	if path != "" {
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logMaxSizeMB,
			MaxBackups: 5,
		})
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
