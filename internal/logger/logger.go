/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides console logging for the czero CLI.
// It can be silenced for the MCP server, where stdout and stderr belong
// to the protocol.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger zerolog.Logger
)

func init() {
	rebuild()
}

func rebuild() {
	console := zerolog.ConsoleWriter{
		Out:        output,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			switch i {
			case zerolog.LevelWarnValue:
				return "warning:"
			case zerolog.LevelErrorValue:
				return "error:"
			case zerolog.LevelDebugValue:
				return "debug:"
			default:
				return ""
			}
		},
	}
	logger = zerolog.New(console).Level(level)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		level = zerolog.DebugLevel
	} else {
		level = zerolog.InfoLevel
	}
	rebuild()
}

// SetQuiet suppresses everything below warnings.
func SetQuiet(quiet bool) {
	mu.Lock()
	defer mu.Unlock()
	if quiet {
		level = zerolog.WarnLevel
	} else {
		level = zerolog.InfoLevel
	}
	rebuild()
}

func current() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error logs an error message.
func Error(format string, args ...any) {
	l := current()
	l.Error().Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	l := current()
	l.Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	l := current()
	l.Info().Msgf(format, args...)
}

// Debug logs a debug message, shown only when verbose.
func Debug(format string, args ...any) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// WarnList logs title followed by one bullet per item as a warning.
func WarnList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	l := current()
	l.Warn().Msg(bullets(title, items))
}

// ErrorList logs title followed by one bullet per item as an error.
func ErrorList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	l := current()
	l.Error().Msg(bullets(title, items))
}

func bullets(title string, items []string) string {
	var sb strings.Builder
	sb.WriteString(title)
	for _, item := range items {
		fmt.Fprintf(&sb, "\n  • %s", item)
	}
	return sb.String()
}
