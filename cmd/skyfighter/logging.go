package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// defaultLogFile is used during interactive play so the log does not
// corrupt the alternate screen.
const defaultLogFile = "~/.skyfighter/skyfighter.log"

// newLogger builds the root logger. With fallback set and no --log-file,
// the log goes to fallback instead of stderr. The returned closer must be
// called when done.
func newLogger(fallback string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		path = fallback
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfighter",
		Level:           level,
	})
	return logger, closer, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
