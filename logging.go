package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// setupLogger builds the process logger. The TUI owns the terminal,
// so output goes to ~/.pigment.log instead of stderr.
func setupLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logPath := ".pigment.log"
	if homeDir, err := os.UserHomeDir(); err == nil {
		logPath = filepath.Join(homeDir, ".pigment.log")
	}
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
