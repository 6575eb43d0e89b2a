package main

import (
	"time"

	"go.uber.org/zap"
)

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	mode           Mode
	grid           *Grid
	registry       *Registry
	undoTracker    *UndoTracker
	replayTracker  *ReplayTracker
	selectedLayer  int
	config         *Config
	logger         *zap.Logger
	startTime      time.Time
	help           bool
	fileOp         FileOperation
	fileInput      string
	replayedCount  int
	errorMessage   string
	successMessage string
}
