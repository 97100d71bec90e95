// Package controller provides output adapters for displaying rename results.
package controller

import (
	m "github.com/mouse-blink/knave/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeRename
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to identifier listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRenameMode sets the UI to rename progress mode.
func WithRenameMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRename
	}
}

// WithViewMode sets the UI to display saved reports.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeList}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying rename progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayIdentifiers(reports []m.Report)
	DisplayConcurrencyInfo(threads int, files int)
	DisplayStartingFile(path m.Path, worker int)
	DisplayCompletedFile(report m.Report)
	DisplayDiff(path m.Path, diff string)
	DisplaySummary(reports []m.Report)
}
