package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrSelectionCancelled = errors.New("selection cancelled")
)
