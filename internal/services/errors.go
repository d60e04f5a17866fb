package services

import "errors"

// Data service errors
var (
	// Query errors
	ErrUnknownBreakdownField = errors.New("unknown breakdown field")
	ErrUnknownChart          = errors.New("unknown chart")

	// Dataset errors
	ErrReloadFailed = errors.New("dataset reload failed")
)
