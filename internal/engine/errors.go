package engine

import "errors"

var (
	// ErrNoTargetDir indicates a copy request without a target directory.
	ErrNoTargetDir = errors.New("target directory not specified")
)
