// Package bundle ships the canonical linter configuration as an embedded
// resource and generates the attribution text that accompanies every copy.
//
// The resource is compiled into the binary via go:embed, so it is available
// wherever the binary runs. A missing resource therefore indicates a broken
// build rather than a runtime condition.
package bundle

import (
	_ "embed"
	"errors"
)

// Version is the version of the bundled configuration. It is stamped into
// the attribution header of every copied file.
const Version = "1.0.0"

// Name is the filename of the bundled resource.
const Name = "pyproject-linters.toml"

//go:embed pyproject-linters.toml
var content []byte

// ErrResourceNotFound indicates the bundled resource is missing or empty.
// This is a packaging defect, not a runtime condition to recover from.
var ErrResourceNotFound = errors.New("bundled configuration resource not found")

// Config is the immutable bundled configuration.
type Config struct {
	// Name is the resource filename.
	Name string

	// Version is the bundled configuration version.
	Version string

	// Content is the raw configuration text.
	Content []byte
}

// Load returns the bundled configuration.
func Load() (*Config, error) {
	if len(content) == 0 {
		return nil, ErrResourceNotFound
	}
	return &Config{
		Name:    Name,
		Version: Version,
		Content: content,
	}, nil
}
