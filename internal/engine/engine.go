// Package engine implements the config placement resolver.
//
// Each invocation is stateless: the engine decides where the bundled
// configuration belongs in a target directory, generates the bytes to write
// (attribution header plus bundled content, optionally appended to existing
// content), and performs exactly one write.
package engine

import (
	"github.com/cajias/lint-configs/internal/bundle"
	"github.com/cajias/lint-configs/internal/fsops"
)

// BundleLoader loads the bundled configuration.
type BundleLoader func() (*bundle.Config, error)

// Engine performs config placement operations.
type Engine struct {
	fs   fsops.FS
	load BundleLoader
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, load BundleLoader) *Engine {
	return &Engine{
		fs:   fs,
		load: load,
	}
}
