package cli

import (
	"encoding/json"
	"os"

	"github.com/cajias/lint-configs/internal/bundle"
	"github.com/cajias/lint-configs/internal/engine"
	"github.com/cajias/lint-configs/internal/fsops"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), bundle.Load)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
