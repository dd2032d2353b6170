package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cajias/lint-configs/internal/bundle"
)

// Algorithm steps:
// 1. Load the bundled configuration
// 2. Resolve the placement (canonical vs sidecar vs merge)
// 3. Assemble the bytes (header + content, with separator in merge mode)
// 4. Write atomically - exactly one write per invocation
func (e *Engine) Copy(req *CopyRequest) (*CopyResult, error) {
	if req.TargetDir == "" {
		return nil, ErrNoTargetDir
	}

	targetDir, err := filepath.Abs(req.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target directory: %w", err)
	}

	cfg, err := e.load()
	if err != nil {
		return nil, err
	}

	decision, err := ResolvePlacement(e.fs, targetDir, req.Merge)
	if err != nil {
		return nil, err
	}

	header := bundle.Header(cfg.Version)

	var data []byte
	if decision.Mode == ModeAppendMerge {
		existing, err := e.fs.ReadFile(decision.TargetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read existing %s: %w", CanonicalName, err)
		}
		// Original bytes always come first; only trailing whitespace is
		// dropped before the separator block.
		var merged strings.Builder
		merged.WriteString(strings.TrimRightFunc(string(existing), unicode.IsSpace))
		merged.WriteString(bundle.Separator())
		merged.WriteString(header)
		merged.Write(cfg.Content)
		data = []byte(merged.String())
	} else {
		data = append([]byte(header), cfg.Content...)
	}

	if err := e.fs.AtomicWrite(decision.TargetPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write configuration: %w", err)
	}

	return &CopyResult{
		Path:    decision.TargetPath,
		Mode:    decision.Mode,
		Sidecar: decision.Mode == ModeCreateSidecar,
		Merged:  decision.Mode == ModeAppendMerge,
	}, nil
}
