package engine

import (
	"fmt"
	"path/filepath"

	"github.com/cajias/lint-configs/internal/fsops"
)

const (
	// CanonicalName is the standard project configuration filename the tool
	// prefers to write.
	CanonicalName = "pyproject.toml"

	// SidecarName is the alternate filename used to avoid overwriting a
	// pre-existing canonical file.
	SidecarName = "pyproject-linters.toml"
)

// Mode is a placement mode.
type Mode string

const (
	// ModeCreateNew writes header + content to the canonical path.
	ModeCreateNew Mode = "create_new"

	// ModeCreateSidecar writes header + content to the sidecar path, leaving
	// the existing canonical file untouched.
	ModeCreateSidecar Mode = "create_sidecar"

	// ModeAppendMerge appends separator + header + content to the existing
	// canonical file.
	ModeAppendMerge Mode = "append_merge"
)

// Decision is a resolved placement: which file to write and how.
// Computed fresh on every invocation, never persisted.
type Decision struct {
	// TargetPath is the file the write will go to.
	TargetPath string

	// Mode is how the write will be performed.
	Mode Mode
}

// ResolvePlacement decides where the bundled configuration belongs in
// targetDir. The canonical file is never selected for a plain overwrite:
// without merge a pre-existing canonical file routes the write to the
// sidecar name instead.
func ResolvePlacement(fs fsops.FS, targetDir string, mergeRequested bool) (*Decision, error) {
	canonical := filepath.Join(targetDir, CanonicalName)

	exists, err := fs.Exists(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", canonical, err)
	}

	switch {
	case mergeRequested && exists:
		return &Decision{TargetPath: canonical, Mode: ModeAppendMerge}, nil
	case !mergeRequested && exists:
		return &Decision{TargetPath: filepath.Join(targetDir, SidecarName), Mode: ModeCreateSidecar}, nil
	default:
		return &Decision{TargetPath: canonical, Mode: ModeCreateNew}, nil
	}
}
