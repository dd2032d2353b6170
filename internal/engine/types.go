package engine

// CopyRequest represents a request to copy the bundled configuration into a
// project directory.
type CopyRequest struct {
	// TargetDir is the directory to place the configuration in. Must be set;
	// the CLI resolves the working directory before building the request.
	TargetDir string

	// Merge appends to an existing pyproject.toml instead of writing a
	// sidecar file next to it.
	Merge bool
}

// CopyResult represents the result of a copy operation.
type CopyResult struct {
	// Path is the absolute path of the file that was written.
	Path string `json:"path"`

	// Mode is the placement mode that was applied.
	Mode Mode `json:"mode"`

	// Sidecar is true when the configuration was written to the sidecar
	// filename because pyproject.toml already existed.
	Sidecar bool `json:"sidecar"`

	// Merged is true when the configuration was appended to an existing
	// pyproject.toml.
	Merged bool `json:"merged"`
}

// ShowResult represents the bundled configuration as reported by Show.
type ShowResult struct {
	// Name is the bundled resource filename.
	Name string `json:"name"`

	// Version is the bundled configuration version.
	Version string `json:"version"`

	// Content is the bundled configuration text.
	Content string `json:"content"`
}
