package bundle

import (
	"fmt"
	"strings"
)

// Header returns the attribution comment block prepended to every copied
// configuration. It is a pure function of the version string.
func Header(version string) string {
	return fmt.Sprintf(`# This configuration was copied from the agentic-guardrails package
# Package version: %s
# Source: https://github.com/cajias/lint-configs
#
# To update: install the latest lint-configs release and run: lint-configs copy
#
# After copying, customize these sections for your project:
# - [tool.ruff.lint.isort] known-first-party: Add your package name
# - [tool.coverage.run] source: Add your package name
# - [[tool.mypy.overrides]] module: Add your third-party dependencies
#

`, version)
}

// Separator returns the delimiter block written between pre-existing content
// and the appended configuration in merge mode.
func Separator() string {
	rule := "# " + strings.Repeat("=", 76) + "\n"
	return "\n\n" + rule +
		"# Linting Configuration from agentic-guardrails package\n" +
		rule + "\n"
}
