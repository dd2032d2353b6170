package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags restores flag state between Execute calls, since command flag
// variables are package level and persist across tests.
func resetFlags() {
	copyTarget = ""
	copyMerge = false
	showCat = false
	jsonOutput = false
}

// captureStdout captures os.Stdout while fn runs. Needed for output that
// does not go through the command's out stream (JSON results, colored
// status lines).
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	oldStdout := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestCopyCommand_EmptyDir(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	rootCmd.SetArgs([]string{"copy", "--target", tmpDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	target := filepath.Join(tmpDir, "pyproject.toml")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", target, err)
	}

	content := string(data)
	if !strings.Contains(content, "agentic-guardrails") {
		t.Error("copied file missing attribution")
	}
	if !strings.Contains(content, "[tool.ruff]") {
		t.Error("copied file missing [tool.ruff] section")
	}
}

func TestCopyCommand_ExistingCanonical(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	canonical := filepath.Join(tmpDir, "pyproject.toml")
	existing := "[project]\nname = 'test'\n"
	if err := os.WriteFile(canonical, []byte(existing), 0644); err != nil {
		t.Fatalf("Failed to create canonical file: %v", err)
	}

	rootCmd.SetArgs([]string{"copy", "--target", tmpDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Existing file untouched
	data, err := os.ReadFile(canonical)
	if err != nil {
		t.Fatalf("Failed to read canonical file: %v", err)
	}
	if string(data) != existing {
		t.Errorf("canonical file changed: %q", data)
	}

	// Sidecar written instead
	sidecar := filepath.Join(tmpDir, "pyproject-linters.toml")
	data, err = os.ReadFile(sidecar)
	if err != nil {
		t.Fatalf("Failed to read sidecar file: %v", err)
	}
	if !strings.Contains(string(data), "[tool.ruff]") {
		t.Error("sidecar file missing [tool.ruff] section")
	}
}

func TestCopyCommand_Merge(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	canonical := filepath.Join(tmpDir, "pyproject.toml")
	if err := os.WriteFile(canonical, []byte("[project]\nname = 'test'\n"), 0644); err != nil {
		t.Fatalf("Failed to create canonical file: %v", err)
	}

	rootCmd.SetArgs([]string{"copy", "--target", tmpDir, "--merge"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(canonical)
	if err != nil {
		t.Fatalf("Failed to read merged file: %v", err)
	}
	content := string(data)

	projectIdx := strings.Index(content, "[project]")
	ruffIdx := strings.Index(content, "[tool.ruff]")
	if projectIdx < 0 || ruffIdx < 0 {
		t.Fatal("merged file missing [project] or [tool.ruff]")
	}
	if projectIdx > ruffIdx {
		t.Error("[project] must precede [tool.ruff] in merged file")
	}
}

func TestCopyCommand_MissingTarget(t *testing.T) {
	resetFlags()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	rootCmd.SetArgs([]string{"copy", "--target", missing})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() into missing directory should fail")
	}
}

func TestCopyCommand_JSON(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	output := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"copy", "--target", tmpDir, "--json"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})

	var result struct {
		Path string `json:"path"`
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output %q: %v", output, err)
	}
	if filepath.Base(result.Path) != "pyproject.toml" {
		t.Errorf("JSON path basename = %q, want %q", filepath.Base(result.Path), "pyproject.toml")
	}
	if result.Mode != "create_new" {
		t.Errorf("JSON mode = %q, want %q", result.Mode, "create_new")
	}
}

func TestShowCommand(t *testing.T) {
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"show"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pyproject-linters.toml") {
		t.Errorf("show output %q missing resource name", output)
	}

	// Second run returns the same output
	buf.Reset()
	rootCmd.SetArgs([]string{"show"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if buf.String() != output {
		t.Error("show output differs between runs")
	}
}

func TestShowCommand_Cat(t *testing.T) {
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"show", "--cat"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[tool.ruff]") {
		t.Error("show --cat output missing [tool.ruff] section")
	}
	if !strings.Contains(output, "[tool.mypy]") {
		t.Error("show --cat output missing [tool.mypy] section")
	}
}

func TestVersionFlag(t *testing.T) {
	resetFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), rootCmd.Version) {
		t.Errorf("version output %q missing version %q", buf.String(), rootCmd.Version)
	}
}
