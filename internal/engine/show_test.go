package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/cajias/lint-configs/internal/bundle"
	"github.com/cajias/lint-configs/internal/fsops"
)

func TestShow(t *testing.T) {
	result, err := newTestEngine().Show()
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	if result.Name != bundle.Name {
		t.Errorf("Name = %q, want %q", result.Name, bundle.Name)
	}
	if result.Version != bundle.Version {
		t.Errorf("Version = %q, want %q", result.Version, bundle.Version)
	}
	if !strings.Contains(result.Content, "[tool.ruff]") {
		t.Error("Content missing [tool.ruff] section")
	}
}

func TestShow_Idempotent(t *testing.T) {
	eng := newTestEngine()

	first, err := eng.Show()
	if err != nil {
		t.Fatalf("first Show() error = %v", err)
	}
	second, err := eng.Show()
	if err != nil {
		t.Fatalf("second Show() error = %v", err)
	}

	if first.Name != second.Name || first.Version != second.Version || first.Content != second.Content {
		t.Error("Show() results differ between calls")
	}
}

func TestShow_ResourceNotFound(t *testing.T) {
	eng := New(fsops.NewRealFS(), func() (*bundle.Config, error) {
		return nil, bundle.ErrResourceNotFound
	})

	_, err := eng.Show()
	if !errors.Is(err, bundle.ErrResourceNotFound) {
		t.Errorf("Show() error = %v, want ErrResourceNotFound", err)
	}
}
