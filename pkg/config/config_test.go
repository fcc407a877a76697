package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Fold || !cfg.Simplify || !cfg.CSE || !cfg.DeadCode {
		t.Errorf("all passes should default to enabled: %+v", cfg)
	}
	if !cfg.Peephole || !cfg.Comments {
		t.Errorf("peephole and comments should default to enabled: %+v", cfg)
	}
	if cfg.MaxRounds != 3 {
		t.Errorf("max rounds = %d, want 3", cfg.MaxRounds)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackc.yaml")
	content := "fold: false\nmax_rounds: 7\ncomments: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Fold {
		t.Error("fold should be disabled by the file")
	}
	if cfg.MaxRounds != 7 {
		t.Errorf("max rounds = %d, want 7", cfg.MaxRounds)
	}
	if cfg.Comments {
		t.Error("comments should be disabled by the file")
	}
	// Fields absent from the file keep their defaults.
	if !cfg.Simplify || !cfg.Peephole {
		t.Errorf("absent fields lost their defaults: %+v", cfg)
	}
}

func TestLoadClampsRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackc.yaml")
	if err := os.WriteFile(path, []byte("max_rounds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MaxRounds != DefaultMaxRounds {
		t.Errorf("max rounds = %d, want the default %d", cfg.MaxRounds, DefaultMaxRounds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackc.yaml")
	if err := os.WriteFile(path, []byte("fold: [not a bool\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
