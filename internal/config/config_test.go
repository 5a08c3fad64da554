package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Defaults() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Defaults())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubesolver.yaml")
	contents := "pdb_dir: /var/cache/cubesolver\ndefault_scramble: 10\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PDBDir != "/var/cache/cubesolver" {
		t.Errorf("PDBDir = %q, want /var/cache/cubesolver", cfg.PDBDir)
	}
	if cfg.DefaultScramble != 10 {
		t.Errorf("DefaultScramble = %d, want 10", cfg.DefaultScramble)
	}
	// Fields absent from the file keep their default values.
	if cfg.DefaultMaxIter != Defaults().DefaultMaxIter {
		t.Errorf("DefaultMaxIter = %d, want default %d", cfg.DefaultMaxIter, Defaults().DefaultMaxIter)
	}
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Defaults() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}
