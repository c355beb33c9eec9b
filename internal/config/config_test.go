package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prefix != DefaultPrefix || cfg.Locale != DefaultLocale || cfg.OutDir != DefaultOutDir {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "cobcheck.toml", "prefix = \"ZZ-\"\nlocale = \"de\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prefix != "ZZ-" {
		t.Errorf("Prefix = %q, want ZZ-", cfg.Prefix)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Locale)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("unset OutDir should keep default, got %q", cfg.OutDir)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "cobcheck.yaml", "prefix: XY-\nout-dir: build\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prefix != "XY-" {
		t.Errorf("Prefix = %q, want XY-", cfg.Prefix)
	}
	if cfg.OutDir != "build" {
		t.Errorf("OutDir = %q, want build", cfg.OutDir)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "cobcheck.ini", "prefix=NO-")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, "bad.toml", "prefix = [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
