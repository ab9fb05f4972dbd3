package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DocsisVersion != "3.1" {
		t.Fatalf("expected default docsis_version 3.1, got %q", cfg.DocsisVersion)
	}
	if cfg.MaxNestingDepth != 32 {
		t.Fatalf("expected default max_nesting_depth 32, got %d", cfg.MaxNestingDepth)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
docsis_version: "1.1"
include_mta: true
max_nesting_depth: 16
logging:
  level: DEBUG
  format: json
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DocsisVersion != "1.1" {
		t.Fatalf("expected docsis_version 1.1, got %q", cfg.DocsisVersion)
	}
	if !cfg.IncludeMTA {
		t.Fatal("expected include_mta to be true")
	}
	if cfg.MaxNestingDepth != 16 {
		t.Fatalf("expected max_nesting_depth 16, got %d", cfg.MaxNestingDepth)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected logging.format json, got %q", cfg.Logging.Format)
	}
}

func TestValidate_RejectsBadLoggingFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unsupported logging format")
	}
}

func TestValidate_RejectsZeroNestingDepth(t *testing.T) {
	cfg := Default()
	cfg.MaxNestingDepth = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for zero max_nesting_depth")
	}
}

func TestSave_RoundTripsThroughYAML(t *testing.T) {
	cfg := Default()
	cfg.DocsisVersion = "2.0"
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DocsisVersion != "2.0" {
		t.Fatalf("expected docsis_version 2.0, got %q", loaded.DocsisVersion)
	}
}
