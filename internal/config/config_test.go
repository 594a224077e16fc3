package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "tasks.json" {
		t.Errorf("store file: got %q", cfg.StoreFile)
	}
	if cfg.NoColor || cfg.Verbose {
		t.Errorf("defaults: got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "store_file = \"/tmp/elsewhere.json\"\nno_color = true\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoreFile != "/tmp/elsewhere.json" {
		t.Errorf("store file: got %q", cfg.StoreFile)
	}
	if !cfg.NoColor {
		t.Error("no_color not applied")
	}
	if cfg.Verbose {
		t.Error("verbose should keep its default")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("store_file = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected an error for a malformed config")
	}
}
