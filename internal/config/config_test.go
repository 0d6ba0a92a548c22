package config

import (
	"os"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	cfg := GetDefaults()

	if cfg.Data.Path != "data.json" {
		t.Errorf("unexpected default data path %q", cfg.Data.Path)
	}
	if !cfg.Data.Watch {
		t.Error("expected watching enabled by default")
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("unexpected default theme %q", cfg.UI.Theme)
	}
	if cfg.UI.PanelWidthRatio != 30 {
		t.Errorf("unexpected panel width ratio %d", cfg.UI.PanelWidthRatio)
	}
	if cfg.Search.DebounceMs != 300 {
		t.Errorf("unexpected debounce %d", cfg.Search.DebounceMs)
	}
	if cfg.Display.MaxCards != 100 {
		t.Errorf("unexpected card cap %d", cfg.Display.MaxCards)
	}
	if cfg.Export.Dir != "." {
		t.Errorf("unexpected export dir %q", cfg.Export.Dir)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed without a config file: %v", err)
	}
	if cfg.Data.Path != "data.json" || cfg.Search.DebounceMs != 300 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
