package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sweep.RMin != 2.9 || cfg.Sweep.RMax != 4.0 {
		t.Errorf("expected r range [2.9, 4], got [%g, %g]", cfg.Sweep.RMin, cfg.Sweep.RMax)
	}
	if cfg.Sweep.Samples != 3000 {
		t.Errorf("expected 3000 samples, got %d", cfg.Sweep.Samples)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Sweep.RSteps != 400 {
		t.Errorf("expected 400 steps, got %d", cfg.Sweep.RSteps)
	}
	if cfg.Render.Format != DefaultFormat {
		t.Errorf("expected default render settings, got %q", cfg.Render.Format)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"reversed range", func(c *Config) { c.Sweep.RMin, c.Sweep.RMax = 4, 3 }, ErrInvalidRange},
		{"negative steps", func(c *Config) { c.Sweep.RSteps = -1 }, ErrInvalidSize},
		{"negative samples", func(c *Config) { c.Sweep.Samples = -5 }, ErrInvalidSize},
		{"unknown format", func(c *Config) { c.Render.Format = "gif" }, ErrInvalidFormat},
		{"zero width", func(c *Config) { c.Render.Width = 0 }, ErrInvalidRender},
		{"alpha above one", func(c *Config) { c.Render.Alpha = 1.5 }, ErrInvalidRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateAcceptsUnusualParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sweep.RMin, cfg.Sweep.RMax = -2, 5
	cfg.Sweep.RSteps, cfg.Sweep.Samples, cfg.Sweep.Transient = 0, 0, 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	data := []byte("sweep:\n  r_min: 3.4\n  samples: 42\nrender:\n  format: svg\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Sweep.RMin != 3.4 || cfg.Sweep.Samples != 42 {
		t.Errorf("overrides not applied: %+v", cfg.Sweep)
	}
	if cfg.Sweep.RMax != DefaultRMax || cfg.Sweep.Transient != DefaultTransient {
		t.Errorf("defaults lost: %+v", cfg.Sweep)
	}
	if cfg.Render.Format != "svg" || cfg.Render.Width != DefaultWidth {
		t.Errorf("unexpected render config: %+v", cfg.Render)
	}
}

func TestLoadIntoKeepsPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(path, []byte("sweep:\n  samples: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetPreset("full")
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	full := Presets["full"]
	if cfg.Sweep.Samples != 7 {
		t.Errorf("expected 7 samples, got %d", cfg.Sweep.Samples)
	}
	if cfg.Sweep.RMin != full.RMin || cfg.Sweep.RSteps != full.RSteps || cfg.Sweep.Transient != full.Transient {
		t.Errorf("preset values lost: %+v", cfg.Sweep)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := GetPreset("window-3")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sweep: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
