package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_DefaultsWhenDefaultFileMissing(t *testing.T) {
	// Run from a directory with no .clausecheck.yml.
	// os.Chdir + Cleanup instead of t.Chdir, which requires Go 1.24+.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restoring wd: %v", err)
		}
	})

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Red != 60 || cfg.Thresholds.Yellow != 30 {
		t.Errorf("thresholds = %+v, want red 60 / yellow 30", cfg.Thresholds)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("format = %q, want terminal", cfg.Output.Format)
	}
	if !cfg.Calibration.IsEnabled() {
		t.Errorf("calibration should default to enabled")
	}
}

func TestLoadConfig_ErrorWhenExplicitFileMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	content := `version: "1"
thresholds:
  red: 75
  yellow: 40
calibration:
  enabled: false
output:
  format: json
  verbose: true
`
	path := filepath.Join(t.TempDir(), ".clausecheck.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Red != 75 || cfg.Thresholds.Yellow != 40 {
		t.Errorf("thresholds = %+v, want red 75 / yellow 40", cfg.Thresholds)
	}
	if cfg.Calibration.IsEnabled() {
		t.Errorf("calibration should be disabled")
	}
	if cfg.Output.Format != "json" || !cfg.Output.Verbose {
		t.Errorf("output = %+v", cfg.Output)
	}
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	content := `version: "1"
thresholds:
  red: 80
`
	path := filepath.Join(t.TempDir(), ".clausecheck.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Red != 80 {
		t.Errorf("red = %f, want 80", cfg.Thresholds.Red)
	}
	if cfg.Thresholds.Yellow != 30 {
		t.Errorf("yellow = %f, want default 30", cfg.Thresholds.Yellow)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("format = %q, want default terminal", cfg.Output.Format)
	}
	if !cfg.Calibration.IsEnabled() {
		t.Errorf("calibration should default to enabled when omitted")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".clausecheck.yml")
	if err := os.WriteFile(path, []byte("thresholds: [not a map"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
