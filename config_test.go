package traffic

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTimingConfig(t *testing.T) {
	cfg := DefaultTimingConfig()

	if cfg.GreenStraight != 10 || cfg.GreenLeft != 5 {
		t.Errorf("Unexpected green times: %d/%d", cfg.GreenStraight, cfg.GreenLeft)
	}
	if cfg.Yellow != 2 || cfg.AllRed != 3 || cfg.RedYellow != 4 {
		t.Errorf("Unexpected clearance times: %d/%d/%d", cfg.Yellow, cfg.AllRed, cfg.RedYellow)
	}
	if cfg.ExtThreshold != 3 || cfg.MaxExtension != 10 || cfg.SkipLimit != 2 {
		t.Errorf("Unexpected adaptive parameters: %d/%d/%d",
			cfg.ExtThreshold, cfg.MaxExtension, cfg.SkipLimit)
	}
}

func TestLoadTimingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.yaml")
	content := []byte(`green_st: 12
green_lt: 6
yellow: 3
all_red: 2
red_yellow: 1
ext_threshold: 4
max_ext: 8
skip_limit: 3
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTimingConfig(path)
	if err != nil {
		t.Fatalf("LoadTimingConfig failed: %v", err)
	}

	expected := TimingConfig{
		GreenStraight: 12,
		GreenLeft:     6,
		Yellow:        3,
		AllRed:        2,
		RedYellow:     1,
		ExtThreshold:  4,
		MaxExtension:  8,
		SkipLimit:     3,
	}
	if cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, cfg)
	}
}

func TestLoadTimingConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.yaml")
	if err := os.WriteFile(path, []byte("green_st: 7\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTimingConfig(path)
	if err != nil {
		t.Fatalf("LoadTimingConfig failed: %v", err)
	}
	if cfg.GreenStraight != 7 {
		t.Errorf("Expected green_st 7, got %d", cfg.GreenStraight)
	}
	if cfg.Yellow != 0 || cfg.SkipLimit != 0 {
		t.Error("Absent fields should stay zero")
	}
}

func TestLoadTimingConfigMissingFile(t *testing.T) {
	_, err := LoadTimingConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !IsConfigError(err) {
		t.Errorf("Expected a config error, got %T", err)
	}
	if GetErrorCode(err) != ErrCodeConfig {
		t.Errorf("Expected ErrCodeConfig, got %d", GetErrorCode(err))
	}
}

func TestLoadTimingConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.yaml")
	if err := os.WriteFile(path, []byte("green_st: [nope\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadTimingConfig(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}
