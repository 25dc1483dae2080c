package config

import (
	"testing"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

func TestLoadLevelDefaults(t *testing.T) {
	t.Setenv("DEFAULT_MAX_LEVEL", "")
	t.Setenv("DEFAULT_ROOT_LEVEL", "")

	cfg := Load()
	if cfg.DefaultMaxLevel != outline.DefaultMaxLevel {
		t.Errorf("max level default %d, want %d", cfg.DefaultMaxLevel, outline.DefaultMaxLevel)
	}
	if cfg.DefaultRootLevel != outline.DefaultRootLevel {
		t.Errorf("root level default %d, want %d", cfg.DefaultRootLevel, outline.DefaultRootLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsInvertedLevels(t *testing.T) {
	cfg := Load()
	cfg.DefaultRootLevel = cfg.DefaultMaxLevel + 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when root exceeds max")
	}
}
