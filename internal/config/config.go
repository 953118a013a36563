// Package config loads roz's configuration from TOML with environment
// overrides: a Default(), a file loader, and an env-override pass applied
// on top.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ApprovalScope controls how long a pre-tool-use gate approval remains valid.
type ApprovalScope string

const (
	ApprovalScopeSession ApprovalScope = "session"
	ApprovalScopePrompt  ApprovalScope = "prompt"
	ApprovalScopeTool    ApprovalScope = "tool"
)

// ReviewMode controls whether review is required automatically.
type ReviewMode string

const (
	ReviewModeAlways ReviewMode = "always"
	ReviewModePrompt ReviewMode = "prompt"
	ReviewModeNever  ReviewMode = "never"
)

type StorageConfig struct {
	Path string `toml:"path"`
}

type GatesConfig struct {
	Tools          []string      `toml:"tools"`
	ApprovalScope  ApprovalScope `toml:"approval_scope"`
	ApprovalTTLSec int           `toml:"approval_ttl_seconds"`
}

// IsEnabled reports whether any gate tool patterns are configured.
func (g GatesConfig) IsEnabled() bool { return len(g.Tools) > 0 }

type ReviewConfig struct {
	Mode  ReviewMode  `toml:"mode"`
	Gates GatesConfig `toml:"gates"`
}

type CircuitBreakerConfig struct {
	MaxBlocks      int `toml:"max_blocks"`
	CooldownSecond int `toml:"cooldown_seconds"`
}

type CleanupConfig struct {
	RetentionDays int `toml:"retention_days"`
}

type ExternalModelsConfig struct {
	Codex  string `toml:"codex"`
	Gemini string `toml:"gemini"`
}

type TemplateConfig struct {
	Active  string         `toml:"active"`
	Weights map[string]int `toml:"weights"`
}

type TraceConfig struct {
	MaxEvents int `toml:"max_events"`
}

// Config is the top-level roz configuration.
type Config struct {
	Storage        StorageConfig        `toml:"storage"`
	Review         ReviewConfig         `toml:"review"`
	CircuitBreaker CircuitBreakerConfig `toml:"circuit_breaker"`
	Cleanup        CleanupConfig        `toml:"cleanup"`
	ExternalModels ExternalModelsConfig `toml:"external_models"`
	Templates      TemplateConfig       `toml:"templates"`
	Trace          TraceConfig          `toml:"trace"`
}

// Default returns a Config populated with the same defaults as the original
// implementation.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: RozHome()},
		Review: ReviewConfig{
			Mode: ReviewModePrompt,
			Gates: GatesConfig{
				Tools:          nil,
				ApprovalScope:  ApprovalScopePrompt,
				ApprovalTTLSec: 0,
			},
		},
		CircuitBreaker: CircuitBreakerConfig{MaxBlocks: 3, CooldownSecond: 300},
		Cleanup:        CleanupConfig{RetentionDays: 7},
		ExternalModels: ExternalModelsConfig{Codex: "codex", Gemini: "gemini"},
		Templates:      TemplateConfig{Active: "default", Weights: map[string]int{"default": 100}},
		Trace:          TraceConfig{MaxEvents: 500},
	}
}

// RozHome resolves the roz data directory: ROZ_HOME env var if set, else
// ~/.roz, falling back to a relative ".roz" if the home directory can't be
// resolved.
func RozHome() string {
	if home := os.Getenv("ROZ_HOME"); home != "" {
		return home
	}
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".roz")
	}
	return ".roz"
}

// ConfigPath resolves the config file path: ROZ_CONFIG if set, else
// $ROZ_HOME/config.toml.
func ConfigPath() string {
	if p := os.Getenv("ROZ_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(RozHome(), "config.toml")
}

// Load builds a Config from defaults, overlaid by the config file at
// ConfigPath() (if present), overlaid by ROZ_* environment overrides. A
// missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROZ_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("ROZ_HOME"); v != "" && os.Getenv("ROZ_STORAGE_PATH") == "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("ROZ_MAX_BLOCKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CircuitBreaker.MaxBlocks = n
		}
	}
	if v := os.Getenv("ROZ_COOLDOWN_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CircuitBreaker.CooldownSecond = n
		}
	}
	if v := os.Getenv("ROZ_REVIEW_MODE"); v != "" {
		cfg.Review.Mode = ReviewMode(v)
	}
	if v := os.Getenv("ROZ_MAX_EVENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Trace.MaxEvents = n
		}
	}
	if v := os.Getenv("ROZ_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cleanup.RetentionDays = n
		}
	}
}
