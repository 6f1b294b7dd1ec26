package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Address        string   `env:"GALLERY_SERVER_ADDR" envDefault:":5000"`
	AllowedOrigins []string `env:"GALLERY_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`

	// Local data document, JSON or YAML by extension
	WallpapersPath string `env:"WALLPAPERS_PATH" envDefault:"./data/wallpapers.json"`
	// Answer 503 instead of serving the fallback collection
	Strict bool `env:"WALLPAPERS_STRICT" envDefault:"false"`

	// Optional R2 bucket holding the data document; takes precedence over
	// WallpapersPath when credentials are set
	R2Endpoint        string `env:"WALLPAPERS_R2_ENDPOINT"`
	R2Bucket          string `env:"WALLPAPERS_R2_BUCKET"`
	R2Key             string `env:"WALLPAPERS_R2_KEY" envDefault:"wallpapers.json"`
	R2AccessKeyID     string `env:"WALLPAPERS_R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"WALLPAPERS_R2_SECRET_ACCESS_KEY"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AllowedOrigins = splitAndClean(cfg.AllowedOrigins)
	return cfg, nil
}

// UseR2 reports whether the data document should be read from R2.
func (c Config) UseR2() bool {
	return c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2Bucket != ""
}

// SlogLevel maps LogLevel onto slog; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitAndClean(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
