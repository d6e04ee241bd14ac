// Package config reads runtime settings from FOXTROT_* environment variables.
// Command-line flags override the environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Level     string `env:"FOXTROT_LEVEL" envDefault:"foxtrot.json"`
	Debug     bool   `env:"FOXTROT_DEBUG"`
	HotReload bool   `env:"FOXTROT_HOT_RELOAD"`
	// Monitor picks the first monitor instead of the primary one.
	Monitor bool `env:"FOXTROT_BASE_MONITOR"`
}

// Load parses the environment (environ, or the process environment when nil)
// and then args.
func Load(args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	fs := flag.NewFlagSet("foxtrot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Level, "level", cfg.Level, "level name in levels/ (basename, .json optional)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug drawing and logs")
	fs.BoolVar(&cfg.HotReload, "hot", cfg.HotReload, "reload prefabs and dialogue when they change on disk")
	fs.BoolVar(&cfg.Monitor, "m", cfg.Monitor, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	if cfg.Level == "" {
		cfg.Level = "foxtrot.json"
	}
	return cfg, nil
}

func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
