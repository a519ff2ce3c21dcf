package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPageSize is the menu page size when none is configured.
const DefaultPageSize = 10

// Config holds CLI configuration from config.toml.
type Config struct {
	Stream       string     `toml:"stream"`
	StderrPolicy string     `toml:"stderr_policy"`
	Color        *bool      `toml:"color"`
	Log          LogConfig  `toml:"log"`
	Menu         MenuConfig `toml:"menu"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	UTC    bool   `toml:"utc"`
}

// MenuConfig configures the interactive menu.
type MenuConfig struct {
	Title    string `toml:"title"`
	PageSize int    `toml:"page_size"`
}

// ColorEnabled reports whether colored output is allowed.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Load reads .env, then config.toml at path (or the default location), then
// CONW_* environment overrides. A missing config file is not an error.
func Load(path string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg, err := decodeFile(path)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	if cfg.Menu.PageSize <= 0 {
		cfg.Menu.PageSize = DefaultPageSize
	}
	return cfg, nil
}

func decodeFile(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, errors.New("config path is a directory")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if val := os.Getenv("CONW_STREAM"); val != "" {
		cfg.Stream = val
	}
	if val := os.Getenv("CONW_STDERR_POLICY"); val != "" {
		cfg.StderrPolicy = val
	}
	if val := os.Getenv("CONW_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("CONW_LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}
	if val := os.Getenv("CONW_NO_COLOR"); val != "" && val != "0" && strings.ToLower(val) != "false" {
		off := false
		cfg.Color = &off
	}
	if val := os.Getenv("CONW_PAGE_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			cfg.Menu.PageSize = size
		}
	}
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "conw", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "conw", "config.toml"), nil
}
