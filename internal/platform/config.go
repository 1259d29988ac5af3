package platform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDir is the notes directory used when nothing else is configured.
	DefaultDir = "notes"
	// ConfigFileName is looked up from the working directory upwards.
	ConfigFileName = ".jot.yaml"
	// EnvDir overrides the notes directory from the environment.
	EnvDir = "JOT_DIR"
	// EnvFileName is loaded from the working directory when present.
	EnvFileName = ".env"

	SortByID   = "id"
	SortByName = "name"
)

// Config is the user-facing configuration, as read from the YAML file.
type Config struct {
	Dir       string `yaml:"dir"`
	Sort      string `yaml:"sort"`
	MustExist bool   `yaml:"must_exist"`
	LogLevel  string `yaml:"log_level"`

	// Source is the config file the values came from, if any.
	Source string `yaml:"-"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Dir:      DefaultDir,
		Sort:     SortByID,
		LogLevel: "info",
	}
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected.
// A relative dir is resolved against the file's directory.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Dir != "" && !filepath.IsAbs(cfg.Dir) {
		cfg.Dir = filepath.Join(filepath.Dir(path), cfg.Dir)
	}
	cfg.Source = path
	return cfg, cfg.Validate()
}

// Resolve computes the effective configuration.
// Precedence: flagDir, then $JOT_DIR (a .env file in workDir is loaded first),
// then the config file (configPath, or the nearest .jot.yaml above workDir),
// then defaults.
func Resolve(workDir, configPath, flagDir string) (Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		if found, err := FindConfig(workDir); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	envFile := filepath.Join(workDir, EnvFileName)
	if hasFile(workDir, EnvFileName) {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if dir := os.Getenv(EnvDir); dir != "" {
		cfg.Dir = dir
	}

	if flagDir != "" {
		cfg.Dir = flagDir
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Sort {
	case "", SortByID, SortByName:
	default:
		return fmt.Errorf("invalid sort %q (want %q or %q)", c.Sort, SortByID, SortByName)
	}
	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
		}
	}
	return nil
}

// Level returns the configured log level, Info when unset.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Options translates the configuration into service options.
func (c Config) Options() []Option {
	return []Option{
		WithMustExist(c.MustExist),
		WithSortByName(c.Sort == SortByName),
	}
}
