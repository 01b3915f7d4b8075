// Package syspath wires portable paths to configuration, logging and the host filesystem.
package syspath

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/battyone/sys/internal/fspath"
	"github.com/battyone/sys/internal/sysfs"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all commands.
type Config struct {
	// Platform is the name of the path conventions to use, see fspath.LookupPlatform.
	Platform string `yaml:"platform" toml:"platform"`
	// MaxRescans bounds symbolic link expansions during canonicalization.
	MaxRescans int `yaml:"max_rescans" toml:"max_rescans"`
	// LogLevel is one of slog's level names.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Base is the directory relative paths are resolved against. Empty means the working
	// directory. A relative value is interpreted relative to the configuration file.
	Base string `yaml:"base" toml:"base"`
}

const (
	defaultYAMLName = ".syspath.yaml"
	defaultTOMLName = ".syspath.toml"
	envPrefix       = "SYSPATH_"
)

var (
	errMissingConfig = errors.New("missing configuration")
	errInvalidConfig = errors.New("invalid configuration")
)

var filepathAbs = filepath.Abs

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		MaxRescans: fspath.DefaultMaxRescans,
		LogLevel:   slog.LevelInfo.String(),
	}
}

// ReadConfig reads the configuration file at fp. If fp is a directory, the default YAML then TOML
// file names are looked up inside it.
func ReadConfig(fp string) (*Config, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	if info.IsDir() {
		fp, err = findDefaultFile(fp)
		if err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingConfig, err)
	}

	cfg := DefaultConfig()
	switch filepath.Ext(fp) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
	}
	if cfg.Base != "" {
		dir, err := filepathAbs(filepath.Dir(fp))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
		cfg.Base = fspath.New(cfg.Base).Absolute(fspath.New(dir)).String()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	slog.Debug("Read configuration.", slog.String("path", fp))
	return cfg, nil
}

func findDefaultFile(dp string) (string, error) {
	for _, name := range []string{defaultYAMLName, defaultTOMLName} {
		fp := filepath.Join(dp, name)
		if _, err := os.Stat(fp); err == nil {
			return fp, nil
		}
	}
	return "", fmt.Errorf("%w: no %s or %s in %s", errMissingConfig, defaultYAMLName, defaultTOMLName, dp)
}

// FindConfig reads the configuration in directory dp, falling back to the user's XDG
// configuration and finally to defaults.
func FindConfig(dp string) (*Config, error) {
	cfg, err := ReadConfig(dp)
	if err == nil || !errors.Is(err, errMissingConfig) {
		return cfg, err
	}
	for _, rel := range []string{"syspath/config.yaml", "syspath/config.toml"} {
		if fp, err := xdg.SearchConfigFile(rel); err == nil {
			return ReadConfig(fp)
		}
	}
	slog.Debug("No configuration found, using defaults.", slog.String("dir", dp))
	return DefaultConfig(), nil
}

// LoadEnvFile adds the variables defined in a dotenv file to the environment. Variables already
// set take precedence.
func LoadEnvFile(fp string) error {
	if err := godotenv.Load(fp); err != nil {
		return fmt.Errorf("%w: %v", errMissingConfig, err)
	}
	return nil
}

// ApplyEnv overrides settings from SYSPATH_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "PLATFORM"); v != "" {
		c.Platform = v
	}
	if v := getenv(envPrefix + "MAX_RESCANS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
		c.MaxRescans = n
	}
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv(envPrefix + "BASE"); v != "" {
		c.Base = v
	}
	return c.validate()
}

func (c *Config) validate() error {
	if _, ok := fspath.LookupPlatform(c.Platform); !ok {
		return fmt.Errorf("%w: unknown platform %q", errInvalidConfig, c.Platform)
	}
	if c.MaxRescans < 0 {
		return fmt.Errorf("%w: negative max rescans", errInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return level, nil
}

// PathPlatform returns the configured path conventions.
func (c *Config) PathPlatform() fspath.Platform {
	pl, _ := fspath.LookupPlatform(c.Platform)
	return pl
}

// BasePath returns the configured base directory, empty if unset.
func (c *Config) BasePath() fspath.Path {
	return c.PathPlatform().New(c.Base)
}

// Resolver returns a resolver over the host filesystem honoring the configuration.
func (c *Config) Resolver() *fspath.Resolver {
	return fspath.NewResolver(
		sysfs.OS,
		fspath.WithPlatform(c.PathPlatform()),
		fspath.WithMaxRescans(c.MaxRescans),
	)
}
