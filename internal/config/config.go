// Package config loads game settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/detective-quest/internal/logging"
)

// ErrInvalid is returned when a setting is out of range
var ErrInvalid = errors.New("invalid config")

const (
	// DefaultThreshold is how many matching clues uphold an accusation
	DefaultThreshold = 2

	// DefaultBuckets is the bucket count of the evidence index
	DefaultBuckets = 10

	// DefaultLogLevel keeps logs off the player's console
	DefaultLogLevel = "warn"
)

// Config holds every tunable of a game session
type Config struct {
	Scenario          string `yaml:"scenario"`
	EvidenceThreshold int    `yaml:"evidence_threshold"`
	BucketCount       int    `yaml:"bucket_count"`

	Output struct {
		Plain bool `yaml:"plain"`
	} `yaml:"output"`

	Log struct {
		Level string `yaml:"level"`
		JSON  bool   `yaml:"json"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the built-in settings
func Default() Config {
	var c Config
	c.EvidenceThreshold = DefaultThreshold
	c.BucketCount = DefaultBuckets
	c.Log.Level = DefaultLogLevel
	return c
}

// Load reads the YAML file at path over the defaults, then applies the
// environment (including a .env file in the working directory, if present).
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides settings from environment variables
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("DETECTIVE_SCENARIO"); v != "" {
		c.Scenario = v
	}
	if v := getenv("DETECTIVE_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DETECTIVE_THRESHOLD not an integer", ErrInvalid)
		}
		c.EvidenceThreshold = n
	}
	if v := getenv("DETECTIVE_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: DETECTIVE_PLAIN not a truthy value", ErrInvalid)
		}
		c.Output.Plain = b
	}
	if v := getenv("DETECTIVE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("DETECTIVE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if getenv("DEBUG") != "" {
		c.Log.Level = "debug"
	}
	return nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if c.EvidenceThreshold < 1 {
		return fmt.Errorf("%w: evidence_threshold must be at least 1, got %d", ErrInvalid, c.EvidenceThreshold)
	}
	if c.BucketCount < 1 {
		return fmt.Errorf("%w: bucket_count must be at least 1, got %d", ErrInvalid, c.BucketCount)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Logging converts the log section into a logging.Config
func (c Config) Logging() logging.Config {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelWarn
	}
	return logging.Config{
		Level:   level,
		JSON:    c.Log.JSON,
		File:    c.Log.File,
		Service: "detective-quest",
	}
}
