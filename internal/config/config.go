package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alexanderramin/rickshaw/internal/estimator"
	"github.com/alexanderramin/rickshaw/internal/i18n"
	"github.com/alexanderramin/rickshaw/internal/pricing"
	"github.com/alexanderramin/rickshaw/internal/scenario"
	"github.com/alexanderramin/rickshaw/internal/slider"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// SliderConfig holds the distance control bounds.
type SliderConfig struct {
	MaxDistance int `yaml:"max_distance"`
	LowRange    int `yaml:"low_range"`
	Quantum     int `yaml:"quantum"`
}

// Config holds all estimator settings.
type Config struct {
	Language        i18n.Language    `yaml:"language"`
	NativeDigits    bool             `yaml:"native_digits"`
	InitialDistance int              `yaml:"initial_distance"`
	LogFile         string           `yaml:"log_file"`
	Tariff          pricing.Tariff   `yaml:"tariff"`
	Slider          SliderConfig     `yaml:"slider"`
	Scenarios       []scenario.Entry `yaml:"scenarios"`
}

// DefaultConfig returns the shipped tariff, an Urdu interface with native
// digits and the curated scenario list.
func DefaultConfig() Config {
	return Config{
		Language:     i18n.DefaultLanguage,
		NativeDigits: true,
		Tariff:       pricing.DefaultTariff(),
		Slider: SliderConfig{
			MaxDistance: slider.DefaultMaxDistance,
			LowRange:    slider.DefaultLowRange,
			Quantum:     estimator.DefaultQuantum,
		},
		Scenarios: scenario.DefaultCatalog().Entries(),
	}
}

// Load starts from defaults, applies the YAML file named by RICKSHAW_CONFIG
// if set, then environment overrides, and validates the result.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv("RICKSHAW_CONFIG"); path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file on top of the defaults. The file must
// be valid on its own, before any environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.Language = i18n.ParseLanguage(string(c.Language))
	return nil
}

// applyEnv ignores values that fail to parse, keeping the previous setting.
func (c *Config) applyEnv() {
	if v := os.Getenv("RICKSHAW_LANG"); v != "" {
		c.Language = i18n.ParseLanguage(v)
	}
	if v := os.Getenv("RICKSHAW_URDU_DIGITS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NativeDigits = b
		}
	}
	if v := os.Getenv("RICKSHAW_MAX_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Slider.MaxDistance = n
		}
	}
	if v := os.Getenv("RICKSHAW_INITIAL_KM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.InitialDistance = n
		}
	}
	if v := os.Getenv("RICKSHAW_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// Validate rejects settings the estimator cannot run with.
func (c Config) Validate() error {
	if err := c.Tariff.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := slider.NewMapping(c.Slider.LowRange, c.Slider.MaxDistance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Slider.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, c.Slider.Quantum)
	}
	if _, err := scenario.NewCatalog(c.Scenarios); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// EstimatorOptions returns the controller settings.
func (c Config) EstimatorOptions() estimator.Options {
	return estimator.Options{
		Tariff:          c.Tariff,
		MaxDistance:     c.Slider.MaxDistance,
		LowRange:        c.Slider.LowRange,
		Quantum:         c.Slider.Quantum,
		InitialDistance: c.InitialDistance,
	}
}

// Catalog builds the scenario catalog. Call Validate first.
func (c Config) Catalog() scenario.Catalog {
	cat, err := scenario.NewCatalog(c.Scenarios)
	if err != nil {
		return scenario.DefaultCatalog()
	}
	return cat
}

// Formatter returns the number formatting strategy.
func (c Config) Formatter() i18n.NumberFormatter {
	return i18n.NumberFormatter{NativeDigits: c.NativeDigits}
}
