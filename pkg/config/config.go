// Package config loads sfsymbol settings from an optional TOML file.
//
// Every key is optional; anything not set keeps its built-in default, and the
// defaults reproduce the stock calibration exactly. Unknown keys are rejected
// so that a typo cannot silently fall back to a default.
//
// Example file:
//
//	template = "template.svg"
//
//	[icon]
//	width = 32
//	height = 32
//
//	[geometry]
//	additional_scaling = 1.7
//	margin_line_width = 0.5
//	additional_horizontal_margin = 4
//	space_between_centers = 296.71
//	initial_symbol_scale = 0.775
//	symbol_scale_additions = [0.001, 0.002, 0.003, 0.004, 0.04, 0.03, 0.03, 0.06, 0.04]
//
//	[cache]
//	enabled = true
//	ttl = "720h"
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sfsymbol/pkg/errors"
	"github.com/matzehuels/sfsymbol/pkg/symbol"
)

const (
	// DefaultFilename is looked up in the working directory when no config
	// path is given.
	DefaultFilename = "sfsymbol.toml"

	// DefaultTemplatePath is the template used when none is configured.
	DefaultTemplatePath = "template.svg"

	// DefaultCacheTTL is how long generated symbols stay cached.
	DefaultCacheTTL = 30 * 24 * time.Hour
)

// Config is the resolved configuration.
type Config struct {
	TemplatePath string
	Params       symbol.Params
	CacheEnabled bool
	CacheTTL     time.Duration
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TemplatePath: DefaultTemplatePath,
		Params:       symbol.DefaultParams(),
		CacheEnabled: true,
		CacheTTL:     DefaultCacheTTL,
	}
}

// fileConfig mirrors the TOML layout. Pointer fields distinguish "unset"
// from zero.
type fileConfig struct {
	Template *string `toml:"template"`
	Icon     struct {
		Width  *int `toml:"width"`
		Height *int `toml:"height"`
	} `toml:"icon"`
	Geometry struct {
		AdditionalScaling          *float64  `toml:"additional_scaling"`
		MarginLineWidth            *float64  `toml:"margin_line_width"`
		AdditionalHorizontalMargin *float64  `toml:"additional_horizontal_margin"`
		SpaceBetweenCenters        *float64  `toml:"space_between_centers"`
		InitialSymbolScale         *float64  `toml:"initial_symbol_scale"`
		SymbolScaleAdditions       []float64 `toml:"symbol_scale_additions"`
	} `toml:"geometry"`
	Cache struct {
		Enabled *bool   `toml:"enabled"`
		TTL     *string `toml:"ttl"`
	} `toml:"cache"`
}

// Load reads the config file at path. The file must exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Discover loads path if non-empty, otherwise DefaultFilename from the
// working directory if it exists, otherwise the defaults. It returns the
// file that was used, or "" for defaults.
func Discover(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	if _, err := os.Stat(DefaultFilename); err == nil {
		cfg, err := Load(DefaultFilename)
		return cfg, DefaultFilename, err
	}
	return Default(), "", nil
}

// Parse decodes TOML text on top of the defaults and validates the result.
func Parse(text string) (Config, error) {
	var fc fileConfig
	md, err := toml.Decode(text, &fc)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := Default()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	setString(&cfg.TemplatePath, fc.Template)
	setInt(&cfg.Params.IconWidth, fc.Icon.Width)
	setInt(&cfg.Params.IconHeight, fc.Icon.Height)

	g := fc.Geometry
	setFloat(&cfg.Params.AdditionalScaling, g.AdditionalScaling)
	setFloat(&cfg.Params.MarginLineWidth, g.MarginLineWidth)
	setFloat(&cfg.Params.AdditionalHorizontalMargin, g.AdditionalHorizontalMargin)
	setFloat(&cfg.Params.SpaceBetweenCenters, g.SpaceBetweenCenters)
	setFloat(&cfg.Params.InitialSymbolScale, g.InitialSymbolScale)
	if g.SymbolScaleAdditions != nil {
		cfg.Params.SymbolScaleAdditions = g.SymbolScaleAdditions
	}

	if fc.Cache.Enabled != nil {
		cfg.CacheEnabled = *fc.Cache.Enabled
	}
	if fc.Cache.TTL != nil {
		ttl, err := time.ParseDuration(*fc.Cache.TTL)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl")
		}
		cfg.CacheTTL = ttl
	}
	return nil
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TemplatePath) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "template path cannot be empty")
	}
	if c.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	if err := c.Params.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "geometry")
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
