package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dnastrand/geoenum/enumerator"
)

// Config is the on-disk/env-var shape of an enumerator run: everything
// enumerator.Settings needs plus the RNG seed that makes a run
// reproducible. Distribution constants (spec.md §4.3's DS_LENGTH,
// SS_LENGTH, and friends) are deliberately not here — the original
// treats them as plain module constants, not settings, and so does the
// distributions package.
type Config struct {
	Seed            int64   `mapstructure:"seed"`
	EnumerationMode string  `mapstructure:"enumerationMode"`
	ThreeWayMode    string  `mapstructure:"threeWayMode"`
	UnbindingMode   string  `mapstructure:"unbindingMode"`
	MaxComplexSize  int     `mapstructure:"maxComplexSize"`
	RateBind        float64 `mapstructure:"rateBind"`
	RateUnbind      float64 `mapstructure:"rateUnbind"`
	RateMigrate     float64 `mapstructure:"rateMigrate"`
	RateDisplace    float64 `mapstructure:"rateDisplace"`
}

// Default returns the configuration a run gets with no file and no
// environment overrides present.
func Default() *Config {
	return &Config{
		Seed:            1,
		EnumerationMode: string(enumerator.EnumerationModeDetailed),
		ThreeWayMode:    string(enumerator.ThreeWayModeAdjacent),
		UnbindingMode:   string(enumerator.UnbindingModeAdjacent),
		MaxComplexSize:  100,
		RateBind:        1,
		RateUnbind:      1,
		RateMigrate:     1,
		RateDisplace:    1,
	}
}

// Load reads a Config from path (YAML or JSON, sniffed by extension; an
// empty path searches ./config.{yaml,json} and $HOME/.geoenum/config.*),
// overlaid with GEOENUM_-prefixed environment variables, falling back to
// Default for anything neither source sets. A missing file at an
// unspecified path is not an error; a missing file at an explicit path
// is.
func Load(path string) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("enumerationMode", d.EnumerationMode)
	v.SetDefault("threeWayMode", d.ThreeWayMode)
	v.SetDefault("unbindingMode", d.UnbindingMode)
	v.SetDefault("maxComplexSize", d.MaxComplexSize)
	v.SetDefault("rateBind", d.RateBind)
	v.SetDefault("rateUnbind", d.RateUnbind)
	v.SetDefault("rateMigrate", d.RateMigrate)
	v.SetDefault("rateDisplace", d.RateDisplace)

	v.SetEnvPrefix("GEOENUM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.geoenum")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// ToEnumeratorSettings converts c to the enumerator.Settings it
// describes. It does not call Validate — callers construct an
// Enumerator with enumerator.New, which validates for them.
func (c *Config) ToEnumeratorSettings() enumerator.Settings {
	return enumerator.Settings{
		EnumerationMode: enumerator.EnumerationMode(strings.ToLower(c.EnumerationMode)),
		ThreeWayMode:    enumerator.ThreeWayMode(strings.ToLower(c.ThreeWayMode)),
		UnbindingMode:   enumerator.UnbindingMode(strings.ToLower(c.UnbindingMode)),
		MaxComplexSize:  c.MaxComplexSize,
		Rate: enumerator.Rates{
			Bind:     c.RateBind,
			Unbind:   c.RateUnbind,
			Migrate:  c.RateMigrate,
			Displace: c.RateDisplace,
		},
	}
}
