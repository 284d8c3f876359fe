// Package config loads the board tunables from a .maint config file or
// MAINT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the tunables for composing and printing boards. None of
// them change semantics; they size the virtualization window and pick the
// sort locale.
type Config struct {
	// VirtualizeThreshold is the visible machine count above which the
	// list is windowed. The historical default of 50 is a heuristic, not
	// a measured cliff; tune it freely.
	VirtualizeThreshold int
	// RowHeight is the assumed machine row height in pixels.
	RowHeight int
	// Overscan is the number of extra rows windowed on each side.
	Overscan int
	// ViewportHeight is the assumed container height in pixels.
	ViewportHeight int
	// Locale is the BCP 47 tag used for locale-aware sorting.
	Locale string
}

// Load reads .maint(.yaml) from MAINT_CONFIG_PATH, the home directory or
// the working directory, with MAINT_* env overrides. A missing file is
// fine; defaults apply.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("virtualize_threshold", 50)
	v.SetDefault("row_height", 80)
	v.SetDefault("overscan", 5)
	v.SetDefault("viewport_height", 600)
	v.SetDefault("locale", "en")

	v.SetConfigName(".maint") // .yaml is implicit
	v.SetEnvPrefix("MAINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("MAINT_CONFIG_PATH"); override != "" {
		expanded, err := homedir.Expand(override)
		if err != nil {
			return Config{}, fmt.Errorf("config: expanding MAINT_CONFIG_PATH: %w", err)
		}
		v.AddConfigPath(expanded)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	c := Config{
		VirtualizeThreshold: v.GetInt("virtualize_threshold"),
		RowHeight:           v.GetInt("row_height"),
		Overscan:            v.GetInt("overscan"),
		ViewportHeight:      v.GetInt("viewport_height"),
		Locale:              v.GetString("locale"),
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if c.VirtualizeThreshold < 0 {
		return fmt.Errorf("config: virtualize_threshold must not be negative")
	}
	if c.RowHeight <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("config: row_height and viewport_height must be positive")
	}
	if c.Overscan < 0 {
		return fmt.Errorf("config: overscan must not be negative")
	}
	return nil
}
