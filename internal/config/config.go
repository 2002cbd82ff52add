// Package config provides Viper-based configuration loading for the arena demo.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds the fight narrative settings.
type GameConfig struct {
	// WeaponPower is the scalar multiplied against the accumulated damage
	// for display. It never affects the accumulator itself.
	WeaponPower int `mapstructure:"weapon_power"`
	// HitPlan is the ordered list of hits the fight applies. Each entry is
	// "hard" or "soft".
	HitPlan []string `mapstructure:"hit_plan"`
}

// ContentConfig holds optional content override paths. Empty values fall
// back to the built-in defaults, so the binary runs with no files on disk.
type ContentConfig struct {
	// CharactersDir is a directory of character template YAML files.
	CharactersDir string `mapstructure:"characters_dir"`
	// WeaponsDir is a directory of weapon definition YAML files.
	WeaponsDir string `mapstructure:"weapons_dir"`
	// MonstersDir is a directory of monster template YAML files.
	MonstersDir string `mapstructure:"monsters_dir"`
	// FlavorScript is a Lua script providing monster intro lines.
	FlavorScript string `mapstructure:"flavor_script"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.WeaponPower < 1 {
		errs = append(errs, fmt.Sprintf("game.weapon_power must be >= 1, got %d", g.WeaponPower))
	}
	if len(g.HitPlan) == 0 {
		errs = append(errs, "game.hit_plan must not be empty")
	}
	for i, h := range g.HitPlan {
		if h != "hard" && h != "soft" {
			errs = append(errs, fmt.Sprintf("game.hit_plan[%d] must be one of [hard, soft], got %q", i, h))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the file
// and uses defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.weapon_power", 100)
	v.SetDefault("game.hit_plan", []string{"hard", "hard", "soft", "hard", "soft"})

	v.SetDefault("content.characters_dir", "")
	v.SetDefault("content.weapons_dir", "")
	v.SetDefault("content.monsters_dir", "")
	v.SetDefault("content.flavor_script", "")
}
