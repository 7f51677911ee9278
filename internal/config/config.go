// Package config loads optional user-level defaults for backforge.
//
// Settings live in $HOME/.backforge.yaml and only provide defaults; command
// line flags always win.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds user-level defaults.
type Config struct {
	// Template is the archetype used when none is given (empty means ask).
	Template string `mapstructure:"template"`
	// PackageManager picks the install tool: npm, yarn, or pnpm.
	PackageManager string `mapstructure:"package_manager"`
	// SkipInstall disables the dependency-install step after scaffolding.
	SkipInstall bool `mapstructure:"skip_install"`
}

// Load reads $HOME/.backforge.yaml if present. A missing file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".backforge")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")

	v.SetDefault("template", "")
	v.SetDefault("package_manager", "")
	v.SetDefault("skip_install", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing user config: %w", err)
	}

	return &cfg, nil
}
