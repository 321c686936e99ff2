// Package config loads yamlint settings from defaults, a config file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	Format             = "format"
	Extensions         = "extensions"
	LegacyLineNumbers  = "legacy_line_numbers"
	ZeroIndentFallback = "zero_indent_fallback"
	LogLevel           = "log.level"
	LogDevelopment     = "log.development"
	Workers            = "workers"
)

// EnvPrefix is prepended to environment overrides, e.g. YAMLINT_FORMAT.
const EnvPrefix = "yamlint"

// Config holds the resolved settings.
type Config struct {
	Format             string
	Extensions         []string
	LegacyLineNumbers  bool
	ZeroIndentFallback bool
	LogLevel           string
	LogDevelopment     bool
	Workers            int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(Format, "text")
	v.SetDefault(Extensions, []string{".yaml", ".yml"})
	v.SetDefault(LegacyLineNumbers, false)
	v.SetDefault(ZeroIndentFallback, true)
	v.SetDefault(LogLevel, "warn")
	v.SetDefault(LogDevelopment, false)
	v.SetDefault(Workers, 4)
}

// Load reads configuration. With an empty path a ".yamlint.yaml" in the
// working directory is used when present; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".yamlint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Format:             v.GetString(Format),
		Extensions:         v.GetStringSlice(Extensions),
		LegacyLineNumbers:  v.GetBool(LegacyLineNumbers),
		ZeroIndentFallback: v.GetBool(ZeroIndentFallback),
		LogLevel:           v.GetString(LogLevel),
		LogDevelopment:     v.GetBool(LogDevelopment),
		Workers:            v.GetInt(Workers),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
