package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

// Config is the top-level trackrecord configuration.
type Config struct {
	DatabasePath string   `mapstructure:"database_path"`
	Output       Output   `mapstructure:"output"`
	Analysis     Analysis `mapstructure:"analysis"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Analysis defines the keyword lists the analysis passes run against.
// Empty lists fall back to the built-in defaults.
type Analysis struct {
	TrendingSkills []string `mapstructure:"trending_skills"`
	ImpactKeywords []string `mapstructure:"impact_keywords"`
	InDemandSkills []string `mapstructure:"in_demand_skills"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("database_path", DefaultDBPath)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("analysis.trending_skills", analyzer.DefaultTrendingSkills)
	v.SetDefault("analysis.impact_keywords", analyzer.DefaultImpactKeywords)
	v.SetDefault("analysis.in_demand_skills", suggest.DefaultInDemandSkills)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DatabasePath = expandPath(cfg.DatabasePath)

	return &cfg, nil
}
