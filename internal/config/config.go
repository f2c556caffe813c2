package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level passgate configuration.
type Config struct {
	Wordlists Wordlists `mapstructure:"wordlists"`
	Generator Generator `mapstructure:"generator"`
	Output    Output    `mapstructure:"output"`
	History   History   `mapstructure:"history"`
}

// Wordlists points at the external reference lists.
type Wordlists struct {
	CommonPath     string `mapstructure:"common_path"`
	DictionaryPath string `mapstructure:"dictionary_path"`
}

// Generator overrides the suggestion-generator word pools.
type Generator struct {
	Adjectives []string `mapstructure:"adjectives"`
	Nouns      []string `mapstructure:"nouns"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// History defines analysis-history recording preferences.
type History struct {
	Enabled bool `mapstructure:"enabled"`
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
// and returns a Config with all defaults applied. A missing config file
// is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("wordlists.common_path", DefaultCommonPath)
	v.SetDefault("wordlists.dictionary_path", DefaultDictionaryPath)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("history.enabled", DefaultHistory.Enabled)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Wordlists.CommonPath = expandPath(cfg.Wordlists.CommonPath)
	cfg.Wordlists.DictionaryPath = expandPath(cfg.Wordlists.DictionaryPath)

	return &cfg, nil
}

// DBPath returns the full path to the analysis-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
