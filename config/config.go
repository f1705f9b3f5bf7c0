// Package config loads engine and front-end configuration from the
// environment and an optional wordmosaic.yaml file.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	// DictionaryProvider selects the lookup backend: websterapi, freedict,
	// or sqlite.
	DictionaryProvider string `mapstructure:"dictionary-provider"`
	// WebsterAPIKey is required for the websterapi provider.
	WebsterAPIKey string `mapstructure:"webster-api-key"`
	// WebsterEdition is collegiate or learners.
	WebsterEdition string `mapstructure:"webster-edition"`
	// WordDBPath is the SQLite word database for the sqlite provider.
	WordDBPath string `mapstructure:"word-db-path"`
	// WordListPath optionally seeds the sqlite provider from a plain-text
	// word list on startup.
	WordListPath string `mapstructure:"word-list-path"`
	// LookupTimeout bounds a single dictionary call.
	LookupTimeout time.Duration `mapstructure:"lookup-timeout"`

	// BoardLayoutPath optionally replaces the standard board layout with
	// one loaded from a text file.
	BoardLayoutPath string `mapstructure:"board-layout-path"`

	// RackCapacity is the size of a full rack.
	RackCapacity int `mapstructure:"rack-capacity"`
	// LetterDistribution names the tile set to play with.
	LetterDistribution string `mapstructure:"letter-distribution"`

	// MosaicBonus is awarded for placing 7+ tiles in one turn; 0 disables.
	MosaicBonus int `mapstructure:"mosaic-bonus"`
	// CoverageBonusPerPercent is the end-game award per percent of the
	// board covered.
	CoverageBonusPerPercent float64 `mapstructure:"coverage-bonus-per-percent"`
	// EfficiencyBonus is awarded at game end when the average committed
	// turn scored at least EfficiencyThreshold points.
	EfficiencyBonus     int     `mapstructure:"efficiency-bonus"`
	EfficiencyThreshold float64 `mapstructure:"efficiency-threshold"`
}

// Load reads configuration from WORDMOSAIC_* environment variables and an
// optional wordmosaic.yaml in the working directory or home directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("wordmosaic")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dictionary-provider", "freedict")
	v.SetDefault("webster-edition", "collegiate")
	v.SetDefault("word-db-path", "wordmosaic.db")
	v.SetDefault("lookup-timeout", 5*time.Second)
	v.SetDefault("rack-capacity", 20)
	v.SetDefault("letter-distribution", "English")
	v.SetDefault("mosaic-bonus", 50)
	v.SetDefault("coverage-bonus-per-percent", 1.0)
	v.SetDefault("efficiency-bonus", 25)
	v.SetDefault("efficiency-threshold", 15.0)

	v.SetConfigName("wordmosaic")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("read config file")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
