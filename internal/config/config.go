// Package config provides the configuration structure for the text-normalizer.
package config

import (
	"fmt"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"

	"github.com/book-expert/text-normalizer/internal/normalizer"
)

const defaultBatchWorkers = 4

// NATSConfig holds the configuration for NATS.
type NATSConfig struct {
	URL                   string `toml:"url"`
	TextSubmittedSubject  string `toml:"text_submitted_subject"`
	TextProcessedSubject  string `toml:"text_processed_subject"`
	TextObjectStoreBucket string `toml:"text_object_store_bucket"`
}

// NormalizationConfig holds the pass switches applied to every job.
// Everything defaults to on except unit normalization.
type NormalizationConfig struct {
	Normalize               bool `toml:"normalize"`
	URLNormalization        bool `toml:"url_normalization"`
	EmailNormalization      bool `toml:"email_normalization"`
	UnitNormalization       bool `toml:"unit_normalization"`
	PhoneNormalization      bool `toml:"phone_normalization"`
	OptionalPluralization   bool `toml:"optional_pluralization_normalization"`
	ReplaceRemainingSymbols bool `toml:"replace_remaining_symbols"`
}

// Options converts the configured switches into pipeline options.
func (c NormalizationConfig) Options() normalizer.Options {
	return normalizer.Options{
		Normalize:               c.Normalize,
		NormalizeURLs:           c.URLNormalization,
		NormalizeEmails:         c.EmailNormalization,
		NormalizeUnits:          c.UnitNormalization,
		NormalizePhones:         c.PhoneNormalization,
		OptionalPluralization:   c.OptionalPluralization,
		ReplaceRemainingSymbols: c.ReplaceRemainingSymbols,
	}
}

// DefaultNormalization returns the switch defaults used when a key is
// absent from the configuration file.
func DefaultNormalization() NormalizationConfig {
	return NormalizationConfig{
		Normalize:               true,
		URLNormalization:        true,
		EmailNormalization:      true,
		UnitNormalization:       false,
		PhoneNormalization:      true,
		OptionalPluralization:   true,
		ReplaceRemainingSymbols: true,
	}
}

// BatchConfig holds settings for the parallel chunk engine.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// PathsConfig holds the configuration for file paths.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
	OutputDir   string `toml:"output_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS          NATSConfig          `toml:"nats"`
	Normalization NormalizationConfig `toml:"normalization"`
	Batch         BatchConfig         `toml:"batch"`
	Paths         PathsConfig         `toml:"paths"`
}

// Load loads the configuration for the text-normalizer. Keys absent from
// the file keep their built-in defaults.
func Load(log *logger.Logger) (*Config, error) {
	cfg := Config{
		NATS:          NATSConfig{},
		Normalization: DefaultNormalization(),
		Batch:         BatchConfig{Workers: defaultBatchWorkers},
		Paths:         PathsConfig{},
	}

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	return &cfg, nil
}
