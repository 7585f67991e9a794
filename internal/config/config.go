// Package config provides configuration loading for the word helper commands.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "WORDHELPER"

const (
	// SourceTypeFile reads the word list from a text file with one word per line
	SourceTypeFile = "file"

	// SourceTypeSQLite reads the word list from a table in a SQLite database
	SourceTypeSQLite = "sqlite"

	// SourceTypeBigQuery reads the word list from a BigQuery table
	SourceTypeBigQuery = "bigquery"
)

// Config keys.
const (
	KeyWordsSource   = "words.source"
	KeyWordsPath     = "words.path"
	KeyWordsTable    = "words.table"
	KeyWordsProject  = "words.project"
	KeyServerAddress = "server.address"
	KeyLogLevel      = "log.level"
)

// Config represents the root configuration structure
type Config struct {
	Words    Source
	Address  string
	LogLevel string
}

// Source describes where the word list comes from.
type Source struct {
	// Type is one of SourceTypeFile, SourceTypeSQLite or SourceTypeBigQuery.
	Type string

	// Path is the word file for SourceTypeFile, or the database file for SourceTypeSQLite.
	Path string

	// Table holds the words for SourceTypeSQLite and SourceTypeBigQuery.
	// For BigQuery it is a "dataset.table" name inside Project.
	Table string

	// Project is the Google Cloud project for SourceTypeBigQuery.
	Project string
}

// NewViper returns a viper instance with defaults set and environment variables bound.
//
// A key such as "words.path" is read from WORDHELPER_WORDS_PATH.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyWordsSource, SourceTypeFile)
	v.SetDefault(KeyWordsPath, "cmudict_5L.txt")
	v.SetDefault(KeyWordsTable, "words")
	v.SetDefault(KeyWordsProject, "")
	v.SetDefault(KeyServerAddress, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// Load reads the configuration from v, first merging the YAML file at path if path is set.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Words: Source{
			Type:    strings.ToLower(v.GetString(KeyWordsSource)),
			Path:    v.GetString(KeyWordsPath),
			Table:   v.GetString(KeyWordsTable),
			Project: v.GetString(KeyWordsProject),
		},
		Address:  v.GetString(KeyServerAddress),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if err := c.Words.Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Validate checks that the source has the fields its type needs.
func (s Source) Validate() error {
	switch s.Type {
	case SourceTypeFile:
		if s.Path == "" {
			return fmt.Errorf("words.path is required for source %q", s.Type)
		}
	case SourceTypeSQLite:
		if s.Path == "" {
			return fmt.Errorf("words.path is required for source %q", s.Type)
		}
		if s.Table == "" {
			return fmt.Errorf("words.table is required for source %q", s.Type)
		}
	case SourceTypeBigQuery:
		if s.Project == "" {
			return fmt.Errorf("words.project is required for source %q", s.Type)
		}
		if s.Table == "" {
			return fmt.Errorf("words.table is required for source %q", s.Type)
		}
	default:
		return fmt.Errorf("unknown word source %q", s.Type)
	}
	return nil
}
