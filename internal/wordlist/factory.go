package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"

	"crosswarped.com/wordhelper/internal/config"
)

// Open builds the Source described by cfg. The returned close func releases any connection the
// source holds and must be called once the words are loaded.
func Open(ctx context.Context, cfg config.Source) (Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case config.SourceTypeFile:
		return FileSource{Path: cfg.Path}, noop, nil
	case config.SourceTypeSQLite:
		db, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return SQLiteSource{DB: db, Table: cfg.Table}, db.Close, nil
	case config.SourceTypeBigQuery:
		client, err := bigquery.NewClient(ctx, cfg.Project)
		if err != nil {
			return nil, nil, fmt.Errorf("bigquery.NewClient: %w", err)
		}
		return BigQuerySource{Client: client, Table: cfg.Table}, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown word source %q", cfg.Type)
	}
}

// LoadConfigured opens the source described by cfg, loads and validates its words, and closes it.
func LoadConfigured(ctx context.Context, cfg config.Source) ([]string, error) {
	src, closeSrc, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	words, err := Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s word list: %w", cfg.Type, err)
	}
	return words, nil
}
