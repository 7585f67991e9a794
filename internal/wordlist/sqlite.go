package wordlist

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the SQLite database at path and checks the connection.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// SQLiteSource reads the "word" column of Table, in insertion order.
type SQLiteSource struct {
	DB    *sql.DB
	Table string
}

func (s SQLiteSource) Words(ctx context.Context) ([]string, error) {
	if err := checkTable(s.Table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT word FROM %q ORDER BY rowid`, s.Table)
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating words: %w", err)
	}

	return words, nil
}

// Import replaces the contents of table with words, keeping their order.
func Import(ctx context.Context, db *sql.DB, table string, words []string) error {
	if err := checkTable(table); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table),
		fmt.Sprintf(`CREATE TABLE %q (word TEXT NOT NULL)`, table),
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to prepare table: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %q (word) VALUES (?)`, table))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	for _, w := range words {
		if _, err := insert.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("failed to insert %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
