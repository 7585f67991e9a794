// Package wordlist loads the dictionary of five-letter words that puzzles are solved against.
//
// Words can come from a text file, a SQLite table or a BigQuery table. Whatever the source, Load
// checks that every word is exactly five lowercase letters and that the list is not empty.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"crosswarped.com/wordhelper"
	"crosswarped.com/wordhelper/pkg/primitives"
)

var (
	// ErrEmpty is returned when a source yields no words.
	ErrEmpty = errors.New("word list is empty")

	// ErrInvalidTable is returned for table names that cannot be safely used in a query.
	ErrInvalidTable = errors.New("invalid table name")
)

// Source produces the words of a word list, in order.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func checkTable(table string) error {
	if !tableNameRe.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// Load reads all words from src and validates them.
func Load(ctx context.Context, src Source) ([]string, error) {
	words, err := src.Words(ctx)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	for i, w := range words {
		if err := Validate(w); err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
	}
	return words, nil
}

// Validate checks that word has exactly wordhelper.WordLength lowercase letters.
func Validate(word string) error {
	if len(word) != wordhelper.WordLength {
		return fmt.Errorf("word %q does not have %d letters", word, wordhelper.WordLength)
	}
	for _, r := range word {
		if !primitives.IsLetter(r) {
			return fmt.Errorf("word %q contains non-lowercase letter %q", word, r)
		}
	}
	return nil
}
