package wordlist

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordhelper/internal/config"
)

const testWords = "../../testdata/words.txt"

type staticSource struct {
	words []string
	err   error
}

func (s staticSource) Words(context.Context) ([]string, error) {
	return s.words, s.err
}

func TestParse(t *testing.T) {
	input := "# five letter words\ncrane\n\n  Skirt  \nSTIRS\n"
	words, err := Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "skirt", "stirs"}, words)
}

func TestParse_InvalidLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"too short", "crane\ncat\n", "line 2"},
		{"too long", "cranes\n", "line 1"},
		{"non-letter", "crane\nskirt\nab-cd\n", "line 3"},
		{"accented", "café!\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, strings.NewReader("crane\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource(t *testing.T) {
	words, err := Load(context.Background(), FileSource{Path: testWords})
	require.NoError(t, err)
	assert.Len(t, words, 51)
	assert.Equal(t, "abbey", words[0])
	assert.Equal(t, "zebra", words[len(words)-1])
}

func TestFileSource_Missing(t *testing.T) {
	_, err := Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Load(context.Background(), staticSource{})
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("source error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Load(context.Background(), staticSource{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid word", func(t *testing.T) {
		_, err := Load(context.Background(), staticSource{words: []string{"crane", "Skirt"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "word 2")
	})

	t.Run("valid", func(t *testing.T) {
		words, err := Load(context.Background(), staticSource{words: []string{"crane", "skirt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "skirt"}, words)
	})
}

func TestSQLite_ImportAndRead(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Not alphabetical, to check that insertion order is kept.
	want := []string{"stirs", "crane", "skirt", "ahead"}
	require.NoError(t, Import(ctx, db, "words", want))

	got, err := Load(ctx, SQLiteSource{DB: db, Table: "words"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// A second import replaces the table.
	require.NoError(t, Import(ctx, db, "words", []string{"nutty"}))
	got, err = Load(ctx, SQLiteSource{DB: db, Table: "words"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nutty"}, got)
}

func TestSQLite_InvalidTable(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	err = Import(ctx, db, `words"; DROP TABLE x; --`, []string{"crane"})
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = SQLiteSource{DB: db, Table: "bad table"}.Words(ctx)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestSQLite_MissingTable(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = SQLiteSource{DB: db, Table: "words"}.Words(context.Background())
	assert.Error(t, err)
}

func TestBigQuerySQL(t *testing.T) {
	query, err := bigQuerySQL("xword-x", "puzzles.five_letter_words")
	require.NoError(t, err)
	assert.Equal(t, "SELECT word FROM `xword-x.puzzles.five_letter_words` ORDER BY word", query)

	_, err = bigQuerySQL("xword-x", "puzzles.words` WHERE 1=1 --")
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = bigQuerySQL("", "puzzles.words")
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestLoadConfigured(t *testing.T) {
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		words, err := LoadConfigured(ctx, config.Source{Type: config.SourceTypeFile, Path: testWords})
		require.NoError(t, err)
		assert.Len(t, words, 51)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.db")
		db, err := OpenSQLite(path)
		require.NoError(t, err)
		require.NoError(t, Import(ctx, db, "cmudict", []string{"crane", "skirt"}))
		require.NoError(t, db.Close())

		words, err := LoadConfigured(ctx, config.Source{Type: config.SourceTypeSQLite, Path: path, Table: "cmudict"})
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "skirt"}, words)
	})

	t.Run("empty sqlite table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.db")
		db, err := OpenSQLite(path)
		require.NoError(t, err)
		require.NoError(t, Import(ctx, db, "words", nil))
		require.NoError(t, db.Close())

		_, err = LoadConfigured(ctx, config.Source{Type: config.SourceTypeSQLite, Path: path, Table: "words"})
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := LoadConfigured(ctx, config.Source{Type: "ftp"})
		assert.Error(t, err)
	})
}
