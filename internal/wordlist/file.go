package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSource reads one word per line from a text file.
//
// Surrounding space is trimmed and words are lowercased. Blank lines and lines starting with '#'
// are skipped.
type FileSource struct {
	Path string
}

func (s FileSource) Words(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return words, nil
}

// Parse reads a word list in the FileSource format from r.
func Parse(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := Validate(word); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
