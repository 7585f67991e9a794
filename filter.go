// Package wordhelper finds the possible solutions of Wordle-style puzzles with five-letter
// answers, given the letters known so far.
package wordhelper

import (
	"iter"
	"slices"
)

// Filter matches puzzle constraints against a fixed word list.
//
// A Filter is immutable once created and safe for concurrent use.
type Filter struct {
	words []string
}

// NewFilter creates a Filter over words. The words are copied; order is preserved in results.
func NewFilter(words []string) *Filter {
	return &Filter{
		words: slices.Clone(words),
	}
}

// Len returns the number of words in the list.
func (f *Filter) Len() int {
	return len(f.words)
}

// Words returns a copy of the word list.
func (f *Filter) Words() []string {
	return slices.Clone(f.words)
}

// Solutions yields every word satisfying c, in word list order.
func (f *Filter) Solutions(c Constraints) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range f.words {
			if !c.Matches(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// FindSolutions returns the words matching the green, yellow and available letters of a puzzle.
// See ParseConstraints for how the three inputs are read.
func (f *Filter) FindSolutions(green, yellow, available string) []string {
	return slices.Collect(f.Solutions(ParseConstraints(green, yellow, available)))
}
