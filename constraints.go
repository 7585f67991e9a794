package wordhelper

import (
	"fmt"
	"strings"
	"unicode"

	"crosswarped.com/wordhelper/pkg/primitives"
)

// WordLength is the length of every word in a puzzle.
const WordLength = 5

// Wildcard marks a position with no known letter.
const Wildcard = '*'

// PositionSpec holds the letter fixed at each position of the solution, or Wildcard.
type PositionSpec [WordLength]rune

// ParsePositionSpec reads the green letters of a puzzle.
//
// The input is padded with wildcards or truncated to WordLength characters. Any character that
// is not a lowercase letter after lowercasing becomes a Wildcard.
func ParsePositionSpec(s string) PositionSpec {
	var p PositionSpec
	runes := []rune(padPositions(s))
	for i := range p {
		r := unicode.ToLower(runes[i])
		if primitives.IsLetter(r) {
			p[i] = r
		} else {
			p[i] = Wildcard
		}
	}
	return p
}

// padPositions pads s with wildcards, then truncates it, to exactly WordLength characters.
func padPositions(s string) string {
	runes := []rune(s)
	for len(runes) < WordLength {
		runes = append(runes, Wildcard)
	}
	return string(runes[:WordLength])
}

// Fixed returns the letters fixed by p, in position order.
func (p PositionSpec) Fixed() []rune {
	var fixed []rune
	for _, r := range p {
		if r != Wildcard {
			fixed = append(fixed, r)
		}
	}
	return fixed
}

func (p PositionSpec) String() string {
	return string(p[:])
}

// LetterCounts maps each letter a..z to a number of occurrences.
type LetterCounts [primitives.NumLetters]int

// ParseRequiredCounts reads the yellow letters of a puzzle. Each occurrence of a letter raises
// the number of times it must appear in a solution. Non-letters are ignored.
func ParseRequiredCounts(s string) LetterCounts {
	var counts LetterCounts
	for _, r := range strings.ToLower(s) {
		if primitives.IsLetter(r) {
			counts[r-'a']++
		}
	}
	return counts
}

// Get returns the count for letter r.
func (c LetterCounts) Get(r rune) int {
	if !primitives.IsLetter(r) {
		return 0
	}
	return c[r-'a']
}

func (c LetterCounts) String() string {
	var b strings.Builder
	for i, n := range c {
		for range n {
			b.WriteRune('a' + rune(i))
		}
	}
	return b.String()
}

// ParseLetterSet reads a set of letters.
//
// A lone "*" means every letter. Otherwise the set holds the letters of s, and a leading "-"
// turns it into the complement.
func ParseLetterSet(s string) *primitives.CharSet {
	lower := strings.ToLower(s)
	if lower == string(Wildcard) {
		return primitives.FullCharSet()
	}

	set := primitives.NewCharSet()
	set.AddLetters(lower)
	if strings.HasPrefix(s, "-") {
		return set.Complement()
	}
	return set
}

// Constraints is the known state of a puzzle.
type Constraints struct {
	Positions PositionSpec
	Required  LetterCounts
	Allowed   *primitives.CharSet
}

// ParseConstraints builds Constraints from the green, yellow and available letters of a puzzle.
//
// Parsing never fails: malformed input only loosens the constraints. Fixed and required letters
// are always allowed, whatever the available letters say.
func ParseConstraints(green, yellow, available string) Constraints {
	padded := padPositions(green)
	c := Constraints{
		Positions: ParsePositionSpec(green),
		Required:  ParseRequiredCounts(yellow),
		Allowed:   ParseLetterSet(available),
	}

	c.Allowed.AddAll(ParseLetterSet(padded))
	c.Allowed.AddAll(ParseLetterSet(yellow))
	for _, r := range c.Positions.Fixed() {
		_ = c.Allowed.Add(r)
	}
	for i, n := range c.Required {
		if n > 0 {
			_ = c.Allowed.Add('a' + rune(i))
		}
	}
	return c
}

// Matches reports whether word is a possible solution.
func (c Constraints) Matches(word string) bool {
	if len(word) != WordLength {
		return false
	}

	for i, r := range c.Positions {
		if r != Wildcard && rune(word[i]) != r {
			return false
		}
	}

	for _, r := range word {
		if !c.Allowed.Contains(r) {
			return false
		}
	}

	// Letters already placed by a fixed position do not count towards the required letters.
	// Each fixed letter removes one occurrence, in position order.
	reduced := word
	for _, r := range c.Positions.Fixed() {
		reduced = strings.Replace(reduced, string(r), "", 1)
	}
	var have LetterCounts
	for _, r := range reduced {
		have[r-'a']++
	}
	for i, n := range c.Required {
		if have[i] < n {
			return false
		}
	}
	return true
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints{positions: %s, required: %q, allowed: %s}", c.Positions, c.Required, c.Allowed)
}
