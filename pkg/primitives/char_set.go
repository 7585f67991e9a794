package primitives

import (
	"fmt"
	"strings"
)

const (
	minLetter = 'a'
	maxLetter = 'z'

	// NumLetters is the number of letters a CharSet can hold.
	NumLetters = maxLetter - minLetter + 1
)

// CharSet efficiently represents a set of lowercase letters.
type CharSet struct {
	available [NumLetters]bool
	count     int
}

// NewCharSet returns an empty set.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// FullCharSet returns a set holding every letter from a to z.
func FullCharSet() *CharSet {
	c := NewCharSet()
	for i := range c.available {
		c.available[i] = true
	}
	c.count = NumLetters
	return c
}

// IsLetter reports whether r is one of the letters a CharSet can hold.
func IsLetter(r rune) bool {
	return r >= minLetter && r <= maxLetter
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !IsLetter(r) {
		return fmt.Errorf("character %q is out of range", r)
	}

	if c.available[r-minLetter] {
		return nil
	}

	c.count++
	c.available[r-minLetter] = true
	return nil
}

// AddLetters adds every letter of s to the set, skipping anything that is not a letter.
func (c *CharSet) AddLetters(s string) {
	for _, r := range s {
		if IsLetter(r) {
			// Cannot fail: r is in range.
			_ = c.Add(r)
		}
	}
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if c.IsFull() {
		return
	}

	if other.IsFull() {
		for i := range c.available {
			c.available[i] = true
		}
		c.count = NumLetters
		return
	}

	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Complement returns a new set holding exactly the letters missing from c.
func (c *CharSet) Complement() *CharSet {
	out := NewCharSet()
	for i, a := range c.available {
		if !a {
			out.available[i] = true
			out.count++
		}
	}
	return out
}

// Contains checks if a character is in the set. Characters outside a..z are never contained.
func (c *CharSet) Contains(r rune) bool {
	if !IsLetter(r) {
		return false
	}
	return c.available[r-minLetter]
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.count == NumLetters
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}

// String lists the letters of the set in alphabetical order, or "*" when it is full.
func (c *CharSet) String() string {
	if c.IsFull() {
		return "*"
	}
	var b strings.Builder
	for i, a := range c.available {
		if a {
			b.WriteRune(minLetter + rune(i))
		}
	}
	return b.String()
}
