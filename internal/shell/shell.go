// Package shell runs the interactive prompt loop: ask for the green, yellow and available letters,
// print the possible solutions, and repeat until the user says no.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"crosswarped.com/wordhelper"
)

// LineReader reads one line of user input at a time. *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
}

// Finder answers puzzle queries. *wordhelper.Filter implements it.
type Finder interface {
	FindSolutions(green, yellow, available string) []string
}

var (
	greenPrompt     = fmt.Sprintf("\nGreen/fixed letters (length of %d, use \"*\" for unknown letters)\n", wordhelper.WordLength)
	yellowPrompt    = "\nYellow/other required letters:\n"
	availablePrompt = "\nPossible letters (prepend with \"-\" to exclude, or use \"*\" to include all):\n"
	resultsHeader   = "\nList of possible solutions found:\n"
	againPrompt     = "\nSearch again? (y/n)\n"
)

// errRestart abandons the current query and starts a new one.
var errRestart = errors.New("restart query")

// Shell is an interactive session over a Finder.
type Shell struct {
	in     LineReader
	out    io.Writer
	finder Finder
}

// New creates a Shell reading from in and writing prompts and results to out.
func New(in LineReader, out io.Writer, finder Finder) *Shell {
	return &Shell{
		in:     in,
		out:    out,
		finder: finder,
	}
}

// NewTerminal creates a readline instance with an empty prompt, since prompts are printed on their own line.
func NewTerminal(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:      "",
		HistoryFile: historyFile,
	})
}

// Run loops over queries until the user answers "n" to searching again, or input ends.
func (s *Shell) Run() error {
	for {
		more, err := s.query()
		if errors.Is(err, errRestart) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// query runs one round of prompts and reports whether the user wants another.
func (s *Shell) query() (bool, error) {
	green, err := s.ask(greenPrompt)
	if err != nil {
		return false, err
	}
	yellow, err := s.ask(yellowPrompt)
	if err != nil {
		return false, err
	}
	available, err := s.ask(availablePrompt)
	if err != nil {
		return false, err
	}

	if _, err := io.WriteString(s.out, resultsHeader); err != nil {
		return false, err
	}
	for _, w := range s.finder.FindSolutions(green, yellow, available) {
		if _, err := fmt.Fprintln(s.out, w); err != nil {
			return false, err
		}
	}

	answer, err := s.ask(againPrompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) != "n", nil
}

func (s *Shell) ask(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	line, err := s.in.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", errRestart
	default:
		return "", err
	}
}
