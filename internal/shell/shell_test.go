package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordhelper"
)

type scriptedReader struct {
	lines []string
	errs  map[int]error
	calls int
}

func (r *scriptedReader) Readline() (string, error) {
	i := r.calls
	r.calls++
	if err, ok := r.errs[i]; ok {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

var testFilter = wordhelper.NewFilter([]string{"ahead", "crane", "nutty", "skirt", "stirs"})

func TestShell_SingleQuery(t *testing.T) {
	in := &scriptedReader{lines: []string{"**ir*", "ts", "-alenouh", "n"}}
	var out bytes.Buffer

	require.NoError(t, New(in, &out, testFilter).Run())

	want := greenPrompt + yellowPrompt + availablePrompt + resultsHeader + "skirt\nstirs\n" + againPrompt
	assert.Equal(t, want, out.String())
}

func TestShell_RepeatsUntilNo(t *testing.T) {
	in := &scriptedReader{lines: []string{
		"a*e*d", "", "-linptm", "y",
		"**t*", "tun", "*", "",
		"zzzzz", "", "*", "N",
		"never", "read",
	}}
	var out bytes.Buffer

	require.NoError(t, New(in, &out, testFilter).Run())

	assert.Equal(t, 3, strings.Count(out.String(), resultsHeader))
	assert.Contains(t, out.String(), resultsHeader+"ahead\n")
	assert.Contains(t, out.String(), resultsHeader+"nutty\n")
	assert.Contains(t, out.String(), resultsHeader+againPrompt)
	assert.Equal(t, []string{"never", "read"}, in.lines)
}

func TestShell_OnlyExactNoStops(t *testing.T) {
	in := &scriptedReader{lines: []string{
		"", "", "*", " n",
		"", "", "*", "no",
		"", "", "*", "n",
	}}
	var out bytes.Buffer

	require.NoError(t, New(in, &out, testFilter).Run())
	assert.Equal(t, 3, strings.Count(out.String(), resultsHeader))
}

func TestShell_EOF(t *testing.T) {
	in := &scriptedReader{lines: []string{"**ir*", "ts"}}
	var out bytes.Buffer

	require.NoError(t, New(in, &out, testFilter).Run())
	assert.NotContains(t, out.String(), resultsHeader)
}

func TestShell_InterruptRestartsQuery(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"**ir*", "a*e*d", "", "-linptm", "n"},
		errs:  map[int]error{1: readline.ErrInterrupt},
	}
	var out bytes.Buffer

	require.NoError(t, New(in, &out, testFilter).Run())
	assert.Equal(t, 2, strings.Count(out.String(), greenPrompt))
	assert.Contains(t, out.String(), resultsHeader+"ahead\n")
}

func TestShell_ReadError(t *testing.T) {
	boom := errors.New("terminal gone")
	in := &scriptedReader{errs: map[int]error{0: boom}}

	err := New(in, io.Discard, testFilter).Run()
	assert.ErrorIs(t, err, boom)
}
