package grep

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopak/sift/internal/input"
	"github.com/gopak/sift/internal/output"
	"github.com/gopak/sift/internal/search"
)

const haystack = "This is a test line.\nAnother line without the keyword.\nTest again with test.\nNo matches here.\n"

func stdin() input.Source { return input.StandardInput(strings.NewReader(haystack)) }

func TestRun_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(stdin(), Request{Needle: "test"}, &buf))
	assert.Equal(t, "This is a test line.\nTest again with test.\n", buf.String())
}

func TestRun_IgnoreCaseInvert(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(stdin(), Request{Needle: "TEST", IgnoreCase: true, Invert: true}, &buf))
	assert.Equal(t, "Another line without the keyword.\nNo matches here.\n", buf.String())
}

func TestRun_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(p, []byte(haystack), 0o644))
	var buf bytes.Buffer
	require.NoError(t, Run(input.FileInput(p), Request{Needle: `\btest\b`}, &buf))
	assert.Equal(t, "This is a test line.\nTest again with test.\n", buf.String())
}

func TestRun_MissingFileWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Run(input.FileInput(filepath.Join(t.TempDir(), "nope")), Request{Needle: "x"}, &buf)
	var ioErr *input.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, input.NotFound, ioErr.Kind)
	assert.Zero(t, buf.Len())
}

func TestRun_Color(t *testing.T) {
	red, err := output.ParseColor("red")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Run(stdin(), Request{Needle: "test", Color: "red"}, &buf))
	want := "This is a " + red.Sprint("test") + " line.\n" +
		"Test again with " + red.Sprint("test") + ".\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_UnknownColor(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Run(stdin(), Request{Needle: "test", Color: "mauve"}, &buf))
	assert.Zero(t, buf.Len())
}

func TestRun_ForcedPatternCompileFailure(t *testing.T) {
	var buf bytes.Buffer
	err := Run(stdin(), Request{Needle: "[a-z", Mode: search.ModePattern}, &buf)
	var ce *search.CompileError
	assert.True(t, errors.As(err, &ce))
}

func TestRun_Reentrant(t *testing.T) {
	for i := 0; i < 3; i++ {
		var a, b bytes.Buffer
		require.NoError(t, Run(stdin(), Request{Needle: "test"}, &a))
		require.NoError(t, Run(stdin(), Request{Needle: "test", Invert: true}, &b))
		assert.Equal(t, strings.Count(haystack, "\n"), strings.Count(a.String(), "\n")+strings.Count(b.String(), "\n"))
	}
}
