package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gopak/sift/internal/search"
)

// ErrUnimplementedSink means a color sink was built without the matcher it
// needs to find occurrences. It is a programming error, not a transient one.
var ErrUnimplementedSink = errors.New("color output requires a matcher")

type Kind int

const (
	Plain Kind = iota
	Colored
)

// Sink renders the filtered lines. Matcher must be the one the search used so
// highlighting follows the same case and pattern rules.
type Sink struct {
	Kind    Kind
	Color   Color
	Matcher *search.Matcher
}

func PlainSink() Sink { return Sink{Kind: Plain} }

func ColorSink(c Color, m *search.Matcher) Sink {
	return Sink{Kind: Colored, Color: c, Matcher: m}
}

// Write renders lines to w, one per line, in order.
func (s Sink) Write(w io.Writer, lines []string) error {
	switch s.Kind {
	case Plain:
		return writeLines(w, lines, func(l string) (string, error) { return l, nil })
	case Colored:
		if s.Matcher == nil {
			return ErrUnimplementedSink
		}
		return writeLines(w, lines, func(l string) (string, error) {
			spans, err := s.Matcher.Locate(l)
			if err != nil {
				return "", err
			}
			return Highlight(l, spans, s.Color), nil
		})
	}
	return fmt.Errorf("unknown sink kind: %d", int(s.Kind))
}

// writeLines renders every line before writing any of them, so a render
// error leaves w untouched.
func writeLines(w io.Writer, lines []string, render func(string) (string, error)) error {
	var buf bytes.Buffer
	for _, l := range lines {
		out, err := render(l)
		if err != nil {
			return err
		}
		buf.WriteString(out)
		buf.WriteByte('\n')
	}
	_, err := buf.WriteTo(w)
	return err
}

// Highlight wraps each span of line in c. Spans must be ordered and must not
// overlap.
func Highlight(line string, spans []search.Span, c Color) string {
	if len(spans) == 0 {
		return line
	}
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(line[prev:sp.Start])
		b.WriteString(c.Sprint(line[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(line[prev:])
	return b.String()
}
