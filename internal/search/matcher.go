package search

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

type Kind int

const (
	Literal Kind = iota
	Pattern
)

func (k Kind) String() string {
	if k == Pattern {
		return "pattern"
	}
	return "literal"
}

// Mode controls classification. ModeAuto is the default and lets the needle's
// syntax decide; the other two force a kind.
type Mode int

const (
	ModeAuto Mode = iota
	ModeLiteral
	ModePattern
)

type Options struct {
	IgnoreCase bool
	Mode       Mode
	// MatchTimeout bounds a single regex evaluation. Zero disables it.
	MatchTimeout time.Duration
}

// CompileError is returned only when ModePattern forces compilation of a
// needle that is not a valid pattern.
type CompileError struct {
	Needle string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Needle, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Matcher is a classified needle. It is immutable once built.
type Matcher struct {
	needle     string
	kind       Kind
	ignoreCase bool
	folded     string
	re         *regexp2.Regexp
}

// Classify compiles needle at most once and returns the resulting Matcher.
// In ModeAuto a compile failure is not an error: the needle becomes Literal.
func Classify(needle string, opts Options) (*Matcher, error) {
	m := &Matcher{needle: needle, ignoreCase: opts.IgnoreCase}
	if opts.IgnoreCase {
		m.folded = strings.ToLower(needle)
	}
	if opts.Mode == ModeLiteral {
		m.kind = Literal
		return m, nil
	}
	re, err := compile(needle, opts)
	if err != nil {
		if opts.Mode == ModePattern {
			return nil, &CompileError{Needle: needle, Err: err}
		}
		m.kind = Literal
		return m, nil
	}
	m.kind = Pattern
	m.re = re
	return m, nil
}

func compile(needle string, opts Options) (*regexp2.Regexp, error) {
	// IgnoreCase is the compile-time form of a leading (?i) and cannot make a
	// valid pattern invalid.
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(needle, flags)
	if err != nil {
		return nil, err
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}
	return re, nil
}

func (m *Matcher) Kind() Kind { return m.kind }

func (m *Matcher) Needle() string { return m.needle }

func (m *Matcher) IgnoreCase() bool { return m.ignoreCase }

// Match reports whether line satisfies the base (non-inverted) predicate.
func (m *Matcher) Match(line string) (bool, error) {
	if m.kind == Pattern {
		ok, err := m.re.MatchString(line)
		if err != nil {
			return false, fmt.Errorf("match %q: %w", m.needle, err)
		}
		return ok, nil
	}
	if m.ignoreCase {
		return strings.Contains(strings.ToLower(line), m.folded), nil
	}
	return strings.Contains(line, m.needle), nil
}

// Locate returns the non-overlapping occurrences of the needle in line, in
// order. Empty occurrences are not reported.
func (m *Matcher) Locate(line string) ([]Span, error) {
	if m.kind == Pattern {
		return m.locatePattern(line)
	}
	if m.needle == "" {
		return nil, nil
	}
	if m.ignoreCase {
		return locateFolded(line, m.needle), nil
	}
	var spans []Span
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], m.needle)
		if i < 0 {
			break
		}
		start := off + i
		spans = append(spans, Span{Start: start, End: start + len(m.needle)})
		off = start + len(m.needle)
	}
	return spans, nil
}

func (m *Matcher) locatePattern(line string) ([]Span, error) {
	match, err := m.re.FindStringMatch(line)
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", m.needle, err)
	}
	if match == nil {
		return nil, nil
	}
	// regexp2 reports rune offsets.
	offsets := byteOffsets(line)
	var spans []Span
	for match != nil {
		if match.Length > 0 {
			spans = append(spans, Span{
				Start: offsets[match.Index],
				End:   offsets[match.Index+match.Length],
			})
		}
		match, err = m.re.FindNextMatch(match)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", m.needle, err)
		}
	}
	return spans, nil
}

// locateFolded finds needle in line ignoring case. Folding is done rune by
// rune so every rune index in the folded text is also one in line.
func locateFolded(line, needle string) []Span {
	hay := foldRunes(line)
	pin := foldRunes(needle)
	if len(pin) == 0 || len(pin) > len(hay) {
		return nil
	}
	var offsets []int
	var spans []Span
	for i := 0; i+len(pin) <= len(hay); {
		if !runesEqual(hay[i:i+len(pin)], pin) {
			i++
			continue
		}
		if offsets == nil {
			offsets = byteOffsets(line)
		}
		spans = append(spans, Span{Start: offsets[i], End: offsets[i+len(pin)]})
		i += len(pin)
	}
	return spans
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// byteOffsets maps rune index to byte offset, with one trailing entry for
// len(s).
func byteOffsets(s string) []int {
	out := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := 0; i < len(s); {
		out = append(out, i)
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return append(out, len(s))
}
