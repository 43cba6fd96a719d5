package search

import "fmt"

// Strategy is one of the four ways to filter lines, fixed by the needle kind
// and the invert flag.
type Strategy int

const (
	LiteralMatch Strategy = iota
	LiteralMatchInverted
	PatternMatch
	PatternMatchInverted
)

func Select(kind Kind, invert bool) Strategy {
	switch {
	case kind == Pattern && invert:
		return PatternMatchInverted
	case kind == Pattern:
		return PatternMatch
	case invert:
		return LiteralMatchInverted
	default:
		return LiteralMatch
	}
}

func (s Strategy) String() string {
	switch s {
	case LiteralMatch:
		return "literal"
	case LiteralMatchInverted:
		return "literal-inverted"
	case PatternMatch:
		return "pattern"
	case PatternMatchInverted:
		return "pattern-inverted"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func (s Strategy) Kind() Kind {
	if s == PatternMatch || s == PatternMatchInverted {
		return Pattern
	}
	return Literal
}

func (s Strategy) Inverted() bool {
	return s == LiteralMatchInverted || s == PatternMatchInverted
}

// Filter returns the lines accepted by s, in their original order. lines is
// not modified.
func (s Strategy) Filter(lines []string, m *Matcher) ([]string, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: nil matcher", s)
	}
	if s.Kind() != m.Kind() {
		return nil, fmt.Errorf("%s strategy cannot use a %s matcher", s, m.Kind())
	}
	invert := s.Inverted()
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		ok, err := m.Match(line)
		if err != nil {
			return nil, err
		}
		if ok != invert {
			out = append(out, line)
		}
	}
	return out, nil
}

// Search classifies needle, picks the matching strategy and filters lines.
func Search(lines []string, needle string, ignoreCase, invert bool) ([]string, error) {
	m, err := Classify(needle, Options{IgnoreCase: ignoreCase})
	if err != nil {
		return nil, err
	}
	return Select(m.Kind(), invert).Filter(lines, m)
}
