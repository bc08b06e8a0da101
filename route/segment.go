package route

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// DefaultPattern is used by placeholders without an explicit pattern: one or
// more characters, none of them a path separator.
const DefaultPattern = `[^/]+`

// Segment is one unit of a compiled path template.
type Segment interface {
	// Match reports the prefix of remaining consumed by the segment.
	// An empty match is not a match.
	Match(remaining string) (string, bool)

	// Render returns the text the segment contributes to a built path.
	Render(values map[string]any) (string, error)

	// Name is the placeholder name, or "" for literal segments.
	Name() string
}

// Literal matches its text verbatim.
type Literal struct {
	text string
}

// NewLiteral returns a literal segment.
func NewLiteral(text string) Literal { return Literal{text: text} }

// Match implements Segment.
func (l Literal) Match(remaining string) (string, bool) {
	if l.text == "" || !strings.HasPrefix(remaining, l.text) {
		return "", false
	}
	return l.text, true
}

// Render implements Segment.
func (l Literal) Render(map[string]any) (string, error) { return l.text, nil }

// Name implements Segment.
func (Literal) Name() string { return "" }

// Text returns the literal text.
func (l Literal) Text() string { return l.text }

// Named matches a pattern-constrained placeholder and captures the matched text.
type Named struct {
	name    string
	pattern string
	prefix  *regexp.Regexp // ^(?:pattern)
}

// NewNamed compiles a placeholder. An empty pattern means DefaultPattern.
func NewNamed(name, pattern string) (Named, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	prefix, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Named{}, err
	}
	return Named{name: name, pattern: pattern, prefix: prefix}, nil
}

// Match implements Segment. The pattern is anchored at the start of remaining.
func (n Named) Match(remaining string) (string, bool) {
	loc := n.prefix.FindStringIndex(remaining)
	if loc == nil || loc[1] == 0 {
		return "", false
	}
	return remaining[:loc[1]], true
}

// Render implements Segment. Match must consume the stringified value in full,
// so that the placeholder captures it back unchanged.
func (n Named) Render(values map[string]any) (string, error) {
	raw, ok := values[n.name]
	if !ok {
		return "", BuildPathError{Param: n.name, Reason: "is missing"}
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", BuildPathError{Param: n.name, Reason: "cannot be converted to a string: " + err.Error()}
	}
	if got, ok := n.Match(s); !ok || len(got) != len(s) {
		return "", BuildPathError{Param: n.name, Reason: "value " + strconv.Quote(s) + " does not match " + strconv.Quote(n.pattern)}
	}
	return s, nil
}

// Name implements Segment.
func (n Named) Name() string { return n.name }

// Pattern returns the placeholder pattern source.
func (n Named) Pattern() string { return n.pattern }
