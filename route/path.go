package route

import (
	"strings"
)

// Path is a compiled path template: an ordered sequence of segments.
//
// Template syntax is literal text mixed with placeholders:
//
//	/user/{id}/            id matches DefaultPattern
//	/user/{id:\d+}/        id matches \d+
//
// Braces cannot be nested or escaped, so patterns containing '{' or '}' (for
// example \d{2}) are rejected.
type Path struct {
	template string
	segments []Segment
}

// Compile parses template left to right. The longest run without braces is a
// literal; the text inside a brace pair is a placeholder, split on the first
// ':' into name and optional pattern.
func Compile(template string) (*Path, error) {
	p := &Path{template: template}
	seen := make(map[string]struct{})

	rest := template
	for rest != "" {
		offset := len(template) - len(rest)

		switch rest[0] {
		case '}':
			return nil, &TemplateError{Template: template, Offset: offset, Reason: "unexpected '}'"}

		case '{':
			end := strings.IndexAny(rest[1:], "{}")
			if end < 0 || rest[1+end] != '}' {
				return nil, &TemplateError{Template: template, Offset: offset, Reason: "unterminated or nested placeholder"}
			}
			token := rest[1 : 1+end]
			if token == "" {
				return nil, &TemplateError{Template: template, Offset: offset, Reason: "empty placeholder"}
			}

			name, pattern, _ := strings.Cut(token, ":")
			if name == "" {
				return nil, &TemplateError{Template: template, Offset: offset, Reason: "placeholder has no name"}
			}
			if _, dup := seen[name]; dup {
				return nil, &TemplateError{Template: template, Offset: offset, Reason: "duplicate placeholder " + name}
			}
			seen[name] = struct{}{}

			seg, err := NewNamed(name, pattern)
			if err != nil {
				return nil, &TemplateError{Template: template, Offset: offset, Reason: "bad pattern for " + name, Err: err}
			}
			p.segments = append(p.segments, seg)
			rest = rest[2+end:]

		default:
			end := strings.IndexAny(rest, "{}")
			if end < 0 {
				end = len(rest)
			}
			p.segments = append(p.segments, NewLiteral(rest[:end]))
			rest = rest[end:]
		}
	}
	return p, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(template string) *Path {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Match folds the segments over path and returns the captured placeholder
// values. It succeeds only if every segment matches and the whole input is
// consumed; a matching prefix with trailing characters is not a match.
func (p *Path) Match(path string) (map[string]string, bool) {
	values := make(map[string]string)
	rest := path
	for _, seg := range p.segments {
		m, ok := seg.Match(rest)
		if !ok {
			return nil, false
		}
		rest = rest[len(m):]
		if name := seg.Name(); name != "" {
			values[name] = m
		}
	}
	if rest != "" {
		return nil, false
	}
	return values, true
}

// Build renders the path for values. Every placeholder needs a value that
// satisfies its pattern; extra values are ignored.
func (p *Path) Build(values map[string]any) (string, error) {
	var b strings.Builder
	for _, seg := range p.segments {
		s, err := seg.Render(values)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Template returns the source template.
func (p *Path) Template() string { return p.template }

// Segments returns the compiled segments.
func (p *Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Params returns the placeholder names in template order.
func (p *Path) Params() []string {
	var names []string
	for _, seg := range p.segments {
		if name := seg.Name(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// String implements fmt.Stringer.
func (p *Path) String() string { return p.template }
