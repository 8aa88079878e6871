// Package docstring renders Python docstring bodies from structured input.
// Rendering is a pure function of the request: no parsing, no I/O, no state.
package docstring

import (
	"strings"
)

// MinLineLength is the smallest accepted maximum line length. Narrower
// widths cannot hold a style's own indentation plus a single word.
const MinLineLength = 20

// LineLengthPresets are the conventional widths offered by the interactive
// surfaces. Zero (pick the style's default) is implied and not listed.
var LineLengthPresets = []int{72, 79, 88, 100, 120}

// Style identifies a docstring convention.
type Style string

const (
	StyleGoogle Style = "google"
	StyleREST   Style = "rest"
	StyleNumPy  Style = "numpy"
)

// Styles lists the supported styles in presentation order.
func Styles() []Style {
	return []Style{StyleGoogle, StyleREST, StyleNumPy}
}

// Label returns the human-facing name of the style.
func (s Style) Label() string {
	switch s {
	case StyleGoogle:
		return "Google Style"
	case StyleREST:
		return "reStructuredText (reST)"
	case StyleNumPy:
		return "NumPy Style"
	default:
		return string(s)
	}
}

// DefaultLineLength returns the maximum line length conventionally used
// with the style: 79 for reST (PEP 8), 100 for Google and NumPy.
func (s Style) DefaultLineLength() int {
	if s == StyleREST {
		return 79
	}
	return 100
}

// ParseStyle maps a user-facing style name to a Style. It accepts the
// canonical identifiers and the longer labels shown in selection menus.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "google", "google style":
		return StyleGoogle, nil
	case "rest", "restructuredtext", "restructuredtext (rest)", "sphinx":
		return StyleREST, nil
	case "numpy", "numpy style", "numpydoc":
		return StyleNumPy, nil
	default:
		return "", newUnsupportedStyleError(name)
	}
}

// Entry is one name/description pair in a parameter or exception section.
// Either field may be empty; entries with both fields empty are dropped at
// render time, not before.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (e Entry) blank() bool {
	return strings.TrimSpace(e.Name) == "" && strings.TrimSpace(e.Description) == ""
}

// Request carries everything Format needs to render one docstring body.
type Request struct {
	Summary       string  `json:"summary" yaml:"summary"`
	Description   string  `json:"description" yaml:"description"`
	Style         Style   `json:"style" yaml:"style"`
	MaxLineLength int     `json:"max_line_length" yaml:"max_line_length"`
	Args          []Entry `json:"args" yaml:"args"`
	Returns       string  `json:"returns" yaml:"returns"`
	Raises        []Entry `json:"raises" yaml:"raises"`
}

// normalize resolves the raw field values to their rendered form: outer
// whitespace trimmed, blank entries dropped, entry order untouched.
func normalize(req Request) Request {
	req.Summary = strings.TrimSpace(req.Summary)
	req.Description = trimBlankLines(req.Description)
	req.Returns = trimBlankLines(req.Returns)
	req.Args = liveEntries(req.Args)
	req.Raises = liveEntries(req.Raises)
	return req
}

func liveEntries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.blank() {
			continue
		}
		out = append(out, Entry{
			Name:        strings.TrimSpace(e.Name),
			Description: trimBlankLines(e.Description),
		})
	}
	return out
}

// trimBlankLines strips leading and trailing all-whitespace lines while
// leaving interior lines, including their indentation, untouched.
func trimBlankLines(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// TripleQuoted wraps a rendered docstring body in Python triple quotes.
// Format never adds delimiters itself; callers that emit a complete
// docstring opt in through this helper.
func TripleQuoted(body string) string {
	if body == "" {
		return `""""""`
	}
	return "\"\"\"\n" + body + "\n\"\"\""
}
