package docstring

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// enumMarker matches ordered list markers such as "1. " or "12) ".
var enumMarker = regexp.MustCompile(`^\d+[.)]\s`)

// wrap re-flows text to the given width, measured in runes. The first
// emitted line is prefixed with initial (which may carry a field marker such
// as ":param x: "), every later line with subsequent. Blank lines in the
// input separate paragraphs and survive as exactly one blank line each.
// Lines with apparent structure, leading whitespace or a list marker, pass
// through verbatim and are exempt from the width bound. A single token wider
// than the remaining room is placed alone on its line, never split.
func wrap(text string, width int, initial, subsequent string) string {
	var (
		out     []string
		words   []string
		indent  = initial
		pending bool
	)

	emit := func(line string) {
		if pending && len(out) > 0 {
			out = append(out, "")
		}
		pending = false
		out = append(out, strings.TrimRight(line, " \t"))
		indent = subsequent
	}

	flush := func() {
		if len(words) == 0 {
			return
		}
		line := indent
		used := utf8.RuneCountInString(indent)
		onLine := 0
		for _, w := range words {
			wlen := utf8.RuneCountInString(w)
			if onLine > 0 && used+1+wlen > width {
				emit(line)
				line = indent
				used = utf8.RuneCountInString(indent)
				onLine = 0
			}
			if onLine > 0 {
				line += " "
				used++
			}
			line += w
			used += wlen
			onLine++
		}
		emit(line)
		words = nil
	}

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		switch {
		case strings.TrimSpace(raw) == "":
			flush()
			pending = true
		case structural(raw):
			flush()
			emit(indent + raw)
		default:
			words = append(words, strings.Fields(raw)...)
		}
	}
	flush()
	return strings.Join(out, "\n")
}

// structural reports whether a line is part of the text's visible layout
// (an indented block, a bullet, a numbered item) rather than flowing prose.
func structural(line string) bool {
	if line == "" {
		return false
	}
	if line[0] == ' ' || line[0] == '\t' {
		return true
	}
	for _, marker := range [...]string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return enumMarker.MatchString(line)
}
