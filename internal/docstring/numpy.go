package docstring

import (
	"strings"
	"unicode/utf8"
)

const numpyIndent = "    "

func numpyBlocks(req Request) []string {
	var blocks []string
	if len(req.Args) > 0 {
		blocks = append(blocks, numpySection("Parameters", req.Args, req.MaxLineLength))
	}
	if req.Returns != "" {
		blocks = append(blocks, numpyHeader("Returns")+"\n"+wrap(req.Returns, req.MaxLineLength, numpyIndent, numpyIndent))
	}
	if len(req.Raises) > 0 {
		blocks = append(blocks, numpySection("Raises", req.Raises, req.MaxLineLength))
	}
	return blocks
}

// numpyHeader underlines a section title with dashes of the same width.
func numpyHeader(title string) string {
	return title + "\n" + strings.Repeat("-", utf8.RuneCountInString(title))
}

// numpySection lists each entry as a bare name line followed by its
// description indented four spaces. Nameless entries contribute only the
// description; descriptionless entries only the name.
func numpySection(title string, entries []Entry, width int) string {
	var sb strings.Builder
	sb.WriteString(numpyHeader(title))
	for _, e := range entries {
		if e.Name != "" {
			sb.WriteByte('\n')
			sb.WriteString(e.Name)
		}
		if e.Description != "" {
			sb.WriteByte('\n')
			sb.WriteString(wrap(e.Description, width, numpyIndent, numpyIndent))
		}
	}
	return sb.String()
}
