package docstring

import (
	"strings"
	"unicode/utf8"
)

// restBlocks renders all field-list lines as a single contiguous block,
// the way Sphinx expects them.
func restBlocks(req Request) []string {
	var fields []string
	for _, e := range req.Args {
		fields = append(fields, restField(restMarker(":param", e.Name), e.Description, req.MaxLineLength))
	}
	if req.Returns != "" {
		fields = append(fields, restField(":returns:", req.Returns, req.MaxLineLength))
	}
	for _, e := range req.Raises {
		fields = append(fields, restField(restMarker(":raises", e.Name), e.Description, req.MaxLineLength))
	}
	if len(fields) == 0 {
		return nil
	}
	return []string{strings.Join(fields, "\n")}
}

func restMarker(field, name string) string {
	if name == "" {
		return field + ":"
	}
	return field + " " + name + ":"
}

// restField renders ":param x: description" with continuation lines aligned
// one column past the field marker.
func restField(marker, text string, width int) string {
	if text == "" {
		return marker
	}
	hang := strings.Repeat(" ", utf8.RuneCountInString(marker)+1)
	return wrap(text, width, marker+" ", hang)
}
