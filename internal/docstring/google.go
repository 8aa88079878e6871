package docstring

import "strings"

const (
	googleIndent     = "    "
	googleHangIndent = "        "
)

func googleBlocks(req Request) []string {
	var blocks []string
	if len(req.Args) > 0 {
		blocks = append(blocks, googleSection("Args:", req.Args, req.MaxLineLength))
	}
	if req.Returns != "" {
		blocks = append(blocks, "Returns:\n"+wrap(req.Returns, req.MaxLineLength, googleIndent, googleIndent))
	}
	if len(req.Raises) > 0 {
		blocks = append(blocks, googleSection("Raises:", req.Raises, req.MaxLineLength))
	}
	return blocks
}

func googleSection(header string, entries []Entry, width int) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range entries {
		sb.WriteByte('\n')
		sb.WriteString(googleEntry(e, width))
	}
	return sb.String()
}

// googleEntry renders one "name: description" item. Continuation lines hang
// at eight spaces when a name is present, at four otherwise.
func googleEntry(e Entry, width int) string {
	switch {
	case e.Name == "":
		return wrap(e.Description, width, googleIndent, googleIndent)
	case e.Description == "":
		return googleIndent + e.Name + ":"
	default:
		return wrap(e.Description, width, googleIndent+e.Name+": ", googleHangIndent)
	}
}
