package docstring

import "strings"

// Format renders the request as a docstring body in the requested style.
// The result carries no comment delimiters and no trailing newline; a
// request with no content renders to the empty string. Format never falls
// back to another style: an unknown style or a line length below
// MinLineLength is an error.
func Format(req Request) (string, error) {
	if req.MaxLineLength < MinLineLength {
		return "", newInvalidLineLengthError(req.MaxLineLength)
	}

	var render func(Request) []string
	switch req.Style {
	case StyleGoogle:
		render = googleBlocks
	case StyleREST:
		render = restBlocks
	case StyleNumPy:
		render = numpyBlocks
	default:
		return "", newUnsupportedStyleError(string(req.Style))
	}

	req = normalize(req)
	blocks := make([]string, 0, 5)
	if req.Summary != "" {
		blocks = append(blocks, req.Summary)
	}
	if req.Description != "" {
		blocks = append(blocks, wrap(req.Description, req.MaxLineLength, "", ""))
	}
	blocks = append(blocks, render(req)...)
	return strings.Join(blocks, "\n\n"), nil
}
