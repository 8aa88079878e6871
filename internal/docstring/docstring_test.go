package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle_AcceptsIdentifiersAndLabels(t *testing.T) {
	cases := map[string]Style{
		"google":                  StyleGoogle,
		"Google Style":            StyleGoogle,
		"rest":                    StyleREST,
		"reStructuredText (reST)": StyleREST,
		"sphinx":                  StyleREST,
		"numpy":                   StyleNumPy,
		"NumPy Style":             StyleNumPy,
		"  NUMPY  ":               StyleNumPy,
	}
	for in, want := range cases {
		got, err := ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseStyle_RejectsUnknownName(t *testing.T) {
	_, err := ParseStyle("XML")
	require.ErrorIs(t, err, ErrUnsupportedStyle)
	assert.Contains(t, err.Error(), "XML")
}

func TestStyle_DefaultLineLength(t *testing.T) {
	assert.Equal(t, 100, StyleGoogle.DefaultLineLength())
	assert.Equal(t, 79, StyleREST.DefaultLineLength())
	assert.Equal(t, 100, StyleNumPy.DefaultLineLength())
}

func TestStyles_PresentationOrder(t *testing.T) {
	assert.Equal(t, []Style{StyleGoogle, StyleREST, StyleNumPy}, Styles())
}

func TestTripleQuoted_WrapsBody(t *testing.T) {
	assert.Equal(t, "\"\"\"\nAdd two numbers.\n\"\"\"", TripleQuoted("Add two numbers."))
	assert.Equal(t, `""""""`, TripleQuoted(""))
}

func TestTrimBlankLines_KeepsInteriorIndentation(t *testing.T) {
	got := trimBlankLines("\n  \nfirst\n    indented\n\nlast\n\t\n")
	assert.Equal(t, "first\n    indented\n\nlast", got)
}
