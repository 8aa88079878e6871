package docstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_GoogleArgsAndReturns(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Add two numbers.",
		Style:         StyleGoogle,
		MaxLineLength: 79,
		Args: []Entry{
			{Name: "a", Description: "First number"},
			{Name: "b", Description: "Second number"},
		},
		Returns: "The sum.",
	})
	require.NoError(t, err)

	want := "Add two numbers.\n\n" +
		"Args:\n" +
		"    a: First number\n" +
		"    b: Second number\n\n" +
		"Returns:\n" +
		"    The sum."
	assert.Equal(t, want, out)
}

func TestFormat_GoogleRaisesAndBlockOrder(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Sum.",
		Description:   "Details here.",
		Style:         StyleGoogle,
		MaxLineLength: 79,
		Args:          []Entry{{Name: "a", Description: "One"}},
		Returns:       "Total",
		Raises:        []Entry{{Name: "ValueError", Description: "Bad."}},
	})
	require.NoError(t, err)

	want := "Sum.\n\n" +
		"Details here.\n\n" +
		"Args:\n    a: One\n\n" +
		"Returns:\n    Total\n\n" +
		"Raises:\n    ValueError: Bad."
	assert.Equal(t, want, out)
}

func TestFormat_GoogleContinuationIndent(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleGoogle,
		MaxLineLength: 30,
		Args:          []Entry{{Name: "alpha", Description: "one two three four five six seven"}},
	})
	require.NoError(t, err)

	want := "Args:\n" +
		"    alpha: one two three four\n" +
		"        five six seven"
	assert.Equal(t, want, out)
}

func TestFormat_GoogleNamelessAndDescriptionlessEntries(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleGoogle,
		MaxLineLength: 79,
		Args: []Entry{
			{Description: "Standalone description"},
			{Name: "flag"},
		},
	})
	require.NoError(t, err)

	want := "Args:\n" +
		"    Standalone description\n" +
		"    flag:"
	assert.Equal(t, want, out)
}

func TestFormat_RESTFieldList(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Do a thing.",
		Style:         StyleREST,
		MaxLineLength: 79,
		Args:          []Entry{{Name: "x", Description: "A value"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Do a thing.\n\n:param x: A value", out)
}

func TestFormat_RESTAllFields(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Do.",
		Style:         StyleREST,
		MaxLineLength: 79,
		Args: []Entry{
			{Name: "x", Description: "A value"},
			{Name: "y", Description: "Another value"},
		},
		Returns: "A result.",
		Raises:  []Entry{{Name: "ValueError", Description: "If x is bad."}},
	})
	require.NoError(t, err)

	want := "Do.\n\n" +
		":param x: A value\n" +
		":param y: Another value\n" +
		":returns: A result.\n" +
		":raises ValueError: If x is bad."
	assert.Equal(t, want, out)
}

func TestFormat_RESTContinuationAlignsToMarker(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleREST,
		MaxLineLength: 30,
		Args:          []Entry{{Name: "alpha", Description: "a long description that wraps"}},
	})
	require.NoError(t, err)

	want := ":param alpha: a long\n" +
		"              description that\n" +
		"              wraps"
	assert.Equal(t, want, out)
}

func TestFormat_RESTNamelessParam(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleREST,
		MaxLineLength: 79,
		Args:          []Entry{{Description: "Just text"}},
	})
	require.NoError(t, err)
	assert.Equal(t, ":param: Just text", out)
}

func TestFormat_NumPyParameters(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Compute.",
		Style:         StyleNumPy,
		MaxLineLength: 79,
		Args:          []Entry{{Name: "y", Description: "A value"}},
	})
	require.NoError(t, err)

	want := "Compute.\n\n" +
		"Parameters\n" +
		"----------\n" +
		"y\n" +
		"    A value"
	assert.Equal(t, want, out)
}

func TestFormat_NumPyAllSections(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleNumPy,
		MaxLineLength: 79,
		Args:          []Entry{{Name: "y", Description: "A value"}},
		Returns:       "A result.",
		Raises:        []Entry{{Name: "ValueError", Description: "Bad input."}},
	})
	require.NoError(t, err)

	want := "Parameters\n----------\ny\n    A value\n\n" +
		"Returns\n-------\n    A result.\n\n" +
		"Raises\n------\nValueError\n    Bad input."
	assert.Equal(t, want, out)
}

func TestFormat_PreservesParagraphs(t *testing.T) {
	out, err := Format(Request{
		Summary:       "Summarize.",
		Description:   "Line one.\n\nLine two that is quite long and should wrap at the configured boundary.",
		Style:         StyleGoogle,
		MaxLineLength: 40,
	})
	require.NoError(t, err)

	want := "Summarize.\n\n" +
		"Line one.\n\n" +
		"Line two that is quite long and should\n" +
		"wrap at the configured boundary."
	require.Equal(t, want, out)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}

func TestFormat_SummaryStaysVerbatim(t *testing.T) {
	summary := "This summary is deliberately much longer than the configured line length."
	out, err := Format(Request{
		Summary:       summary,
		Style:         StyleGoogle,
		MaxLineLength: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, summary, out)
}

func TestFormat_RejectsUnknownStyle(t *testing.T) {
	_, err := Format(Request{Summary: "Hi.", Style: "xml", MaxLineLength: 79})
	require.ErrorIs(t, err, ErrUnsupportedStyle)
	assert.Contains(t, err.Error(), "xml")
}

func TestFormat_RejectsNarrowLineLength(t *testing.T) {
	_, err := Format(Request{Summary: "Hi.", Style: StyleGoogle, MaxLineLength: 19})
	require.ErrorIs(t, err, ErrInvalidLineLength)

	_, err = Format(Request{Summary: "Hi.", Style: StyleGoogle})
	require.ErrorIs(t, err, ErrInvalidLineLength)
}

func TestFormat_EmptyRequestRendersEmpty(t *testing.T) {
	out, err := Format(Request{Style: StyleGoogle, MaxLineLength: 79})
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = Format(Request{
		Style:         StyleREST,
		MaxLineLength: 79,
		Args:          []Entry{{}, {Name: "  ", Description: "\n \t"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormat_DropsBlankEntries(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleGoogle,
		MaxLineLength: 79,
		Args: []Entry{
			{Name: "a", Description: "First"},
			{},
			{Name: " ", Description: "  "},
			{Name: "b", Description: "Second"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Args:\n    a: First\n    b: Second", out)
}

func TestFormat_KeepsEntryOrder(t *testing.T) {
	out, err := Format(Request{
		Style:         StyleGoogle,
		MaxLineLength: 79,
		Args: []Entry{
			{Name: "zebra", Description: "Last alphabetically"},
			{Name: "apple", Description: "First alphabetically"},
			{Name: "mango", Description: "Middle"},
		},
	})
	require.NoError(t, err)

	want := "Args:\n" +
		"    zebra: Last alphabetically\n" +
		"    apple: First alphabetically\n" +
		"    mango: Middle"
	assert.Equal(t, want, out)
}

func TestFormat_Deterministic(t *testing.T) {
	req := Request{
		Summary:       "Same in, same out.",
		Description:   "A paragraph.\n\nAnother paragraph with a few more words in it.",
		Style:         StyleNumPy,
		MaxLineLength: 72,
		Args:          []Entry{{Name: "x", Description: "A value"}},
		Returns:       "Something.",
		Raises:        []Entry{{Name: "KeyError", Description: "On miss."}},
	}
	first, err := Format(req)
	require.NoError(t, err)
	second, err := Format(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
