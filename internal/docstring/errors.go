package docstring

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStyle reports a style outside the supported conventions.
	ErrUnsupportedStyle = errors.New("unsupported docstring style")

	// ErrInvalidLineLength reports a maximum line length below MinLineLength.
	ErrInvalidLineLength = errors.New("invalid maximum line length")

	// ErrIndexOutOfRange reports an entry index outside a section's bounds.
	ErrIndexOutOfRange = errors.New("entry index out of range")
)

func newUnsupportedStyleError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedStyle, name)
}

func newInvalidLineLengthError(length int) error {
	return fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidLineLength, length, MinLineLength)
}
