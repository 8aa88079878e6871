package docstring

import "fmt"

// Section accumulates the name/description entries of one labeled docstring
// block (arguments or raised exceptions) in insertion order. Interactive
// callers bind input fields to the pointers AddEntry hands out and edit the
// entries in place. A Section is not safe for concurrent use.
type Section struct {
	label   string
	entries []*Entry
}

// NewSection returns an empty section with the given display label.
func NewSection(label string) *Section {
	return &Section{label: label}
}

// Label returns the display label the section was created with.
func (s *Section) Label() string {
	return s.label
}

// AddEntry appends a new empty entry and returns a pointer to it so input
// widgets can write the name and description directly.
func (s *Section) AddEntry() *Entry {
	e := &Entry{}
	s.entries = append(s.entries, e)
	return e
}

// RemoveEntry deletes the entry at index and shifts later entries down.
func (s *Section) RemoveEntry(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: index %d with %d entries", ErrIndexOutOfRange, index, len(s.entries))
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return nil
}

// Collect returns a snapshot of the entries in insertion order. Blank
// entries are included; filtering them is Format's job.
func (s *Section) Collect() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	return out
}

// Len reports the number of entries, blank ones included.
func (s *Section) Len() int {
	return len(s.entries)
}
