package extract

import (
	"strings"

	textutil "github.com/law-makers/locator/internal/utils/text"
)

// Name is a decomposed person name
type Name struct {
	First  string
	Middle string
	Last   string
}

// NameSplitter decomposes a listing display name. fallback carries the
// names the search was run for and is used when the display text cannot
// be decomposed.
type NameSplitter interface {
	Split(display string, fallback Name) Name
}

// NameSplitterFunc adapts a function to the NameSplitter interface
type NameSplitterFunc func(display string, fallback Name) Name

// Split calls f(display, fallback)
func (f NameSplitterFunc) Split(display string, fallback Name) Name {
	return f(display, fallback)
}

// LastCommaFirst splits "Last, First Middle" display names.
//
// Text before the first comma is the last name. Everything after it, with
// any further commas dropped, is split on whitespace: the first token is
// the first name and the remaining tokens form the middle name. Without a
// comma the fallback first and last names are kept and middle is empty.
type LastCommaFirst struct{}

// Split implements NameSplitter
func (LastCommaFirst) Split(display string, fallback Name) Name {
	name := Name{First: fallback.First, Last: fallback.Last}

	idx := strings.Index(display, ",")
	if idx < 0 {
		return name
	}

	name.Last = textutil.Clean(display[:idx])
	rest := textutil.Clean(strings.ReplaceAll(display[idx+1:], ",", ""))
	if parts := strings.Fields(rest); len(parts) > 0 {
		name.First = parts[0]
		name.Middle = strings.Join(parts[1:], " ")
	}
	return name
}
