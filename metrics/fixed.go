package metrics

import (
	"unicode/utf8"

	"github.com/gogpu/textlayout/fontdesc"
)

// Fixed gives every rune the same advance, whatever the font. Wider text
// is never narrower, which is all the layout engine relies on, so Fixed
// is the backend used in tests and headless environments.
type Fixed struct {
	Advance float64
}

// NewFixed returns a Fixed provider with the given per-rune advance.
func NewFixed(advance float64) *Fixed {
	return &Fixed{Advance: advance}
}

// Measure implements Provider.
func (f *Fixed) Measure(text string, _ fontdesc.Descriptor) (float64, error) {
	return float64(utf8.RuneCountInString(text)) * f.Advance, nil
}
