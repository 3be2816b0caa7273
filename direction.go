package textlayout

import "golang.org/x/text/unicode/bidi"

// Direction is the base direction of a line.
type Direction int

const (
	// LTR is left-to-right, also used when a line has no strong character.
	LTR Direction = iota
	// RTL is right-to-left.
	RTL
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the direction of the first strong character in
// line, or LTR when there is none. Text is not reordered.
func DetectDirection(line string) Direction {
	for _, r := range line {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
	}
	return LTR
}
