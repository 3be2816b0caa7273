// Package script classifies characters into the categories that drive line
// breaking: whitespace, hyphens, common and CJK punctuation, CJK
// characters, fullwidth currency and emoji.
//
// Classification is a pure range lookup. It holds no state and is safe for
// concurrent use.
package script

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Category is the line-breaking class of a grapheme.
type Category uint8

const (
	// Other is every character without a dedicated rule (letters, digits,
	// unassigned code points). It is the zero value.
	Other Category = iota

	// Whitespace follows JavaScript \s: Unicode White_Space plus U+FEFF.
	Whitespace

	// Hyphen allows a break after itself.
	Hyphen

	// OpeningPunct is common (non-CJK) opening punctuation such as '('.
	OpeningPunct

	// ClosingPunct is common closing punctuation such as ')' or '.'.
	ClosingPunct

	// CurrencySymbol is a fullwidth currency sign used in CJK text.
	CurrencySymbol

	// CjkChar is a Han, Hiragana, Katakana, Hangul or Bopomofo character.
	CjkChar

	// CjkOpeningPunct is CJK opening punctuation such as '「'.
	CjkOpeningPunct

	// CjkClosingPunct is CJK closing punctuation such as '」' or '。'.
	CjkClosingPunct

	// Emoji is a complete emoji sequence.
	Emoji
)

var categoryNames = [...]string{
	Other:           "Other",
	Whitespace:      "Whitespace",
	Hyphen:          "Hyphen",
	OpeningPunct:    "OpeningPunct",
	ClosingPunct:    "ClosingPunct",
	CurrencySymbol:  "CurrencySymbol",
	CjkChar:         "CjkChar",
	CjkOpeningPunct: "CjkOpeningPunct",
	CjkClosingPunct: "CjkClosingPunct",
	Emoji:           "Emoji",
}

// String returns the name of the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return unknownStr
}

// IsCJK reports whether c is a CJK character or CJK punctuation.
func (c Category) IsCJK() bool {
	return c == CjkChar || c == CjkOpeningPunct || c == CjkClosingPunct
}

// IsOpening reports whether c is common or CJK opening punctuation.
func (c Category) IsOpening() bool {
	return c == OpeningPunct || c == CjkOpeningPunct
}

// IsClosing reports whether c is common or CJK closing punctuation.
func (c Category) IsClosing() bool {
	return c == ClosingPunct || c == CjkClosingPunct
}
