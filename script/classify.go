package script

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textlayout/emoji"
)

// special maps punctuation and symbols outside ASCII to their category.
// Entries here take precedence over the script lookup.
var special = buildSpecial()

func buildSpecial() map[rune]Category {
	m := make(map[rune]Category, 64)
	add := func(chars string, c Category) {
		for _, r := range chars {
			m[r] = c
		}
	}
	add("‐–—", Hyphen)
	add("…", ClosingPunct) // …
	add("「『（〔［｛〈《【〖〘〚＜〝", CjkOpeningPunct)
	add("」』）〕］｝〉》】〗〙〛＞。．，、〟‥？！：；・〜゠", CjkClosingPunct)
	add("￠￡￥￦", CurrencySymbol)
	add("ー々〆〇", CjkChar)
	return m
}

// Classify returns the category of a single code point.
// Unknown and unassigned code points classify as Other.
func Classify(r rune) Category {
	if IsWhitespace(r) {
		return Whitespace
	}
	if r < utf8.RuneSelf {
		return classifyASCII(r)
	}
	if c, ok := special[r]; ok {
		return c
	}
	if emoji.IsPictographic(r) {
		return Emoji
	}
	if isCJKChar(r) {
		return CjkChar
	}
	return Other
}

// ClassifyGrapheme returns the category of a grapheme: one code point with
// optional combining marks, or one complete emoji sequence.
func ClassifyGrapheme(g string) Category {
	if g == "" {
		return Other
	}
	runes := []rune(g)
	if _, n := emoji.SequenceAt(runes); n == len(runes) {
		return Emoji
	}
	c := Classify(runes[0])
	if c == Emoji {
		// A pictographic base that did not form a sequence (for example one
		// forced to text presentation with U+FE0E) breaks like a letter.
		return Other
	}
	return c
}

// IsWhitespace reports whether r matches JavaScript's \s class.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func classifyASCII(r rune) Category {
	switch r {
	case '-':
		return Hyphen
	case '<', '(', '[', '{':
		return OpeningPunct
	case '>', ')', ']', '}', '.', ',', ':', ';', '!', '?', '/':
		return ClosingPunct
	default:
		return Other
	}
}

// isCJKChar reports whether r belongs to a script that breaks between
// characters, or is a fullwidth letter or digit.
func isCJKChar(r rune) bool {
	switch language.LookupScript(r) {
	case language.Han, language.Hiragana, language.Katakana, language.Hangul, language.Bopomofo:
		return true
	}
	return isFullwidthAlnum(r)
}

func isFullwidthAlnum(r rune) bool {
	return (r >= 0xFF10 && r <= 0xFF19) || // digits
		(r >= 0xFF21 && r <= 0xFF3A) || // uppercase
		(r >= 0xFF41 && r <= 0xFF5A) // lowercase
}
