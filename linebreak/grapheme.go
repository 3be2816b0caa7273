package linebreak

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/textlayout/emoji"
	"github.com/gogpu/textlayout/script"
)

// Grapheme is the indivisible unit of line breaking: one NFC code point
// together with any combining marks NFC could not compose into it, or one
// complete emoji sequence.
type Grapheme struct {
	Text     string
	Category script.Category
}

// Graphemes normalizes line and splits it into classified graphemes.
//
// Emoji sequences are detected on the raw text and passed through
// untouched; only the text between them is normalized to NFC.
func Graphemes(line string) []Grapheme {
	if line == "" {
		return nil
	}

	graphemes := make([]Grapheme, 0, len(line))
	for _, run := range emoji.Split(line) {
		if run.IsEmoji {
			graphemes = append(graphemes, Grapheme{Text: run.Text, Category: script.Emoji})
			continue
		}
		graphemes = appendPlain(graphemes, norm.NFC.String(run.Text))
	}
	return graphemes
}

// appendPlain appends the graphemes of emoji-free, normalized text.
// Invalid bytes are kept as one-byte graphemes of their own.
func appendPlain(graphemes []Grapheme, text string) []Grapheme {
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		raw := text[pos : pos+size]
		pos += size
		if isMark(r) && len(graphemes) > 0 {
			last := &graphemes[len(graphemes)-1]
			if last.Category != script.Whitespace {
				last.Text += raw
				if last.Category == script.Emoji {
					// A pictographic base outside a sequence, e.g. forced
					// to text presentation with U+FE0E.
					last.Category = script.ClassifyGrapheme(last.Text)
				}
				continue
			}
		}
		graphemes = append(graphemes, Grapheme{Text: raw, Category: script.Classify(r)})
	}
	return graphemes
}

// isMark reports whether r is a non-spacing or enclosing combining mark.
func isMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// Normalize returns line as the tokenizer sees it: NFC outside emoji
// sequences, emoji sequences unchanged.
func Normalize(line string) string {
	if !emoji.ContainsEmoji(line) {
		return norm.NFC.String(line)
	}
	var b strings.Builder
	b.Grow(len(line))
	for _, run := range emoji.Split(line) {
		if run.IsEmoji {
			b.WriteString(run.Text)
			continue
		}
		b.WriteString(norm.NFC.String(run.Text))
	}
	return b.String()
}

// joinGraphemes concatenates grapheme texts.
func joinGraphemes(graphemes []Grapheme) string {
	if len(graphemes) == 1 {
		return graphemes[0].Text
	}
	var b strings.Builder
	for _, g := range graphemes {
		b.WriteString(g.Text)
	}
	return b.String()
}
