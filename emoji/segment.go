package emoji

import "unicode/utf8"

// Run is a piece of text that is either exactly one emoji sequence or a
// maximal stretch of non-emoji text.
type Run struct {
	// Text is the substring covered by the run.
	Text string

	// IsEmoji is true when Text is a single emoji sequence.
	IsEmoji bool

	// Start and End are byte offsets into the original string.
	Start, End int
}

// Split cuts text into runs. Every emoji sequence gets its own run, so two
// adjacent emoji produce two runs; non-emoji text between them is merged.
//
//	Split("hi 👋🏽!") // "hi ", "👋🏽", "!"
func Split(text string) []Run {
	if text == "" {
		return nil
	}

	runes, offsets := decode(text)
	runs := make([]Run, 0, 4)
	plainStart := -1

	for i := 0; i < len(runes); {
		_, n := SequenceAt(runes[i:])
		if n == 0 {
			if plainStart < 0 {
				plainStart = offsets[i]
			}
			i++
			continue
		}

		start, end := offsets[i], offsets[i+n]
		if plainStart >= 0 {
			runs = append(runs, Run{Text: text[plainStart:start], Start: plainStart, End: start})
			plainStart = -1
		}
		runs = append(runs, Run{Text: text[start:end], IsEmoji: true, Start: start, End: end})
		i += n
	}

	if plainStart >= 0 {
		runs = append(runs, Run{Text: text[plainStart:], Start: plainStart, End: len(text)})
	}
	return runs
}

// decode returns the runes of text and the byte offset of each, plus a
// final entry equal to len(text). An invalid byte decodes to
// utf8.RuneError and advances the offset by one.
func decode(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		runes = append(runes, r)
		offsets = append(offsets, pos)
		pos += size
	}
	return runes, append(offsets, len(text))
}

// ContainsEmoji reports whether text holds at least one emoji sequence.
func ContainsEmoji(text string) bool {
	runes, _ := decode(text)
	for i := range runes {
		if _, n := SequenceAt(runes[i:]); n > 0 {
			return true
		}
	}
	return false
}
