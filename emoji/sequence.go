package emoji

// unknownStr is returned for unknown enum values.
const unknownStr = "Unknown"

// SequenceType indicates the kind of emoji sequence.
type SequenceType int

const (
	// SequenceSimple is a single emoji character.
	SequenceSimple SequenceType = iota

	// SequenceZWJ is two or more emoji joined by U+200D.
	SequenceZWJ

	// SequenceFlag is a pair of regional indicators (U+1F1FA U+1F1F8 = US).
	SequenceFlag

	// SequenceKeycap is a keycap base, optional U+FE0F and U+20E3.
	SequenceKeycap

	// SequenceModified is an emoji followed by a skin tone modifier.
	SequenceModified

	// SequenceTag is an emoji followed by tag characters and a cancel tag
	// (subdivision flags such as Scotland).
	SequenceTag

	// SequencePresentation is an emoji followed by U+FE0F.
	SequencePresentation
)

var sequenceTypeNames = [...]string{
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
}

// String returns the name of the sequence type.
func (t SequenceType) String() string {
	if t >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return unknownStr
}

// Sequence is one user-perceived emoji, possibly several code points long.
type Sequence struct {
	// Codepoints holds every rune of the sequence.
	Codepoints []rune

	// Type is the sequence kind. A ZWJ chain reports SequenceZWJ even when
	// its elements carry modifiers or presentation selectors.
	Type SequenceType

	// Base is the first code point.
	Base rune

	// Modifier is the skin tone modifier of the first element, or 0.
	Modifier rune
}

// String returns the sequence as text.
func (s Sequence) String() string {
	return string(s.Codepoints)
}

// Len returns the number of code points in the sequence.
func (s Sequence) Len() int {
	return len(s.Codepoints)
}

// SequenceAt parses the emoji sequence starting at runes[0].
// It returns the sequence and the number of runes consumed, or
// (Sequence{}, 0) when runes does not start with an emoji.
//
// The accepted grammar is:
//
//	flag     = RI RI
//	keycap   = [0-9#*] FE0F? 20E3
//	element  = pictographic (modifier | FE0F 20E3? | tag+ cancel)?
//	sequence = flag | keycap | element (ZWJ (flag | emoji-tail))*
func SequenceAt(runes []rune) (Sequence, int) {
	if len(runes) == 0 {
		return Sequence{}, 0
	}
	r := runes[0]

	if IsRegionalIndicator(r) && len(runes) >= 2 && IsRegionalIndicator(runes[1]) {
		return Sequence{Codepoints: runes[:2], Type: SequenceFlag, Base: r}, 2
	}

	if IsKeycapBase(r) {
		if n := keycapLen(runes); n > 0 {
			return Sequence{Codepoints: runes[:n], Type: SequenceKeycap, Base: r}, n
		}
		return Sequence{}, 0
	}

	if !IsPictographic(r) {
		return Sequence{}, 0
	}
	if len(runes) > 1 && IsTextVariation(runes[1]) {
		// Explicit text presentation: not an emoji.
		return Sequence{}, 0
	}

	seq := Sequence{Type: SequenceSimple, Base: r}
	i := 1
	tail, typ := elementTail(runes[i:])
	if tail > 0 {
		seq.Type = typ
		if typ == SequenceModified {
			seq.Modifier = runes[i]
		}
		i += tail
	}

	for i+1 < len(runes) && IsZWJ(runes[i]) {
		n := joinedLen(runes[i+1:])
		if n == 0 {
			break
		}
		i += 1 + n
		seq.Type = SequenceZWJ
	}

	seq.Codepoints = runes[:i]
	return seq, i
}

// keycapLen returns the length of a keycap sequence at runes[0], or 0.
func keycapLen(runes []rune) int {
	i := 1
	if i < len(runes) && IsEmojiVariation(runes[i]) {
		i++
	}
	if i < len(runes) && IsCombiningEnclosingKeycap(runes[i]) {
		return i + 1
	}
	return 0
}

// elementTail measures the optional modifier, presentation selector or
// tag run following an emoji base.
func elementTail(runes []rune) (int, SequenceType) {
	if len(runes) == 0 {
		return 0, SequenceSimple
	}
	r := runes[0]
	switch {
	case IsEmojiModifier(r):
		return 1, SequenceModified
	case IsEmojiVariation(r):
		if len(runes) > 1 && IsCombiningEnclosingKeycap(runes[1]) {
			return 2, SequencePresentation
		}
		return 1, SequencePresentation
	case IsTagCharacter(r):
		i := 1
		for i < len(runes) && IsTagCharacter(runes[i]) {
			i++
		}
		if i < len(runes) && IsCancelTag(runes[i]) {
			return i + 1, SequenceTag
		}
	}
	return 0, SequenceSimple
}

// joinedLen measures the element following a ZWJ. Any emoji character may
// appear there, including components such as a second regional pair.
func joinedLen(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	r := runes[0]
	if IsRegionalIndicator(r) && len(runes) >= 2 && IsRegionalIndicator(runes[1]) {
		return 2
	}
	if !IsPictographic(r) && !IsRegionalIndicator(r) && !IsEmojiModifier(r) {
		return 0
	}
	if len(runes) > 1 && IsTextVariation(runes[1]) {
		return 0
	}
	n, _ := elementTail(runes[1:])
	return 1 + n
}

// Parse returns every emoji sequence in runes, skipping other characters.
func Parse(runes []rune) []Sequence {
	if len(runes) == 0 {
		return nil
	}
	sequences := make([]Sequence, 0, 4)
	for i := 0; i < len(runes); {
		seq, n := SequenceAt(runes[i:])
		if n == 0 {
			i++
			continue
		}
		sequences = append(sequences, seq)
		i += n
	}
	return sequences
}

// ParseString is Parse for a string. Invalid bytes decode to
// utf8.RuneError and never start a sequence.
func ParseString(text string) []Sequence {
	return Parse([]rune(text))
}
