package emoji

import "unicode"

// emojiPresentation holds characters that default to emoji presentation
// (Emoji_Presentation=Yes) in the supplementary planes, plus the emoji
// components that render as emoji on their own (regional indicators and
// skin tone modifiers).
var emojiPresentation = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F02F, Stride: 1}, // Mahjong tiles
		{Lo: 0x1F0A0, Hi: 0x1F0FF, Stride: 1}, // Playing cards
		{Lo: 0x1F170, Hi: 0x1F19A, Stride: 1}, // Enclosed alphanumerics
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // Regional indicators
		{Lo: 0x1F201, Hi: 0x1F251, Stride: 1}, // Enclosed ideographic supplement
		{Lo: 0x1F300, Hi: 0x1F64F, Stride: 1}, // Pictographs, emoticons, modifiers
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and map
		{Lo: 0x1F900, Hi: 0x1FAFF, Stride: 1}, // Supplemental and extended pictographs
	},
}

// textPresentation holds characters that are emoji but default to text
// presentation (Emoji=Yes, Emoji_Presentation=No). They still start an
// emoji sequence, matching Extended_Pictographic.
var textPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00AE, Stride: 5}, // © ®
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1},
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1},
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1},
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1},
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // Miscellaneous symbols
		{Lo: 0x2702, Hi: 0x27B0, Stride: 1}, // Dingbats
		{Lo: 0x27BF, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303D, Hi: 0x303D, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	LatinOffset: 1,
}

// IsEmoji reports whether r is an emoji character or an emoji component.
func IsEmoji(r rune) bool {
	return IsPictographic(r) || IsComponent(r)
}

// IsEmojiPresentation reports whether r renders as emoji without U+FE0F.
func IsEmojiPresentation(r rune) bool {
	return unicode.Is(emojiPresentation, r)
}

// IsPictographic reports whether r can start an emoji sequence.
// This covers both emoji-presentation and text-presentation emoji.
func IsPictographic(r rune) bool {
	if r < 0x00A9 {
		return false
	}
	return unicode.Is(emojiPresentation, r) || unicode.Is(textPresentation, r)
}

// IsComponent reports whether r only appears inside emoji sequences:
// modifiers, regional indicators, tags, ZWJ, variation selectors and
// the keycap mark.
func IsComponent(r rune) bool {
	return IsEmojiModifier(r) ||
		IsRegionalIndicator(r) ||
		IsTagCharacter(r) || IsCancelTag(r) ||
		IsZWJ(r) ||
		IsVariationSelector(r) ||
		IsCombiningEnclosingKeycap(r)
}

// IsEmojiModifier reports whether r is a Fitzpatrick skin tone modifier
// (U+1F3FB..U+1F3FF).
func IsEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsZWJ reports whether r is the Zero-Width Joiner (U+200D).
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsRegionalIndicator reports whether r is a regional indicator letter.
// Two of them form a flag.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F
}

// IsTextVariation reports whether r is the text variation selector (U+FE0E).
func IsTextVariation(r rune) bool {
	return r == 0xFE0E
}

// IsEmojiVariation reports whether r is the emoji variation selector (U+FE0F).
func IsEmojiVariation(r rune) bool {
	return r == 0xFE0F
}

// IsKeycapBase reports whether r can start a keycap sequence.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsCombiningEnclosingKeycap reports whether r is U+20E3.
func IsCombiningEnclosingKeycap(r rune) bool {
	return r == 0x20E3
}

// IsTagCharacter reports whether r is a tag character (U+E0020..U+E007E).
func IsTagCharacter(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// IsCancelTag reports whether r is the cancel tag (U+E007F) that
// terminates a tag sequence.
func IsCancelTag(r rune) bool {
	return r == 0xE007F
}
