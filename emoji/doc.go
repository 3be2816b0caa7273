// Package emoji detects emoji characters and multi-codepoint emoji
// sequences so that line breaking can treat each sequence as one unit.
//
// Supported sequences:
//
//   - Single emoji (U+1F600 grinning face, U+2764 heart)
//   - Skin tone modifiers (U+1F3FB - U+1F3FF)
//   - Presentation selectors (U+FE0F), with an optional keycap mark
//   - Flags from regional indicator pairs
//   - Keycaps (digit + U+FE0F + U+20E3)
//   - Tag sequences for subdivision flags
//   - ZWJ (U+200D) chains of any of the above
//
// # Usage
//
//	for _, run := range emoji.Split("Hello 😀 World") {
//	    if run.IsEmoji {
//	        // one atomic emoji sequence
//	    }
//	}
//
// The character tables follow Unicode Technical Report #51:
// https://www.unicode.org/reports/tr51/
package emoji
