package textlayout

import "strings"

// NormalizeText converts CRLF and lone CR line endings to LF and expands
// each tab to tabWidth spaces. A tabWidth below 1 uses DefaultTabWidth.
func NormalizeText(text string, tabWidth int) string {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsAny(text, "\r\t") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
}
