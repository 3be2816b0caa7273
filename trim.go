package textlayout

import (
	"strings"

	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/script"
)

// trimLine drops only as much trailing whitespace as needed for the line
// to fit. A line that fits is returned unchanged. The first grapheme is
// never dropped, so a line of whitespace keeps at least one character.
func (e *Engine) trimLine(line lineBuf, font fontdesc.Descriptor, maxWidth float64) (string, error) {
	w, err := e.LineWidth(line.text, font)
	if err != nil {
		return "", err
	}
	if w <= maxWidth {
		return line.text, nil
	}

	gs := line.graphemes
	end := len(gs)
	for end > 1 && gs[end-1].Category == script.Whitespace {
		end--
	}
	if end == len(gs) {
		return line.text, nil
	}

	var b strings.Builder
	for _, g := range gs[:end] {
		b.WriteString(g.Text)
	}
	body := b.String()
	width, err := e.LineWidth(body, font)
	if err != nil {
		return "", err
	}

	for _, g := range gs[end:] {
		cw, err := e.CharWidth(g.Text, font)
		if err != nil {
			return "", err
		}
		if width+cw > maxWidth {
			break
		}
		b.WriteString(g.Text)
		width += cw
	}
	return b.String(), nil
}
