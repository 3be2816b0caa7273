package textlayout

import (
	"strings"

	"github.com/gogpu/textlayout/fontdesc"
)

// Metrics is the size of a block of text.
type Metrics struct {
	Width  float64
	Height float64
}

// LineHeightPx returns the height of one line: the font size times the
// line height multiplier.
func LineHeightPx(font fontdesc.Descriptor, lineHeight float64) float64 {
	return font.Size() * lineHeight
}

// MeasureText measures multi-line text. Width is the widest line; an
// empty line measures as a single space. Height is LineHeightPx times the
// number of lines.
func (e *Engine) MeasureText(text string, font fontdesc.Descriptor, lineHeight float64) (Metrics, error) {
	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		if line == "" {
			line = " "
		}
		w, err := e.LineWidth(line, font)
		if err != nil {
			return Metrics{}, err
		}
		width = max(width, w)
	}
	return Metrics{
		Width:  width,
		Height: LineHeightPx(font, lineHeight) * float64(len(lines)),
	}, nil
}
