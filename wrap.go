package textlayout

import (
	"math"
	"strings"

	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/script"
)

// WrapText wraps every line of text so that it fits maxWidth and joins
// the result with '\n'. Lines that already fit are kept unchanged.
//
// A maxWidth that is NaN, infinite, zero or negative returns text as is.
// Provider failures are returned as *metrics.MeasureError.
func (e *Engine) WrapText(text string, font fontdesc.Descriptor, maxWidth float64) (string, error) {
	if !validWidth(maxWidth) {
		return text, nil
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w, err := e.LineWidth(line, font)
		if err != nil {
			return "", err
		}
		if w <= maxWidth {
			out = append(out, line)
			continue
		}
		wrapped, err := e.wrapLine(line, font, maxWidth)
		if err != nil {
			return "", err
		}
		out = append(out, wrapped...)
	}
	return strings.Join(out, "\n"), nil
}

func validWidth(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0
}

// lineBuf is the line being filled by wrapLine.
type lineBuf struct {
	text      string
	graphemes []linebreak.Grapheme
	width     float64
}

func (l *lineBuf) empty() bool {
	return l.text == ""
}

func (l *lineBuf) add(tok linebreak.Token, width float64) {
	l.text += tok.Text
	l.graphemes = append(l.graphemes, tok.Graphemes...)
	l.width = width
}

// wrapLine re-flows one over-width line.
func (e *Engine) wrapLine(line string, font fontdesc.Descriptor, maxWidth float64) ([]string, error) {
	tokens := e.tokenizer.Tokenize(line)
	if len(tokens) == 0 {
		return []string{line}, nil
	}

	var (
		lines []string
		cur   lineBuf
	)
	for i := 0; i < len(tokens); {
		tok := tokens[i]

		var testWidth float64
		if tok.IsSingle() {
			cw, err := e.CharWidth(tok.Text, font)
			if err != nil {
				return nil, err
			}
			testWidth = cur.width + cw
		} else {
			w, err := e.LineWidth(cur.text+tok.Text, font)
			if err != nil {
				return nil, err
			}
			testWidth = w
		}

		if tok.IsWhitespace() || testWidth <= maxWidth {
			cur.add(tok, testWidth)
			i++
			continue
		}

		if cur.empty() {
			// The word alone is too wide.
			fragments, err := e.splitWord(tok, font, maxWidth)
			if err != nil {
				return nil, err
			}
			last := fragments[len(fragments)-1]
			for _, f := range fragments[:len(fragments)-1] {
				lines = append(lines, f.text)
			}
			w, err := e.LineWidth(last.text, font)
			if err != nil {
				return nil, err
			}
			cur = lineBuf{text: last.text, graphemes: last.graphemes, width: w}
			i++
			continue
		}

		// Close the line and retry the same token on a fresh one.
		trimmed, err := e.trimLine(cur, font, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, trimmed)
		cur = lineBuf{}
	}

	if !cur.empty() {
		trimmed, err := e.trimLine(cur, font, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, trimmed)
	}
	return lines, nil
}

// fragment is a piece of a split word.
type fragment struct {
	text      string
	graphemes []linebreak.Grapheme
}

// splitWord packs the graphemes of an over-width word greedily into
// fragments no wider than maxWidth. A grapheme wider than maxWidth gets a
// fragment of its own. The word must not contain whitespace.
func (e *Engine) splitWord(word linebreak.Token, font fontdesc.Descriptor, maxWidth float64) ([]fragment, error) {
	if e.debug {
		for _, g := range word.Graphemes {
			if g.Category == script.Whitespace {
				panic(&InvariantError{Op: "split word", Text: word.Text, Reason: "word contains whitespace"})
			}
		}
	}

	var (
		fragments []fragment
		start     int
		width     float64
	)
	for i, g := range word.Graphemes {
		cw, err := e.CharWidth(g.Text, font)
		if err != nil {
			return nil, err
		}
		if i > start && width+cw > maxWidth {
			fragments = append(fragments, newFragment(word.Graphemes[start:i]))
			start, width = i, 0
		}
		width += cw
	}
	return append(fragments, newFragment(word.Graphemes[start:])), nil
}

func newFragment(graphemes []linebreak.Grapheme) fragment {
	var b strings.Builder
	for _, g := range graphemes {
		b.WriteString(g.Text)
	}
	return fragment{text: b.String(), graphemes: graphemes}
}
