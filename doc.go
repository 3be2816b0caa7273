// Package textlayout measures text and wraps it to a pixel width.
//
// # Overview
//
// An Engine combines three parts: a tokenizer that finds legal break
// points (whitespace, hyphens, CJK ideographs and punctuation, emoji
// sequences), a metrics.Provider that returns advance widths, and a
// per-font width cache for single graphemes. WrapText re-flows every
// line of its input greedily so that each output line fits the width.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/textlayout"
//		"github.com/gogpu/textlayout/fontdesc"
//		"github.com/gogpu/textlayout/metrics"
//	)
//
//	eng, err := textlayout.New(metrics.NewFixed(10))
//	if err != nil {
//		return err
//	}
//	font := fontdesc.New(20, "Virgil")
//	wrapped, err := eng.WrapText("Hello world", font, 50)
//	// wrapped == "Hello\nworld"
//
// # Wrapping
//
// Original newlines are kept and each line is wrapped on its own. A line
// that already fits is returned byte for byte. A word wider than the
// width is split between graphemes; an emoji sequence is never split, so
// an emoji wider than the width sits alone on its line. Trailing
// whitespace is trimmed only as far as needed to fit. Wrapping its own
// output again changes nothing.
//
// A width that is NaN, infinite, zero or negative leaves the text as is.
//
// # Measuring
//
// MeasureText returns the widest line and a height of
// size × lineHeight × lines. Provider failures are never turned into a
// zero width; they are returned as *metrics.MeasureError.
//
// # Concurrency
//
// An Engine is safe for concurrent use when its provider is. The width
// cache is the only shared mutable state and can be shared between
// engines with WithWidthCache.
package textlayout
