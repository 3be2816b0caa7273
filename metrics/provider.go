// Package metrics measures the advance width of text runs.
//
// A Provider returns the distance from the pen position before the first
// glyph to the pen position after the last one, so the widths of
// concatenated runs add up the way text flows on a line. The layout engine
// depends only on the Provider interface; this package also ships four
// backends:
//
//   - Fixed: a fixed advance per rune, deterministic and font independent.
//   - Cell: terminal cells (go-runewidth) times a cell width.
//   - OpenType: glyph advances read with golang.org/x/image/font/sfnt.
//   - Shaping: HarfBuzz shaping with go-text/typesetting.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/textlayout/fontdesc"
)

// Provider measures text rendered with a font.
//
// Implementations must be deterministic per (text, font) and should be
// safe for concurrent use when the engine using them is shared.
type Provider interface {
	Measure(text string, font fontdesc.Descriptor) (float64, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(text string, font fontdesc.Descriptor) (float64, error)

// Measure calls f(text, font).
func (f ProviderFunc) Measure(text string, font fontdesc.Descriptor) (float64, error) {
	return f(text, font)
}

// Sentinel errors for metrics package.
var (
	// ErrInvalidWidth is returned for a width that is NaN, infinite or negative.
	ErrInvalidWidth = errors.New("metrics: invalid width")

	// ErrUnknownFamily is returned when no family of a descriptor is registered.
	ErrUnknownFamily = errors.New("metrics: unknown font family")

	// ErrEmptyFontData is returned when registering empty font data.
	ErrEmptyFontData = errors.New("metrics: empty font data")
)

// Validate returns width, or ErrInvalidWidth when it cannot be used for
// layout.
func Validate(width float64) (float64, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWidth, width)
	}
	return width, nil
}

// MeasureError records a failed measurement.
type MeasureError struct {
	Text string
	Font fontdesc.Descriptor
	Err  error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("metrics: measure %q with %q: %v", e.Text, string(e.Font), e.Err)
}

func (e *MeasureError) Unwrap() error {
	return e.Err
}

// Measure calls p and validates the result. Any failure is returned as a
// *MeasureError.
func Measure(p Provider, text string, font fontdesc.Descriptor) (float64, error) {
	w, err := p.Measure(text, font)
	if err == nil {
		w, err = Validate(w)
	}
	if err != nil {
		var me *MeasureError
		if errors.As(err, &me) {
			return 0, err
		}
		return 0, &MeasureError{Text: text, Font: font, Err: err}
	}
	return w, nil
}
