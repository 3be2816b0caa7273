package metrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/fontdesc"
)

// OpenType sums glyph advances read from registered OpenType or TrueType
// fonts. Each rune is looked up along the descriptor's family chain; the
// first family with a glyph for it wins, and runes no family covers use the
// primary family's missing-glyph advance. Advances are unhinted, so widths
// scale linearly with size.
//
// OpenType is safe for concurrent use.
type OpenType struct {
	mu    sync.RWMutex
	fonts map[string]*sfnt.Font

	// bufPool holds sfnt.Buffers; a Buffer must not be shared between
	// concurrent calls.
	bufPool sync.Pool
}

// NewOpenType returns an OpenType provider with no fonts registered.
func NewOpenType() *OpenType {
	return &OpenType{
		fonts: make(map[string]*sfnt.Font),
		bufPool: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
}

// Register parses data and makes it available under family. Registering a
// family again replaces it.
func (o *OpenType) Register(family string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("metrics: failed to parse font %q: %w", family, err)
	}
	o.mu.Lock()
	o.fonts[family] = f
	o.mu.Unlock()
	return nil
}

// Families returns the number of registered families.
func (o *OpenType) Families() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.fonts)
}

// chain returns the registered fonts of the descriptor, in fallback order.
func (o *OpenType) chain(desc fontdesc.Descriptor) []*sfnt.Font {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var fonts []*sfnt.Font
	for _, name := range desc.Families() {
		if f, ok := o.fonts[name]; ok {
			fonts = append(fonts, f)
		}
	}
	return fonts
}

// Measure implements Provider.
func (o *OpenType) Measure(text string, desc fontdesc.Descriptor) (float64, error) {
	if text == "" {
		return 0, nil
	}
	fonts := o.chain(desc)
	if len(fonts) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, string(desc))
	}
	size, err := desc.ParseSize()
	if err != nil {
		return 0, err
	}
	ppem := fixed.Int26_6(size * 64)

	buf := o.bufPool.Get().(*sfnt.Buffer)
	defer o.bufPool.Put(buf)

	var total fixed.Int26_6
	for _, r := range text {
		f, idx, err := lookupGlyph(buf, fonts, r)
		if err != nil {
			return 0, fmt.Errorf("metrics: glyph index for %q: %w", r, err)
		}
		adv, err := f.GlyphAdvance(buf, idx, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("metrics: glyph advance for %q: %w", r, err)
		}
		total += adv
	}
	return fixedToFloat64(total), nil
}

// lookupGlyph finds r along the fallback chain. Index 0 is the missing
// glyph, so a miss falls back to the primary font's .notdef.
func lookupGlyph(buf *sfnt.Buffer, fonts []*sfnt.Font, r rune) (*sfnt.Font, sfnt.GlyphIndex, error) {
	for _, f := range fonts {
		idx, err := f.GlyphIndex(buf, r)
		if err != nil {
			return nil, 0, err
		}
		if idx != 0 {
			return f, idx, nil
		}
	}
	return fonts[0], 0, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
