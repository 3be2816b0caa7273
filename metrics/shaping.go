package metrics

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/fontdesc"
)

// Shaping measures text with HarfBuzz shaping from go-text/typesetting, so
// kerning and ligatures affect the width. Only the first registered
// family of a descriptor is used.
//
// Shaping is safe for concurrent use. Parsed fonts are shared; a face and
// a shaper are taken per call.
type Shaping struct {
	mu    sync.RWMutex
	fonts map[string]*font.Font

	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool

	lang language.Language
}

// NewShaping returns a Shaping provider with no fonts registered.
func NewShaping() *Shaping {
	return &Shaping{
		fonts: make(map[string]*font.Font),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}
}

// Register parses data and makes it available under family.
func (s *Shaping) Register(family string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("metrics: failed to parse font %q: %w", family, err)
	}
	s.mu.Lock()
	s.fonts[family] = face.Font
	s.mu.Unlock()
	return nil
}

func (s *Shaping) lookup(desc fontdesc.Descriptor) (*font.Font, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, name := range desc.Families() {
		if f, ok := s.fonts[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// Measure implements Provider.
func (s *Shaping) Measure(text string, desc fontdesc.Descriptor) (float64, error) {
	if text == "" {
		return 0, nil
	}
	f, ok := s.lookup(desc)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, string(desc))
	}
	size, err := desc.ParseSize()
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    runScript(runes),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	var total fixed.Int26_6
	for _, g := range out.Glyphs {
		total += g.Advance
	}
	return fixedToFloat64(total), nil
}

// runScript returns the script of the first rune that has one.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		switch sc := language.LookupScript(r); sc {
		case language.Common, language.Inherited, language.Unknown:
			continue
		default:
			return sc
		}
	}
	return language.Latin
}
