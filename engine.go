package textlayout

import (
	"github.com/gogpu/textlayout/cache"
	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/metrics"
)

// Engine measures and wraps text with one metrics provider.
//
// Engine is safe for concurrent use when its provider is.
type Engine struct {
	provider  metrics.Provider
	cache     *cache.WidthCache
	tokenizer *linebreak.Tokenizer
	debug     bool
	tabWidth  int
}

// New creates an engine measuring with p.
func New(p metrics.Provider, opts ...Option) (*Engine, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = cache.NewWidthCache()
	}

	return &Engine{
		provider:  p,
		cache:     cfg.cache,
		tokenizer: linebreak.NewTokenizer(cfg.strategy),
		debug:     cfg.debug,
		tabWidth:  cfg.tabWidth,
	}, nil
}

// Strategy returns the break strategy in effect.
func (e *Engine) Strategy() linebreak.Strategy {
	return e.tokenizer.Strategy()
}

// Cache returns the engine's width cache.
func (e *Engine) Cache() *cache.WidthCache {
	return e.cache
}

// LineWidth measures line as one run. line should not contain '\n'.
func (e *Engine) LineWidth(line string, font fontdesc.Descriptor) (float64, error) {
	return metrics.Measure(e.provider, line, font)
}

// CharWidth returns the width of a single grapheme, measuring it on the
// first request and answering from the cache afterwards.
func (e *Engine) CharWidth(grapheme string, font fontdesc.Descriptor) (float64, error) {
	return e.cache.GetOrCompute(font, grapheme, func() (float64, error) {
		return metrics.Measure(e.provider, grapheme, font)
	})
}

// MinCharWidth returns the narrowest grapheme width cached for font, or 0
// when none is cached yet.
func (e *Engine) MinCharWidth(font fontdesc.Descriptor) float64 {
	return e.cache.MinWidth(font)
}

// MaxCharWidth returns the widest grapheme width cached for font, or 0
// when none is cached yet.
func (e *Engine) MaxCharWidth(font fontdesc.Descriptor) float64 {
	return e.cache.MaxWidth(font)
}

// ClearCache drops the cached widths for font. Call it when the font
// behind a descriptor changes.
func (e *Engine) ClearCache(font fontdesc.Descriptor) {
	n := e.cache.Len(font)
	e.cache.Clear(font)
	Logger().Debug("textlayout: width cache cleared", "font", string(font), "entries", n)
}

// Normalize is NormalizeText with the engine's tab width.
func (e *Engine) Normalize(text string) string {
	return NormalizeText(text, e.tabWidth)
}
