package textlayout

import (
	"github.com/gogpu/textlayout/cache"
	"github.com/gogpu/textlayout/linebreak"
)

// DefaultTabWidth is the number of spaces a tab expands to in NormalizeText
// and Engine.Normalize.
const DefaultTabWidth = 8

// Option configures an Engine during creation.
//
// Example:
//
//	eng, err := textlayout.New(provider,
//	    textlayout.WithStrategy(linebreak.StrategySimple),
//	    textlayout.WithWidthCache(shared),
//	)
type Option func(*config)

// config holds Engine configuration.
type config struct {
	strategy linebreak.Strategy
	cache    *cache.WidthCache
	debug    bool
	tabWidth int
}

// defaultConfig returns the default engine configuration.
func defaultConfig() config {
	return config{
		strategy: linebreak.StrategyAdvanced,
		cache:    nil, // Created in New
		debug:    debugDefault,
		tabWidth: DefaultTabWidth,
	}
}

// WithStrategy selects the break rules. The default is
// linebreak.StrategyAdvanced; if its rule table cannot be built the
// engine uses linebreak.StrategySimple, as reported by Engine.Strategy.
func WithStrategy(s linebreak.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithWidthCache makes the engine use c instead of a private cache.
// Engines sharing a cache must use equivalent providers, since widths are
// keyed by font and grapheme only. A nil cache is ignored.
func WithWidthCache(wc *cache.WidthCache) Option {
	return func(c *config) {
		if wc != nil {
			c.cache = wc
		}
	}
}

// WithDebugChecks enables internal consistency checks. A failed check
// panics with *InvariantError. Checks are off by default unless the
// program is built with the textlayout_debug tag.
func WithDebugChecks(enabled bool) Option {
	return func(c *config) {
		c.debug = enabled
	}
}

// WithTabWidth sets how many spaces Engine.Normalize expands a tab to.
// Values below 1 leave the default.
func WithTabWidth(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.tabWidth = n
		}
	}
}
