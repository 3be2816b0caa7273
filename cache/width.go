// Package cache memoizes the widths of single graphemes per font.
//
// A WidthCache maps a font descriptor to a table of grapheme widths.
// Entries are created on first use and stay until the font is cleared;
// fonts are assumed immutable once loaded, so a cached width stays valid
// for the life of the process.
package cache

import (
	"math"

	"github.com/gogpu/textlayout/fontdesc"
	icache "github.com/gogpu/textlayout/internal/cache"
)

// WidthCache is a per-font grapheme width cache.
//
// Keys are the full grapheme text, so multi code point emoji sequences
// sharing a first code point get separate entries. Computations run
// outside any lock; when two goroutines compute the same entry, the last
// write wins, which is harmless because widths are deterministic.
//
// WidthCache is safe for concurrent use.
type WidthCache struct {
	fonts *icache.Map[fontdesc.Descriptor, *icache.Map[string, float64]]
}

// NewWidthCache creates an empty cache.
func NewWidthCache() *WidthCache {
	return &WidthCache{
		fonts: icache.New[fontdesc.Descriptor, *icache.Map[string, float64]](),
	}
}

// partition returns the table for font, creating it when create is set.
func (c *WidthCache) partition(font fontdesc.Descriptor, create bool) *icache.Map[string, float64] {
	if p, ok := c.fonts.Peek(font); ok {
		return p
	}
	if !create {
		return nil
	}
	p, _ := c.fonts.LoadOrStore(font, icache.New[string, float64]())
	return p
}

// Get returns the cached width of grapheme under font.
func (c *WidthCache) Get(font fontdesc.Descriptor, grapheme string) (float64, bool) {
	p := c.partition(font, false)
	if p == nil {
		return 0, false
	}
	return p.Peek(grapheme)
}

// GetOrCompute returns the cached width of grapheme under font, calling
// compute on a miss. A failed computation is returned and not cached.
func (c *WidthCache) GetOrCompute(font fontdesc.Descriptor, grapheme string, compute func() (float64, error)) (float64, error) {
	p := c.partition(font, true)
	if w, ok := p.Load(grapheme); ok {
		return w, nil
	}

	w, err := compute()
	if err != nil {
		return 0, err
	}
	p.Store(grapheme, w)
	return w, nil
}

// Font returns a copy of the cached widths for font.
func (c *WidthCache) Font(font fontdesc.Descriptor) map[string]float64 {
	p := c.partition(font, false)
	if p == nil {
		return map[string]float64{}
	}
	return p.Snapshot()
}

// MinWidth returns the smallest cached width for font, or 0 when nothing
// is cached for it.
func (c *WidthCache) MinWidth(font fontdesc.Descriptor) float64 {
	return c.fold(font, math.Inf(1), math.Min)
}

// MaxWidth returns the largest cached width for font, or 0 when nothing
// is cached for it.
func (c *WidthCache) MaxWidth(font fontdesc.Descriptor) float64 {
	return c.fold(font, math.Inf(-1), math.Max)
}

func (c *WidthCache) fold(font fontdesc.Descriptor, init float64, f func(a, b float64) float64) float64 {
	p := c.partition(font, false)
	if p == nil {
		return 0
	}
	acc, n := init, 0
	p.Range(func(_ string, w float64) bool {
		acc = f(acc, w)
		n++
		return true
	})
	if n == 0 {
		return 0
	}
	return acc
}

// Len returns the number of cached graphemes for font.
func (c *WidthCache) Len(font fontdesc.Descriptor) int {
	p := c.partition(font, false)
	if p == nil {
		return 0
	}
	return p.Len()
}

// Clear drops font and every width cached for it, statistics included.
// Other fonts are untouched.
func (c *WidthCache) Clear(font fontdesc.Descriptor) {
	c.fonts.Delete(font)
}

// ClearAll drops the cached widths of every font.
func (c *WidthCache) ClearAll() {
	c.fonts.Range(func(_ fontdesc.Descriptor, p *icache.Map[string, float64]) bool {
		p.Clear()
		return true
	})
}

// Stats holds cache statistics summed over all fonts.
type Stats struct {
	Fonts   int
	Entries int
	Hits    uint64
	Misses  uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	return icache.Stats{Hits: s.Hits, Misses: s.Misses}.HitRate()
}

// Stats returns the current statistics.
func (c *WidthCache) Stats() Stats {
	var s Stats
	c.fonts.Range(func(_ fontdesc.Descriptor, p *icache.Map[string, float64]) bool {
		ps := p.Stats()
		s.Fonts++
		s.Entries += ps.Len
		s.Hits += ps.Hits
		s.Misses += ps.Misses
		return true
	})
	return s
}
