package metrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/textlayout/fontdesc"
)

// Cell measures text as a terminal would lay it out: each grapheme takes
// zero, one or two cells, and every cell has the same width.
type Cell struct {
	// CellWidth is the width of one cell in pixels. When zero, half the
	// descriptor's size is used, and a descriptor without a size is an
	// error.
	CellWidth float64

	cond *runewidth.Condition
}

// NewCell returns a Cell provider. With eastAsian set, ambiguous-width
// characters take two cells.
func NewCell(cellWidth float64, eastAsian bool) *Cell {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Cell{CellWidth: cellWidth, cond: cond}
}

// Cells returns the number of cells text occupies.
func (c *Cell) Cells(text string) int {
	if c.cond == nil {
		return runewidth.StringWidth(text)
	}
	return c.cond.StringWidth(text)
}

// Measure implements Provider.
func (c *Cell) Measure(text string, font fontdesc.Descriptor) (float64, error) {
	w := c.CellWidth
	if w == 0 {
		size, err := font.ParseSize()
		if err != nil {
			return 0, err
		}
		w = size / 2
	}
	return float64(c.Cells(text)) * w, nil
}
