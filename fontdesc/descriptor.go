// Package fontdesc builds and inspects font descriptors.
//
// A descriptor is the string a host uses to select a font for measuring,
// in the form "{size}px {family}[, fallback, ...]". The layout engine
// treats it as an opaque cache key and only reads back the leading size.
package fontdesc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSize is returned by ParseSize when the descriptor does not start
// with a "{number}px" size.
var ErrNoSize = errors.New("fontdesc: descriptor has no pixel size")

// Descriptor identifies a family, its fallback chain and a size.
// Descriptors are comparable and can be used as map keys.
type Descriptor string

// New returns the descriptor for sizePx and the family chain.
func New(sizePx float64, family string, fallbacks ...string) Descriptor {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(sizePx, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(quote(family))
	for _, f := range fallbacks {
		b.WriteString(", ")
		b.WriteString(quote(f))
	}
	return Descriptor(b.String())
}

// quote wraps names containing a comma, so Families can split them back.
func quote(name string) string {
	if strings.ContainsRune(name, ',') {
		return `"` + name + `"`
	}
	return name
}

// String returns the descriptor text.
func (d Descriptor) String() string {
	return string(d)
}

// Size returns the leading pixel size, or 0 when it cannot be parsed.
func (d Descriptor) Size() float64 {
	size, err := d.ParseSize()
	if err != nil {
		return 0
	}
	return size
}

// ParseSize parses the leading float of the descriptor. Like a lenient
// float parse, it reads the longest numeric prefix and ignores the rest.
func (d Descriptor) ParseSize() (float64, error) {
	s := strings.TrimLeft(string(d), " \t")
	end := numericPrefix(s)
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoSize, string(d))
	}
	size, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("fontdesc: parse size of %q: %w", string(d), err)
	}
	return size, nil
}

// numericPrefix returns the length of the decimal number at the start of s.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}

// Families returns the family chain, primary first, with quotes removed.
// It returns nil when the descriptor names no family.
func (d Descriptor) Families() []string {
	s := strings.TrimSpace(string(d))
	if end := numericPrefix(s); end > 0 {
		s = strings.TrimPrefix(s[end:], "px")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var families []string
	var cur strings.Builder
	inQuote := byte(0)
	flush := func() {
		if name := strings.TrimSpace(cur.String()); name != "" {
			families = append(families, name)
		}
		cur.Reset()
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote != 0 && c == inQuote:
			inQuote = 0
		case inQuote == 0 && (c == '"' || c == '\''):
			inQuote = c
		case inQuote == 0 && c == ',':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return families
}

// Family returns the primary family, or "" when there is none.
func (d Descriptor) Family() string {
	if f := d.Families(); len(f) > 0 {
		return f[0]
	}
	return ""
}
