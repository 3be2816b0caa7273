// Package linebreak splits a single line of text into tokens at every legal
// line-break opportunity.
//
// Two rule sets are available:
//
//   - StrategySimple breaks around whitespace, after hyphens and around
//     every CJK character.
//   - StrategyAdvanced applies the CJK-aware rules: no break after opening
//     or before closing punctuation, runs of CJK punctuation stay attached to
//     their neighbours, and closing punctuation followed by an opener splits.
//
// In both strategies an emoji sequence is one atomic token with a break
// before and after it. Text is normalized to NFC before classification.
//
// Example:
//
//	tok := linebreak.NewTokenizer(linebreak.StrategyAdvanced)
//	for _, t := range tok.Tokenize("Hello 世界") {
//	    fmt.Printf("%q\n", t.Text) // "Hello", " ", "世", "界"
//	}
package linebreak

import (
	"fmt"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Strategy selects the rule set used to find break opportunities.
type Strategy uint8

const (
	// StrategySimple breaks around whitespace, after hyphens and around each
	// CJK character. It is the zero value, used when a caller does not choose.
	StrategySimple Strategy = iota

	// StrategyAdvanced applies the full category-pair rules.
	StrategyAdvanced
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySimple:
		return "Simple"
	case StrategyAdvanced:
		return "Advanced"
	default:
		return unknownStr
	}
}

// ParseStrategy converts a name ("simple" or "advanced", case-insensitive)
// to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple":
		return StrategySimple, nil
	case "advanced":
		return StrategyAdvanced, nil
	default:
		return StrategySimple, fmt.Errorf("linebreak: unknown strategy %q", name)
	}
}
