package linebreak

import (
	"errors"
	"fmt"

	"github.com/gogpu/textlayout/script"
)

// numCategories bounds the script.Category values a rule may reference.
const numCategories = int(script.Emoji) + 1

// categorySet is a bit set of script categories.
type categorySet uint16

func setOf(categories ...script.Category) categorySet {
	var s categorySet
	for _, c := range categories {
		s |= 1 << c
	}
	return s
}

func (s categorySet) has(c script.Category) bool {
	return s&(1<<c) != 0
}

// valid reports whether s only references known categories.
func (s categorySet) valid() bool {
	return s>>numCategories == 0
}

// rule is one break predicate over the categories on either side of a
// candidate position: prev is the grapheme before it, next the one after.
// An empty positive set matches any category.
type rule struct {
	name string

	prev    categorySet // prev must be in this set
	next    categorySet // next must be in this set
	notPrev categorySet // prev must not be in this set
	notNext categorySet // next must not be in this set
}

func (r *rule) matches(prev, next script.Category) bool {
	if r.prev != 0 && !r.prev.has(prev) {
		return false
	}
	if r.next != 0 && !r.next.has(next) {
		return false
	}
	return !r.notPrev.has(prev) && !r.notNext.has(next)
}

var (
	whitespace   = setOf(script.Whitespace)
	hyphen       = setOf(script.Hyphen)
	opening      = setOf(script.OpeningPunct)
	closing      = setOf(script.ClosingPunct)
	cjkChar      = setOf(script.CjkChar)
	cjkOpening   = setOf(script.CjkOpeningPunct)
	cjkClosing   = setOf(script.CjkClosingPunct)
	currency     = setOf(script.CurrencySymbol)
	emojiSeq     = setOf(script.Emoji)
	anyOpening   = opening | cjkOpening
	cjkAnyChar   = cjkChar | cjkOpening | cjkClosing
	wsOrHyphen   = whitespace | hyphen
	afterCJKStop = hyphen | closing | cjkClosing
)

// emojiRules keep every emoji sequence in a token of its own.
var emojiRules = []rule{
	{name: "break before emoji", next: emojiSeq},
	{name: "break after emoji", prev: emojiSeq},
}

// advancedRules is evaluated as a disjunction: a break is allowed where
// any rule matches.
var advancedRules = append(append([]rule(nil), emojiRules...),
	rule{name: "break before whitespace", next: whitespace},
	rule{name: "break after whitespace or hyphen", prev: wsOrHyphen},
	rule{
		name:    "break before CJK char or currency unless after an opener",
		next:    cjkChar | currency,
		notPrev: anyOpening,
	},
	rule{
		name:    "break after CJK char unless before hyphen or closer",
		prev:    cjkChar,
		notNext: afterCJKStop,
	},
	rule{
		name:    "break before CJK opening run unless after common opener",
		next:    cjkOpening,
		notPrev: cjkOpening | opening,
	},
	rule{
		name:    "break after CJK closing run unless before common closer",
		prev:    cjkClosing,
		notNext: cjkClosing | closing,
	},
	rule{
		name:    "break after common closing run before an opener",
		prev:    closing,
		next:    opening,
		notNext: closing,
	},
)

// simpleRules break around whitespace and CJK, and after hyphens.
var simpleRules = append(append([]rule(nil), emojiRules...),
	rule{name: "break before whitespace", next: whitespace},
	rule{name: "break after whitespace or hyphen", prev: wsOrHyphen},
	rule{name: "break before CJK", next: cjkAnyChar},
	rule{name: "break after CJK", prev: cjkAnyChar},
)

// ruleSet is a compiled rule table: breakAt[prev][next] is precomputed for
// every category pair.
type ruleSet struct {
	breakAt [numCategories][numCategories]bool
}

// errNoRules is returned when compiling an empty table.
var errNoRules = errors.New("linebreak: empty rule table")

// compileRules validates rules and builds the pair table.
func compileRules(rules []rule) (*ruleSet, error) {
	if len(rules) == 0 {
		return nil, errNoRules
	}
	for i := range rules {
		if err := validateRule(&rules[i]); err != nil {
			return nil, err
		}
	}

	rs := &ruleSet{}
	for prev := 0; prev < numCategories; prev++ {
		for next := 0; next < numCategories; next++ {
			for i := range rules {
				if rules[i].matches(script.Category(prev), script.Category(next)) {
					rs.breakAt[prev][next] = true
					break
				}
			}
		}
	}
	return rs, nil
}

// validateRule rejects rules that reference unknown categories, match
// every position, or can never match.
func validateRule(r *rule) error {
	for _, s := range []categorySet{r.prev, r.next, r.notPrev, r.notNext} {
		if !s.valid() {
			return fmt.Errorf("linebreak: rule %q references an unknown category", r.name)
		}
	}
	if r.prev == 0 && r.next == 0 {
		return fmt.Errorf("linebreak: rule %q is unanchored", r.name)
	}
	if r.prev != 0 && r.prev&^r.notPrev == 0 {
		return fmt.Errorf("linebreak: rule %q can never match before the break", r.name)
	}
	if r.next != 0 && r.next&^r.notNext == 0 {
		return fmt.Errorf("linebreak: rule %q can never match after the break", r.name)
	}
	return nil
}

// mustCompile compiles a built-in table that is known to be valid.
func mustCompile(rules []rule) *ruleSet {
	rs, err := compileRules(rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// allows reports whether a break is allowed between prev and next.
func (rs *ruleSet) allows(prev, next script.Category) bool {
	if int(prev) >= numCategories || int(next) >= numCategories {
		return false
	}
	return rs.breakAt[prev][next]
}
