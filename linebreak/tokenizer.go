package linebreak

import (
	"sync"

	"github.com/gogpu/textlayout/script"
)

// Token is a maximal run of text between two consecutive break
// opportunities. Concatenating the tokens of a line gives back the
// normalized line.
type Token struct {
	Text      string
	Graphemes []Grapheme
}

// IsSingle reports whether the token is one grapheme.
func (t Token) IsSingle() bool {
	return len(t.Graphemes) == 1
}

// IsWhitespace reports whether the token is a single whitespace grapheme.
func (t Token) IsWhitespace() bool {
	return t.IsSingle() && t.Graphemes[0].Category == script.Whitespace
}

// Tokenizer finds break opportunities in a line. A Tokenizer is immutable
// and safe for concurrent use.
type Tokenizer struct {
	strategy Strategy
	rules    *ruleSet
}

var (
	simpleSet = mustCompile(simpleRules)

	// advancedSet compiles the advanced table once per process. A failure is
	// logged here, so it is reported at most once.
	advancedSet = sync.OnceValues(func() (*ruleSet, error) {
		rs, err := compileRules(advancedRules)
		if err != nil {
			Logger().Warn("linebreak: advanced rules unavailable, using simple strategy", "error", err)
		}
		return rs, err
	})
)

// NewTokenizer returns a tokenizer for the strategy. If the advanced rule
// table cannot be built, the tokenizer uses StrategySimple; Strategy
// reports the strategy actually in effect.
func NewTokenizer(s Strategy) *Tokenizer {
	return newTokenizer(s, advancedSet)
}

func newTokenizer(s Strategy, advanced func() (*ruleSet, error)) *Tokenizer {
	if s == StrategyAdvanced {
		if rs, err := advanced(); err == nil {
			Logger().Debug("linebreak: tokenizer ready", "strategy", StrategyAdvanced)
			return &Tokenizer{strategy: StrategyAdvanced, rules: rs}
		}
	}
	Logger().Debug("linebreak: tokenizer ready", "strategy", StrategySimple)
	return &Tokenizer{strategy: StrategySimple, rules: simpleSet}
}

// Strategy returns the strategy in effect.
func (t *Tokenizer) Strategy() Strategy {
	return t.strategy
}

// Tokenize normalizes line and splits it at every break opportunity.
// line must not contain '\n'; callers split paragraphs first.
func (t *Tokenizer) Tokenize(line string) []Token {
	return t.Split(Graphemes(line))
}

// Split groups graphemes into tokens.
func (t *Tokenizer) Split(graphemes []Grapheme) []Token {
	if len(graphemes) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(graphemes)/2+1)
	start := 0
	for p := 1; p < len(graphemes); p++ {
		if t.rules.allows(graphemes[p-1].Category, graphemes[p].Category) {
			tokens = append(tokens, newToken(graphemes[start:p]))
			start = p
		}
	}
	return append(tokens, newToken(graphemes[start:]))
}

func newToken(graphemes []Grapheme) Token {
	return Token{Text: joinGraphemes(graphemes), Graphemes: graphemes}
}

// TokenStrings returns the text of each token.
func TokenStrings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}
