package script

import (
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Other, "Other"},
		{Whitespace, "Whitespace"},
		{Hyphen, "Hyphen"},
		{OpeningPunct, "OpeningPunct"},
		{ClosingPunct, "ClosingPunct"},
		{CurrencySymbol, "CurrencySymbol"},
		{CjkChar, "CjkChar"},
		{CjkOpeningPunct, "CjkOpeningPunct"},
		{CjkClosingPunct, "CjkClosingPunct"},
		{Emoji, "Emoji"},
		{Category(200), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Category
	}{
		{"space", ' ', Whitespace},
		{"tab", '\t', Whitespace},
		{"nbsp", '\u00A0', Whitespace},
		{"ideographic space", '\u3000', Whitespace},
		{"bom", '\uFEFF', Whitespace},
		{"hyphen-minus", '-', Hyphen},
		{"hyphen", '‐', Hyphen},
		{"en dash", '–', Hyphen},
		{"em dash", '\u2014', Hyphen},
		{"minus sign is other", '\u2212', Other},
		{"open paren", '(', OpeningPunct},
		{"less than", '<', OpeningPunct},
		{"close paren", ')', ClosingPunct},
		{"period", '.', ClosingPunct},
		{"slash", '/', ClosingPunct},
		{"ellipsis", '…', ClosingPunct},
		{"fullwidth yen", '￥', CurrencySymbol},
		{"dollar", '$', Other},
		{"han", '中', CjkChar},
		{"hiragana", 'あ', CjkChar},
		{"katakana", 'ア', CjkChar},
		{"hangul", '한', CjkChar},
		{"prolonged sound mark", 'ー', CjkChar},
		{"fullwidth A", 'Ａ', CjkChar},
		{"corner bracket open", '「', CjkOpeningPunct},
		{"fullwidth paren open", '（', CjkOpeningPunct},
		{"corner bracket close", '」', CjkClosingPunct},
		{"ideographic full stop", '。', CjkClosingPunct},
		{"ideographic comma", '、', CjkClosingPunct},
		{"grinning face", 0x1F600, Emoji},
		{"latin a", 'a', Other},
		{"e acute", 'é', Other},
		{"digit", '7', Other},
		{"cyrillic", 'ж', Other},
		{"unassigned", 0x10FFFF, Other},
		{"invalid", -1, Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestClassifyGrapheme(t *testing.T) {
	tests := []struct {
		name string
		g    string
		want Category
	}{
		{"empty", "", Other},
		{"letter", "a", Other},
		{"letter with combining mark", "q\u0301", Other},
		{"flag", "🇫🇷", Emoji},
		{"zwj family", "👨\u200D👩\u200D👧", Emoji},
		{"keycap", "1\uFE0F\u20E3", Emoji},
		{"text presentation heart", "❤\uFE0E", Other},
		{"han", "字", CjkChar},
		{"space", " ", Whitespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyGrapheme(tt.g); got != tt.want {
				t.Errorf("ClassifyGrapheme(%q) = %v, want %v", tt.g, got, tt.want)
			}
		})
	}
}

func TestCategoryPredicates(t *testing.T) {
	if !CjkChar.IsCJK() || !CjkOpeningPunct.IsCJK() || !CjkClosingPunct.IsCJK() {
		t.Error("CJK categories should report IsCJK")
	}
	if CurrencySymbol.IsCJK() || Other.IsCJK() {
		t.Error("non-CJK categories should not report IsCJK")
	}
	if !OpeningPunct.IsOpening() || !CjkOpeningPunct.IsOpening() || ClosingPunct.IsOpening() {
		t.Error("IsOpening mismatch")
	}
	if !ClosingPunct.IsClosing() || !CjkClosingPunct.IsClosing() || OpeningPunct.IsClosing() {
		t.Error("IsClosing mismatch")
	}
}
