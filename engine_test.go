package textlayout

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout/cache"
	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/metrics"
)

// countingProvider counts measurements per text.
type countingProvider struct {
	mu    sync.Mutex
	calls map[string]int
	inner metrics.Provider
}

func newCountingProvider(inner metrics.Provider) *countingProvider {
	return &countingProvider{calls: make(map[string]int), inner: inner}
}

func (p *countingProvider) Measure(text string, font fontdesc.Descriptor) (float64, error) {
	p.mu.Lock()
	p.calls[text]++
	p.mu.Unlock()
	return p.inner.Measure(text, font)
}

func (p *countingProvider) count(text string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[text]
}

func TestNewNilProvider(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilProvider) {
		t.Errorf("New(nil) error = %v, want ErrNilProvider", err)
	}
}

func TestNewDefaults(t *testing.T) {
	eng := newFixedEngine(t)
	if eng.Strategy() != linebreak.StrategyAdvanced {
		t.Errorf("Strategy() = %v, want Advanced", eng.Strategy())
	}
	if eng.Cache() == nil {
		t.Error("Cache() = nil, want a private cache")
	}
	if eng.debug != debugDefault {
		t.Errorf("debug = %v, want %v", eng.debug, debugDefault)
	}
}

func TestMeasureText(t *testing.T) {
	eng := newFixedEngine(t)
	font := fontdesc.New(20, "Test")

	tests := []struct {
		name       string
		text       string
		lineHeight float64
		want       Metrics
	}{
		{"single line", "Hello", 1.25, Metrics{Width: 50, Height: 25}},
		{"widest line wins", "Hi\nHello\nYo", 1, Metrics{Width: 50, Height: 60}},
		{"empty text is one space", "", 1, Metrics{Width: 10, Height: 20}},
		{"empty lines count", "\n\n", 1.5, Metrics{Width: 10, Height: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.MeasureText(tt.text, font, tt.lineHeight)
			if err != nil {
				t.Fatalf("MeasureText() = %v", err)
			}
			if got != tt.want {
				t.Errorf("MeasureText(%q, %v) = %+v, want %+v", tt.text, tt.lineHeight, got, tt.want)
			}
		})
	}
}

func TestMeasureTextError(t *testing.T) {
	p := metrics.ProviderFunc(func(string, fontdesc.Descriptor) (float64, error) {
		return math.Inf(1), nil
	})
	eng, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := eng.MeasureText("a", testFont, 1); !errors.Is(err, metrics.ErrInvalidWidth) {
		t.Errorf("MeasureText() error = %v, want ErrInvalidWidth", err)
	}
}

func TestLineHeightPx(t *testing.T) {
	tests := []struct {
		font       fontdesc.Descriptor
		lineHeight float64
		want       float64
	}{
		{"20px Virgil", 1.25, 25},
		{"16px Go, Emoji", 1.5, 24},
		{"Virgil", 1.25, 0},
	}
	for _, tt := range tests {
		if got := LineHeightPx(tt.font, tt.lineHeight); got != tt.want {
			t.Errorf("LineHeightPx(%q, %v) = %v, want %v", tt.font, tt.lineHeight, got, tt.want)
		}
	}
}

func TestCharWidthIsCached(t *testing.T) {
	p := newCountingProvider(metrics.NewFixed(10))
	eng, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	text := strings.Repeat("漢字", 20)
	if _, err := eng.WrapText(text, testFont, 50); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.WrapText(text, testFont, 70); err != nil {
		t.Fatal(err)
	}
	for _, g := range []string{"漢", "字"} {
		if n := p.count(g); n != 1 {
			t.Errorf("provider measured %q %d times, want 1", g, n)
		}
	}

	if n := eng.Cache().Len(testFont); n != 2 {
		t.Errorf("cache has %d entries, want 2", n)
	}
	if eng.MinCharWidth(testFont) != 10 || eng.MaxCharWidth(testFont) != 10 {
		t.Errorf("Min/MaxCharWidth = %v/%v, want 10/10", eng.MinCharWidth(testFont), eng.MaxCharWidth(testFont))
	}
}

func TestMinMaxCharWidthEmpty(t *testing.T) {
	eng := newFixedEngine(t)
	if eng.MinCharWidth(testFont) != 0 || eng.MaxCharWidth(testFont) != 0 {
		t.Error("Min/MaxCharWidth before any measurement should be 0")
	}
}

func TestClearCache(t *testing.T) {
	eng := newFixedEngine(t)
	other := fontdesc.New(30, "Other")
	for _, f := range []fontdesc.Descriptor{testFont, other} {
		if _, err := eng.CharWidth("a", f); err != nil {
			t.Fatal(err)
		}
	}

	eng.ClearCache(testFont)
	if eng.Cache().Len(testFont) != 0 {
		t.Error("ClearCache did not clear the font")
	}
	if eng.Cache().Len(other) != 1 {
		t.Error("ClearCache cleared another font")
	}
}

func TestSharedWidthCache(t *testing.T) {
	shared := cache.NewWidthCache()
	a := newFixedEngine(t, WithWidthCache(shared))
	b := newFixedEngine(t, WithWidthCache(shared), WithStrategy(linebreak.StrategySimple))

	if _, err := a.CharWidth("x", testFont); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Cache().Get(testFont, "x"); !ok {
		t.Error("engines with WithWidthCache should share entries")
	}
	if a.Cache() != b.Cache() {
		t.Error("Cache() should return the shared cache")
	}
}

func TestEngineOpenType(t *testing.T) {
	ot := metrics.NewOpenType()
	if err := ot.Register("Go", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	eng, err := New(ot)
	if err != nil {
		t.Fatal(err)
	}
	font := fontdesc.New(20, "Go")

	text := "The quick brown fox jumps over the lazy dog"
	maxWidth, err := eng.LineWidth("The quick brown", font)
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err := eng.WrapText(text, font, maxWidth)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(wrapped, "\n")
	if lines[0] != "The quick brown" {
		t.Errorf("first line = %q, want %q", lines[0], "The quick brown")
	}
	for _, line := range lines {
		w, err := eng.LineWidth(line, font)
		if err != nil {
			t.Fatal(err)
		}
		if w > maxWidth {
			t.Errorf("line %q is %v wide, max %v", line, w, maxWidth)
		}
	}
}

func TestEngineDescriptorWithoutSize(t *testing.T) {
	ot := metrics.NewOpenType()
	if err := ot.Register("Go", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	eng, err := New(ot)
	if err != nil {
		t.Fatal(err)
	}
	_, err = eng.WrapText("hello world", fontdesc.Descriptor("Go"), 20)
	var me *metrics.MeasureError
	if !errors.As(err, &me) || !errors.Is(err, fontdesc.ErrNoSize) {
		t.Fatalf("WrapText() error = %v, want *metrics.MeasureError wrapping ErrNoSize", err)
	}
}

func TestEngineConcurrent(t *testing.T) {
	eng := newFixedEngine(t)
	text := "The quick brown fox 中文字 \U0001F44B\U0001F3FD jumps"
	want := mustWrap(t, eng, text, 60)
	eng.ClearCache(testFont)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				got, err := eng.WrapText(text, testFont, 60)
				if err != nil || got != want {
					t.Errorf("concurrent WrapText() = %q, %v, want %q", got, err, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
