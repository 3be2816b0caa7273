package textlayout

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/metrics"
)

var benchText = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20) +
	"\n" + strings.Repeat("日本語のテキスト、「引用」と（括弧）。", 10) +
	"\n" + strings.Repeat("emoji \U0001F469\u200D\U0001F4BB and \U0001F1EF\U0001F1F5 ", 10)

func BenchmarkWrapTextFixed(b *testing.B) {
	eng := newFixedEngine(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.WrapText(benchText, testFont, 300); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrapTextOpenType(b *testing.B) {
	ot := metrics.NewOpenType()
	if err := ot.Register("Go", goregular.TTF); err != nil {
		b.Fatal(err)
	}
	eng, err := New(ot)
	if err != nil {
		b.Fatal(err)
	}
	font := fontdesc.New(16, "Go")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.WrapText(benchText, font, 300); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrapTextFastPath(b *testing.B) {
	eng := newFixedEngine(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.WrapText(benchText, testFont, 1e6); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMeasureText(b *testing.B) {
	eng := newFixedEngine(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.MeasureText(benchText, testFont, 1.25); err != nil {
			b.Fatal(err)
		}
	}
}
