// Command wraptext wraps text to a pixel width and prints the result.
//
// Text is read from the arguments, or from stdin when there are none:
//
//	echo "The quick brown fox" | wraptext -width 120 -backend opentype
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/emoji"
	"github.com/gogpu/textlayout/fontdesc"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/metrics"
)

func main() {
	var (
		width      = flag.Float64("width", 200, "maximum line width in pixels")
		size       = flag.Float64("size", 16, "font size in pixels")
		family     = flag.String("family", "Go", "font family (Go or Go Mono for the built-in fonts)")
		backend    = flag.String("backend", "opentype", "metrics backend: opentype, shaping, cell or fixed")
		strategy   = flag.String("strategy", "advanced", "break strategy: advanced or simple")
		lineHeight = flag.Float64("line-height", 1.25, "line height multiplier")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := linebreak.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	p, err := newProvider(*backend)
	if err != nil {
		log.Fatal(err)
	}
	eng, err := textlayout.New(p, textlayout.WithStrategy(s))
	if err != nil {
		log.Fatal(err)
	}

	text, err := readInput()
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	text = eng.Normalize(text)
	if *verbose {
		logTokens(text, s)
	}

	font := fontdesc.New(*size, *family, "Go")
	wrapped, err := eng.WrapText(text, font, *width)
	if err != nil {
		log.Fatalf("Failed to wrap: %v", err)
	}
	m, err := eng.MeasureText(wrapped, font, *lineHeight)
	if err != nil {
		log.Fatalf("Failed to measure: %v", err)
	}

	fmt.Println(wrapped)
	log.Printf("%s, %s strategy: %.1fx%.1f px, direction %s, char width %.1f..%.1f\n",
		font, eng.Strategy(), m.Width, m.Height, textlayout.DetectDirection(wrapped),
		eng.MinCharWidth(font), eng.MaxCharWidth(font))
}

// logTokens logs the break tokens and emoji sequences of every line.
func logTokens(text string, s linebreak.Strategy) {
	tok := linebreak.NewTokenizer(s)
	for i, line := range strings.Split(text, "\n") {
		seqs := emoji.ParseString(line)
		types := make([]string, len(seqs))
		for j, seq := range seqs {
			types[j] = seq.Type.String()
		}
		textlayout.Logger().Debug("wraptext: line tokens", "line", i,
			"tokens", linebreak.TokenStrings(tok.Tokenize(line)), "emoji", types)
	}
}

func newProvider(name string) (metrics.Provider, error) {
	switch name {
	case "fixed":
		return metrics.NewFixed(8), nil
	case "cell":
		return metrics.NewCell(0, false), nil
	case "opentype":
		ot := metrics.NewOpenType()
		if err := ot.Register("Go", goregular.TTF); err != nil {
			return nil, err
		}
		if err := ot.Register("Go Mono", gomono.TTF); err != nil {
			return nil, err
		}
		return ot, nil
	case "shaping":
		sh := metrics.NewShaping()
		if err := sh.Register("Go", goregular.TTF); err != nil {
			return nil, err
		}
		if err := sh.Register("Go Mono", gomono.TTF); err != nil {
			return nil, err
		}
		return sh, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func readInput() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
