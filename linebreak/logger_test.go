package linebreak

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	if Logger() != slog.Default() {
		t.Error("Logger() did not return the logger set via SetLogger")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should discard every level")
	}
}
