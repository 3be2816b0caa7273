package textlayout

import (
	"errors"
	"fmt"
)

// Sentinel errors for textlayout package.
var (
	// ErrNilProvider is returned by New when no metrics provider is given.
	ErrNilProvider = errors.New("textlayout: nil metrics provider")
)

// InvariantError reports a broken internal invariant. It is only raised,
// as a panic value, when debug checks are enabled.
type InvariantError struct {
	Op     string
	Text   string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("textlayout: %s: %s in %q", e.Op, e.Reason, e.Text)
}
