// Package plot renders decoded images for human inspection.
//
// Plotters are optional collaborators injected by callers at runtime; the
// decoder in package idx never depends on them.
package plot

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/muesli/termenv"

	"github.com/born-ml/mnist/internal/idx"
)

// Backend names accepted by New.
const (
	BackendNone     = "none"
	BackendTerminal = "terminal"
	BackendGnuplot  = "gnuplot"
)

// Backends lists every backend name, BackendNone included.
var Backends = []string{BackendNone, BackendTerminal, BackendGnuplot}

// ErrUnknownBackend is returned by New for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown plot backend")

// Plotter renders one image together with its label.
type Plotter interface {
	Plot(img *idx.Image, label byte) error
}

// New returns the plotter for a backend name. BackendNone yields a nil Plotter.
// Terminal output goes to out using the color profile that out and the
// environment support.
func New(backend string, out io.Writer) (Plotter, error) {
	switch backend {
	case BackendNone:
		return nil, nil
	case BackendTerminal:
		return NewTerminalPlotter(out, termenv.NewOutput(out).EnvColorProfile()), nil
	case BackendGnuplot:
		return &GnuplotPlotter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownBackend, backend, Backends)
	}
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	return slices.Contains(Backends, name)
}

// BottomUp returns the pixels with rows in bottom-to-top order, the layout
// expected by plotting tools whose origin is the lower-left corner.
func BottomUp(img *idx.Image) []byte {
	rows := img.Rows()
	out := make([]byte, 0, img.Len())
	for r := len(rows) - 1; r >= 0; r-- {
		out = append(out, rows[r]...)
	}
	return out
}
