// Package plot renders decoded MNIST images for human inspection.
//
// Plotters are optional; nothing in package idx depends on them.
//
// Example usage:
//
//	p, err := plot.New(plot.BackendTerminal, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = p.Plot(ds.TrainImages[0], ds.TrainLabels[0])
package plot

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/born-ml/mnist/idx"
	"github.com/born-ml/mnist/internal/plot"
)

// Plotter renders one image together with its label.
type Plotter = plot.Plotter

// GnuplotPlotter pipes a script to the gnuplot executable.
type GnuplotPlotter = plot.GnuplotPlotter

// TerminalPlotter draws an image as a grayscale heat map.
type TerminalPlotter = plot.TerminalPlotter

// Backend names.
const (
	BackendNone     = plot.BackendNone
	BackendTerminal = plot.BackendTerminal
	BackendGnuplot  = plot.BackendGnuplot
)

// New returns the plotter for a backend name.
func New(backend string, out io.Writer) (Plotter, error) {
	return plot.New(backend, out)
}

// ValidBackend reports whether name is a known backend.
func ValidBackend(name string) bool {
	return plot.ValidBackend(name)
}

// NewTerminalPlotter returns a heat-map plotter writing to out with the
// given color profile.
func NewTerminalPlotter(out io.Writer, profile termenv.Profile) *TerminalPlotter {
	return plot.NewTerminalPlotter(out, profile)
}

// WriteGnuplotScript writes the gnuplot script for img to w.
func WriteGnuplotScript(w io.Writer, img *idx.Image, label byte) error {
	return plot.WriteGnuplotScript(w, img, label)
}

// BottomUp returns the pixels of img with rows in bottom-to-top order.
func BottomUp(img *idx.Image) []byte {
	return plot.BottomUp(img)
}
