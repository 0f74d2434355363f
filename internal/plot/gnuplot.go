package plot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/born-ml/mnist/internal/idx"
)

// GnuplotPlotter pipes a script to the gnuplot executable.
type GnuplotPlotter struct {
	Path   string    // Executable; "gnuplot" when empty
	Args   []string  // Arguments; "-persist" when nil
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}

// Plot renders img in a gnuplot window titled with its label.
func (g *GnuplotPlotter) Plot(img *idx.Image, label byte) error {
	var script bytes.Buffer
	if err := WriteGnuplotScript(&script, img, label); err != nil {
		return err
	}

	path := g.Path
	if path == "" {
		path = "gnuplot"
	}
	args := g.Args
	if args == nil {
		args = []string{"-persist"}
	}

	//nolint:gosec // G204: executable is configured by the caller
	cmd := exec.Command(path, args...)
	cmd.Stdin = &script
	cmd.Stdout = orDefault(g.Stdout, os.Stdout)
	cmd.Stderr = orDefault(g.Stderr, os.Stderr)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// WriteGnuplotScript writes a self-contained gnuplot script drawing img as a
// square grayscale image. Inline matrix data starts with the bottom row.
func WriteGnuplotScript(w io.Writer, img *idx.Image, label byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "set title \"MNIST Label: %d\"\n", label)
	fmt.Fprintf(bw, "set size ratio 1\n")
	fmt.Fprintf(bw, "set xrange [0:%d]\n", img.Width())
	fmt.Fprintf(bw, "set yrange [0:%d]\n", img.Height())
	fmt.Fprintf(bw, "set palette gray\n")
	fmt.Fprintf(bw, "unset key\n")
	fmt.Fprintf(bw, "plot '-' matrix using ($1+0.5):($2+0.5):3 with image\n")

	pixels := BottomUp(img)
	for r := 0; r < img.Height(); r++ {
		row := pixels[r*img.Width() : (r+1)*img.Width()]
		for c, p := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(p)))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("e\ne\n")
	return bw.Flush()
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
