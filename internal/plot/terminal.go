package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/born-ml/mnist/internal/idx"
)

// cell is the text drawn for one pixel; two columns keep pixels square.
const cell = "  "

// TerminalPlotter draws an image as a grayscale heat map of colored cells.
type TerminalPlotter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	cells    [256]string
	title    lipgloss.Style
}

// NewTerminalPlotter returns a plotter writing to out with the given color
// profile. termenv.Ascii produces plain text without escape sequences.
func NewTerminalPlotter(out io.Writer, profile termenv.Profile) *TerminalPlotter {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(profile)

	t := &TerminalPlotter{
		out:      out,
		renderer: renderer,
		title:    renderer.NewStyle().Bold(true),
	}
	for v := range t.cells {
		color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
		t.cells[v] = renderer.NewStyle().Background(color).Render(cell)
	}
	return t
}

// Plot writes a title line followed by one text line per pixel row.
func (t *TerminalPlotter) Plot(img *idx.Image, label byte) error {
	var sb strings.Builder
	sb.WriteString(t.title.Render(fmt.Sprintf("Label: %d", label)))
	sb.WriteByte('\n')
	for _, row := range img.Rows() {
		for _, p := range row {
			sb.WriteString(t.cells[p])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(t.out, sb.String())
	return err
}
