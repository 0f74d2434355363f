package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mnist/internal/idx"
)

// newImage builds a w x h image whose pixels equal the given bytes.
func newImage(t *testing.T, w, h int, pixels []byte) *idx.Image {
	t.Helper()
	values := make([]float64, len(pixels))
	for i, p := range pixels {
		values[i] = float64(p) / 255.0
	}
	img, err := idx.NewImageFromFloat64(w, h, values)
	require.NoError(t, err)
	require.Equal(t, pixels, img.Bytes())
	return img
}

func TestBottomUp(t *testing.T) {
	img := newImage(t, 2, 3, []byte{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []byte{5, 6, 3, 4, 1, 2}, BottomUp(img))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, img.Bytes(), "source must be untouched")
}

func TestNew(t *testing.T) {
	p, err := New(BackendNone, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = New(BackendTerminal, &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &TerminalPlotter{}, p)

	p, err = New(BackendGnuplot, nil)
	require.NoError(t, err)
	assert.IsType(t, &GnuplotPlotter{}, p)

	_, err = New("svg", nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)

	assert.True(t, ValidBackend("gnuplot"))
	assert.False(t, ValidBackend("svg"))
}

func TestTerminalPlotter_Ascii(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPlotter(&buf, termenv.Ascii)

	require.NoError(t, p.Plot(newImage(t, 2, 2, []byte{0, 255, 128, 64}), 7))
	assert.Equal(t, "Label: 7\n    \n    \n", buf.String())
}

func TestTerminalPlotter_Color(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPlotter(&buf, termenv.TrueColor)

	require.NoError(t, p.Plot(newImage(t, 3, 2, []byte{0, 10, 20, 30, 40, 50}), 3))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestWriteGnuplotScript(t *testing.T) {
	img := newImage(t, 2, 3, []byte{1, 2, 3, 4, 5, 6})

	var buf bytes.Buffer
	require.NoError(t, WriteGnuplotScript(&buf, img, 9))
	script := buf.String()

	assert.Contains(t, script, `set title "MNIST Label: 9"`)
	assert.Contains(t, script, "set xrange [0:2]\n")
	assert.Contains(t, script, "set yrange [0:3]\n")
	assert.True(t, strings.HasSuffix(script, "matrix using ($1+0.5):($2+0.5):3 with image\n5 6\n3 4\n1 2\ne\ne\n"), script)
}

func TestGnuplotPlotter_Plot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the plotting executable")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "fake-gnuplot")
	out := filepath.Join(dir, "script.gp")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\ncat > \"$1\"\n"), 0o755))

	img := newImage(t, 2, 2, []byte{10, 20, 30, 40})
	p := &GnuplotPlotter{Path: exe, Args: []string{out}}
	require.NoError(t, p.Plot(img, 4))

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, WriteGnuplotScript(&want, img, 4))
	assert.Equal(t, want.String(), string(got))
}

func TestGnuplotPlotter_MissingExecutable(t *testing.T) {
	p := &GnuplotPlotter{Path: filepath.Join(t.TempDir(), "no-such-gnuplot")}
	err := p.Plot(newImage(t, 1, 1, []byte{0}), 0)
	assert.Error(t, err)
}
