package idx

import (
	"fmt"
	"math"
	"strings"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"
)

// asciiGradient maps intensity buckets to glyphs, darkest first.
const asciiGradient = " .:*@"

// Image is one decoded image: exactly Height x Width unsigned 8-bit
// intensities in row-major order.
//
// Images are immutable. Bytes and Rows return views of the internal buffer
// that callers must not modify.
type Image struct {
	width  int
	height int
	pixels []byte // row-major, len == width*height
}

// NewImageFromFloat64 builds an image from normalized values in [0, 1].
// Each value f becomes floor(f*255), saturated to [0, 255]; NaN becomes 0.
func NewImageFromFloat64(width, height int, values []float64) (*Image, error) {
	if err := checkPixelCount(width, height, len(values)); err != nil {
		return nil, err
	}
	pixels := make([]byte, len(values))
	for i, f := range values {
		pixels[i] = denormalize64(f)
	}
	return &Image{width: width, height: height, pixels: pixels}, nil
}

// NewImageFromFloat32 is the float32 counterpart of NewImageFromFloat64.
func NewImageFromFloat32(width, height int, values []float32) (*Image, error) {
	if err := checkPixelCount(width, height, len(values)); err != nil {
		return nil, err
	}
	pixels := make([]byte, len(values))
	for i, f := range values {
		pixels[i] = denormalize32(f)
	}
	return &Image{width: width, height: height, pixels: pixels}, nil
}

// NewImageFromMatrix builds an image from a matrix of normalized values,
// one matrix row per image row.
func NewImageFromMatrix(m mat.Matrix) (*Image, error) {
	rows, cols := m.Dims()
	values := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			values = append(values, m.At(r, c))
		}
	}
	return NewImageFromFloat64(cols, rows, values)
}

func checkPixelCount(width, height, n int) error {
	if width <= 0 || height <= 0 || height > math.MaxInt/width {
		return fmt.Errorf("%w: invalid %dx%d image, got %d values", ErrPixelCount, width, height, n)
	}
	if n != width*height {
		return fmt.Errorf("%w: %dx%d image needs %d values, got %d", ErrPixelCount, width, height, width*height, n)
	}
	return nil
}

func denormalize64(f float64) byte {
	v := math.Floor(f * 255.0)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}

func denormalize32(f float32) byte {
	v := math32.Floor(f * 255.0)
	switch {
	case math32.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return img.width
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return img.height
}

// Len returns the number of pixels.
func (img *Image) Len() int {
	return len(img.pixels)
}

// Bytes returns the row-major pixel buffer without copying.
func (img *Image) Bytes() []byte {
	return img.pixels
}

// Rows returns a 2-D view of the pixel buffer. Each row aliases the flat
// buffer, so the view shares memory and ordering with Bytes.
func (img *Image) Rows() [][]byte {
	rows := make([][]byte, img.height)
	for r := range rows {
		start := r * img.width
		rows[r] = img.pixels[start : start+img.width : start+img.width]
	}
	return rows
}

// At returns the pixel at the given row and column.
func (img *Image) At(row, col int) uint8 {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		panic(fmt.Sprintf("idx: pixel (%d, %d) out of range for %dx%d image", row, col, img.width, img.height))
	}
	return img.pixels[row*img.width+col]
}

// Float32 returns the pixels normalized to [0, 1] as float32.
func (img *Image) Float32() []float32 {
	out := make([]float32, len(img.pixels))
	for i, p := range img.pixels {
		out[i] = float32(p) / 255.0
	}
	return out
}

// Float64 returns the pixels normalized to [0, 1] as float64.
func (img *Image) Float64() []float64 {
	out := make([]float64, len(img.pixels))
	for i, p := range img.pixels {
		out[i] = float64(p) / 255.0
	}
	return out
}

// Vector32 returns the normalized pixels as a flat BLAS vector.
func (img *Image) Vector32() blas32.Vector {
	data := img.Float32()
	return blas32.Vector{N: len(data), Inc: 1, Data: data}
}

// Matrix returns the normalized pixels as a Height x Width dense matrix.
func (img *Image) Matrix() *mat.Dense {
	return mat.NewDense(img.height, img.width, img.Float64())
}

// String renders the image as ASCII art, one text line per pixel row.
// Intended for human inspection only.
func (img *Image) String() string {
	var sb strings.Builder
	sb.Grow(len(img.pixels) + img.height)
	for i, p := range img.pixels {
		sb.WriteByte(asciiGradient[int(p)*len(asciiGradient)/256])
		if (i+1)%img.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
