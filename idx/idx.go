// Package idx decodes MNIST datasets stored in the IDX binary format.
//
// This package wraps the internal decoder and exports its public API.
//
// Example usage:
//
//	import "github.com/born-ml/mnist/idx"
//
//	ds, err := idx.Load("data/mnist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d training images\n", len(ds.TrainImages))
//	fmt.Print(ds.TrainImages[0]) // ASCII rendering
//
//	// Normalized views for numeric code
//	x := ds.TrainImages[0].Float32() // []float32 in [0, 1]
//	m := ds.TrainImages[0].Matrix()  // *mat.Dense, 28x28
package idx

import (
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mnist/internal/idx"
)

// Image is one decoded image. See the internal package for details.
type Image = idx.Image

// Header holds the leading fields of an IDX file.
type Header = idx.Header

// Decoder decodes image files of one fixed resolution.
type Decoder = idx.Decoder

// Dataset holds both splits of a decoded MNIST distribution.
type Dataset = idx.Dataset

// Options configures LoadWithOptions.
type Options = idx.Options

// Split names one partition of the dataset.
type Split = idx.Split

// Error types.
type (
	IOError          = idx.IOError
	MagicError       = idx.MagicError
	DimensionError   = idx.DimensionError
	CardinalityError = idx.CardinalityError
)

// Dataset splits.
const (
	Train = idx.Train
	Test  = idx.Test
)

// Magic numbers.
const (
	LabelMagic = idx.LabelMagic
	ImageMagic = idx.ImageMagic
)

// Default image dimensions.
const (
	DefaultWidth  = idx.DefaultWidth
	DefaultHeight = idx.DefaultHeight
)

// Canonical MNIST file names.
const (
	TrainImagesFile = idx.TrainImagesFile
	TrainLabelsFile = idx.TrainLabelsFile
	TestImagesFile  = idx.TestImagesFile
	TestLabelsFile  = idx.TestLabelsFile
)

// Sentinel errors for errors.Is.
var (
	ErrInvalidMagic      = idx.ErrInvalidMagic
	ErrInvalidDimensions = idx.ErrInvalidDimensions
	ErrCardinality       = idx.ErrCardinality
	ErrPixelCount        = idx.ErrPixelCount
	ErrInvalidSplit      = idx.ErrInvalidSplit
)

// Load decodes the four canonical files under dir.
func Load(dir string) (*Dataset, error) {
	return idx.Load(dir)
}

// LoadWithOptions decodes the four canonical files under dir with options.
func LoadWithOptions(dir string, opts Options) (*Dataset, error) {
	return idx.LoadWithOptions(dir, opts)
}

// NewDecoder returns a decoder for 28x28 images.
func NewDecoder() *Decoder {
	return idx.NewDecoder()
}

// DecodeLabels reads a label file from r.
func DecodeLabels(r io.Reader) ([]byte, error) {
	return idx.DecodeLabels(r)
}

// DecodeLabelsFile decodes the label file at path.
func DecodeLabelsFile(path string) ([]byte, error) {
	return idx.DecodeLabelsFile(path)
}

// DecodeImages reads a 28x28 image file from r.
func DecodeImages(r io.Reader) ([]*Image, error) {
	return idx.DecodeImages(r)
}

// ReadUint32 reads one big-endian 32-bit unsigned integer from r.
func ReadUint32(r io.Reader) (uint32, error) {
	return idx.ReadUint32(r)
}

// ReadHeader reads the header of a label or image file.
func ReadHeader(r io.Reader) (Header, error) {
	return idx.ReadHeader(r)
}

// NewImageFromFloat64 builds an image from normalized float64 values.
func NewImageFromFloat64(width, height int, values []float64) (*Image, error) {
	return idx.NewImageFromFloat64(width, height, values)
}

// NewImageFromFloat32 builds an image from normalized float32 values.
func NewImageFromFloat32(width, height int, values []float32) (*Image, error) {
	return idx.NewImageFromFloat32(width, height, values)
}

// NewImageFromMatrix builds an image from a matrix of normalized values.
func NewImageFromMatrix(m mat.Matrix) (*Image, error) {
	return idx.NewImageFromMatrix(m)
}

// Checksum computes the BLAKE3-256 digest of everything read from r.
func Checksum(r io.Reader) ([32]byte, error) {
	return idx.Checksum(r)
}

// ChecksumFile computes the BLAKE3-256 digest of the file at path.
func ChecksumFile(path string) ([32]byte, error) {
	return idx.ChecksumFile(path)
}

// FormatChecksum returns the lowercase hex form of a digest.
func FormatChecksum(sum [32]byte) string {
	return idx.FormatChecksum(sum)
}

// Inspect reads the header and checksum of the file at path.
func Inspect(path string) (Header, [32]byte, error) {
	return idx.Inspect(path)
}

// ValidateDimensions reports whether width x height is a usable image size.
func ValidateDimensions(width, height int) error {
	return idx.ValidateDimensions(width, height)
}

// ParseSplit validates a split name.
func ParseSplit(s string) (Split, error) {
	return idx.ParseSplit(s)
}
