package idx

import (
	"fmt"
	"io"
	"math"
)

// Default MNIST image dimensions.
const (
	DefaultWidth  = 28
	DefaultHeight = 28
)

// maxPreallocImages caps the capacity reserved for the result before any
// pixel data has been read.
const maxPreallocImages = 4096

// Decoder decodes image files of one fixed resolution.
type Decoder struct {
	Width  int // Expected number of columns
	Height int // Expected number of rows
}

// NewDecoder returns a decoder for 28x28 MNIST images.
func NewDecoder() *Decoder {
	return &Decoder{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks that the decoder dimensions are usable: both positive,
// representable in a 32-bit header field, with a product that fits in int.
func (d *Decoder) Validate() error {
	return ValidateDimensions(d.Width, d.Height)
}

// ValidateDimensions reports whether width x height is a usable image size.
func ValidateDimensions(width, height int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("invalid dimensions %dx%d: both must be > 0", width, height)
	case uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32:
		return fmt.Errorf("invalid dimensions %dx%d: both must fit in 32 bits", width, height)
	case height > math.MaxInt/width:
		return fmt.Errorf("invalid dimensions %dx%d: pixel count overflows int", width, height)
	}
	return nil
}

// DecodeImages reads an image file from r using the default 28x28 decoder.
func DecodeImages(r io.Reader) ([]*Image, error) {
	return NewDecoder().DecodeImages(r)
}

// DecodeImages reads an image file from r: magic 2051, item count, row
// count and column count, then count row-major pixel blocks.
//
// The declared rows and columns must equal d.Height and d.Width. Any short
// read fails the whole decode; no partial image is returned.
func (d *Decoder) DecodeImages(r io.Reader) ([]*Image, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := expectMagic(r, ImageMagic); err != nil {
		return nil, err
	}

	// Read count, rows, cols in file order.
	var dims [3]uint32
	for i := range dims {
		v, err := ReadUint32(r)
		if err != nil {
			return nil, &IOError{Op: "read image header", Err: err}
		}
		dims[i] = v
	}
	count, rows, cols := dims[0], dims[1], dims[2]

	if rows != uint32(d.Height) || cols != uint32(d.Width) { //nolint:gosec // G115: dimensions validated to fit in uint32
		return nil, &DimensionError{
			Expected: [2]uint32{uint32(d.Width), uint32(d.Height)}, //nolint:gosec // G115: dimensions validated to fit in uint32
			Found:    [2]uint32{cols, rows},
		}
	}

	size := d.Width * d.Height
	images := make([]*Image, 0, min(int(count), maxPreallocImages))
	for i := 0; i < int(count); i++ {
		pixels := make([]byte, size)
		if _, err := io.ReadFull(r, pixels); err != nil {
			return nil, &IOError{Op: fmt.Sprintf("read image %d", i), Err: err}
		}
		images = append(images, &Image{width: d.Width, height: d.Height, pixels: pixels})
	}

	return images, nil
}

// DecodeImagesFile decodes the image file at path.
func (d *Decoder) DecodeImagesFile(path string) ([]*Image, error) {
	return d.decodeImagesFile(path, false)
}

func (d *Decoder) decodeImagesFile(path string, memoryMap bool) ([]*Image, error) {
	var images []*Image
	err := decodeFile(path, memoryMap, func(r io.Reader) error {
		var err error
		images, err = d.DecodeImages(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}
