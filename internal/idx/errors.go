package idx

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic      = errors.New("invalid magic number")
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrCardinality       = errors.New("image and label counts differ")
	ErrPixelCount        = errors.New("pixel count does not match image dimensions")
	ErrInvalidSplit      = errors.New("invalid split: expected train or test")
)

// IOError wraps a failure of the underlying byte source: a missing file,
// a permission problem or a short read.
type IOError struct {
	Op   string // Operation that failed (e.g., "open", "read labels")
	Path string // File path, empty when decoding from a stream
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("I/O error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("I/O error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// MagicError reports a leading magic number that does not identify the
// expected record type. Expected is zero when any IDX magic understood by
// this package would have been accepted.
type MagicError struct {
	Path     string
	Expected uint32
	Found    uint32
}

// Error implements the error interface.
func (e *MagicError) Error() string {
	msg := fmt.Sprintf("invalid magic number: expected %d, found %d", e.Expected, e.Found)
	if e.Expected == 0 {
		msg = fmt.Sprintf("invalid magic number: expected %d or %d, found %d", LabelMagic, ImageMagic, e.Found)
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// Is reports whether target is ErrInvalidMagic.
func (e *MagicError) Is(target error) bool {
	return target == ErrInvalidMagic
}

// DimensionError reports an image file whose declared resolution differs
// from the decoder's. Both pairs are ordered (width, height); Found is
// therefore (columns, rows) as declared by the file.
type DimensionError struct {
	Path     string
	Expected [2]uint32
	Found    [2]uint32
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	msg := fmt.Sprintf("invalid image dimensions: expected %dx%d, found %dx%d",
		e.Expected[0], e.Expected[1], e.Found[0], e.Found[1])
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// Is reports whether target is ErrInvalidDimensions.
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimensions
}

// CardinalityError reports a split whose image and label files disagree on
// the number of items.
type CardinalityError struct {
	Split  Split
	Images int
	Labels int
}

// Error implements the error interface.
func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s split: %d images but %d labels", e.Split, e.Images, e.Labels)
}

// Is reports whether target is ErrCardinality.
func (e *CardinalityError) Is(target error) bool {
	return target == ErrCardinality
}

// withPath records path on decoding errors that do not carry one yet.
func withPath(err error, path string) error {
	var ioErr *IOError
	var magicErr *MagicError
	var dimErr *DimensionError
	switch {
	case errors.As(err, &ioErr):
		if ioErr.Path == "" {
			ioErr.Path = path
		}
	case errors.As(err, &magicErr):
		if magicErr.Path == "" {
			magicErr.Path = path
		}
	case errors.As(err, &dimErr):
		if dimErr.Path == "" {
			dimErr.Path = path
		}
	}
	return err
}
