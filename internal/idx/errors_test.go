package idx

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&IOError{Op: "read labels", Err: io.ErrUnexpectedEOF}, "I/O error: read labels: unexpected EOF"},
		{&IOError{Op: "open", Path: "/x", Err: io.EOF}, "I/O error: open /x: EOF"},
		{&MagicError{Expected: 2049, Found: 7}, "invalid magic number: expected 2049, found 7"},
		{&MagicError{Path: "f", Expected: 2051, Found: 7}, "f: invalid magic number: expected 2051, found 7"},
		{&DimensionError{Expected: [2]uint32{28, 28}, Found: [2]uint32{28, 30}}, "invalid image dimensions: expected 28x28, found 28x30"},
		{&CardinalityError{Split: Train, Images: 3, Labels: 2}, "train split: 3 images but 2 labels"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, &MagicError{}, ErrInvalidMagic)
	assert.ErrorIs(t, &DimensionError{}, ErrInvalidDimensions)
	assert.ErrorIs(t, &CardinalityError{}, ErrCardinality)
	assert.False(t, errors.Is(&MagicError{}, ErrInvalidDimensions))
	assert.ErrorIs(t, &IOError{Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF)
}
