package idx

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Magic numbers identifying IDX record types.
const (
	LabelMagic uint32 = 0x00000801 // 2049: unsigned byte, 1 dimension.
	ImageMagic uint32 = 0x00000803 // 2051: unsigned byte, 3 dimensions.
)

// Header holds the leading fields of an IDX file.
// Rows and Cols are only populated for image files.
type Header struct {
	Magic uint32
	Count uint32
	Rows  uint32
	Cols  uint32
}

// IsImage reports whether the header describes an image file.
func (h Header) IsImage() bool {
	return h.Magic == ImageMagic
}

// Size returns the body length in bytes that the header declares.
func (h Header) Size() int64 {
	if h.IsImage() {
		return int64(h.Count) * int64(h.Rows) * int64(h.Cols)
	}
	return int64(h.Count)
}

// String returns a short human-readable description.
func (h Header) String() string {
	if h.IsImage() {
		return fmt.Sprintf("images magic=%d count=%d rows=%d cols=%d", h.Magic, h.Count, h.Rows, h.Cols)
	}
	return fmt.Sprintf("labels magic=%d count=%d", h.Magic, h.Count)
}

// ReadUint32 reads exactly four bytes from r as a big-endian uint32.
// A short read returns the error from r unchanged.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadHeader reads the header of either IDX record type without touching
// the body. The magic decides how many dimension fields follow.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	var err error

	if h.Magic, err = ReadUint32(r); err != nil {
		return Header{}, &IOError{Op: "read magic", Err: err}
	}
	if h.Magic != LabelMagic && h.Magic != ImageMagic {
		return Header{}, &MagicError{Found: h.Magic}
	}

	fields := []*uint32{&h.Count}
	if h.IsImage() {
		fields = append(fields, &h.Rows, &h.Cols)
	}
	for _, field := range fields {
		if *field, err = ReadUint32(r); err != nil {
			return Header{}, &IOError{Op: "read header", Err: err}
		}
	}

	return h, nil
}

// expectMagic reads the magic number and checks it against want.
func expectMagic(r io.Reader, want uint32) error {
	magic, err := ReadUint32(r)
	if err != nil {
		return &IOError{Op: "read magic", Err: err}
	}
	if magic != want {
		return &MagicError{Expected: want, Found: magic}
	}
	return nil
}
