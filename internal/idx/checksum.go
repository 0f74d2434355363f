package idx

import (
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
)

// Checksum computes the BLAKE3-256 digest of everything read from r.
func Checksum(r io.Reader) (sum [32]byte, err error) {
	h := blake3.New()
	if _, err = io.Copy(h, r); err != nil {
		return sum, err
	}
	h.Sum(sum[:0])
	return sum, nil
}

// ChecksumFile computes the BLAKE3-256 digest of the file at path.
func ChecksumFile(path string) (sum [32]byte, err error) {
	err = decodeFile(path, false, func(r io.Reader) error {
		var cerr error
		if sum, cerr = Checksum(r); cerr != nil {
			return &IOError{Op: "checksum", Err: cerr}
		}
		return nil
	})
	return sum, err
}

// FormatChecksum returns the lowercase hex form of a digest.
func FormatChecksum(sum [32]byte) string {
	return hex.EncodeToString(sum[:])
}

// Inspect reads the header of the file at path and the digest of its full
// contents in a single pass. The body is hashed but not decoded.
func Inspect(path string) (Header, [32]byte, error) {
	var (
		h   Header
		sum [32]byte
	)
	err := decodeFile(path, false, func(r io.Reader) error {
		hasher := blake3.New()
		var err error
		if h, err = ReadHeader(io.TeeReader(r, hasher)); err != nil {
			return err
		}
		if _, err = io.Copy(hasher, r); err != nil {
			return &IOError{Op: "checksum", Err: err}
		}
		hasher.Sum(sum[:0])
		return nil
	})
	if err != nil {
		return Header{}, [32]byte{}, err
	}
	return h, sum, nil
}
