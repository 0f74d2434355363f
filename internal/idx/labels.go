package idx

import (
	"io"
	"slices"
)

// readChunk bounds how much memory is reserved ahead of bytes actually
// arriving from the source, so a corrupt count cannot force a huge
// allocation before the short read is detected.
const readChunk = 64 << 10

// DecodeLabels reads a label file from r: magic 2049, an item count, then
// exactly count single-byte labels in file order.
//
// Label values are returned as stored; no range is assumed.
func DecodeLabels(r io.Reader) ([]byte, error) {
	if err := expectMagic(r, LabelMagic); err != nil {
		return nil, err
	}

	count, err := ReadUint32(r)
	if err != nil {
		return nil, &IOError{Op: "read label count", Err: err}
	}

	labels, err := readBytes(r, int64(count))
	if err != nil {
		return nil, &IOError{Op: "read labels", Err: err}
	}
	return labels, nil
}

// DecodeLabelsFile decodes the label file at path.
func DecodeLabelsFile(path string) ([]byte, error) {
	return decodeLabelsFile(path, false)
}

func decodeLabelsFile(path string, memoryMap bool) ([]byte, error) {
	var labels []byte
	err := decodeFile(path, memoryMap, func(r io.Reader) error {
		var err error
		labels, err = DecodeLabels(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// readBytes reads exactly n bytes, growing the result one chunk at a time.
func readBytes(r io.Reader, n int64) ([]byte, error) {
	buf := make([]byte, 0, min(n, readChunk))
	for int64(len(buf)) < n {
		start := len(buf)
		chunk := int(min(n-int64(start), readChunk))
		buf = slices.Grow(buf, chunk)[:start+chunk]
		if _, err := io.ReadFull(r, buf[start:]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
