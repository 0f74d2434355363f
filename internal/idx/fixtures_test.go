package idx

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// labelFile builds an in-memory label file.
func labelFile(t *testing.T, labels []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, binary.Write(buf, binary.BigEndian, LabelMagic))
	require.NoError(t, binary.Write(buf, binary.BigEndian, uint32(len(labels))))
	buf.Write(labels)
	return buf.Bytes()
}

// imageFile builds an in-memory image file declaring count images of
// rows x cols pixels; pixel values are taken from body as is.
func imageFile(t *testing.T, count, rows, cols uint32, body []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	for _, v := range []uint32{ImageMagic, count, rows, cols} {
		require.NoError(t, binary.Write(buf, binary.BigEndian, v))
	}
	buf.Write(body)
	return buf.Bytes()
}

// pattern returns n bytes where byte i is i modulo 256.
func pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// writeDataset writes a complete small dataset with w x h images.
func writeDataset(t *testing.T, dir string, w, h, trainN, testN int) {
	t.Helper()
	size := w * h
	writeFile(t, dir, TrainLabelsFile, labelFile(t, pattern(trainN)))
	writeFile(t, dir, TrainImagesFile, imageFile(t, uint32(trainN), uint32(h), uint32(w), pattern(trainN*size)))
	writeFile(t, dir, TestLabelsFile, labelFile(t, pattern(testN)))
	writeFile(t, dir, TestImagesFile, imageFile(t, uint32(testN), uint32(h), uint32(w), pattern(testN*size)))
}
