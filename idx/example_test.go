package idx_test

import (
	"bytes"
	"fmt"

	"github.com/born-ml/mnist/idx"
)

func ExampleDecodeLabels() {
	data := []byte{
		0x00, 0x00, 0x08, 0x01, // magic 2049
		0x00, 0x00, 0x00, 0x03, // 3 labels
		0x05, 0x00, 0x09,
	}

	labels, err := idx.DecodeLabels(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(labels)
	// Output: [5 0 9]
}

func ExampleDecoder_DecodeImages() {
	data := []byte{
		0x00, 0x00, 0x08, 0x03, // magic 2051
		0x00, 0x00, 0x00, 0x01, // 1 image
		0x00, 0x00, 0x00, 0x02, // 2 rows
		0x00, 0x00, 0x00, 0x02, // 2 columns
		10, 20, 30, 40,
	}

	dec := &idx.Decoder{Width: 2, Height: 2}
	images, err := dec.DecodeImages(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(images[0].Bytes())
	fmt.Println(images[0].Rows())
	// Output:
	// [10 20 30 40]
	// [[10 20] [30 40]]
}

func ExampleDecodeImages_dimensionMismatch() {
	data := []byte{
		0x00, 0x00, 0x08, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x1E, // 30 rows
		0x00, 0x00, 0x00, 0x1C, // 28 columns
	}

	_, err := idx.DecodeImages(bytes.NewReader(data))
	fmt.Println(err)
	// Output: invalid image dimensions: expected 28x28, found 28x30
}

func ExampleReadUint32() {
	v, err := idx.ReadUint32(bytes.NewReader([]byte{0x00, 0x00, 0xEA, 0x60}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: 60000
}

func ExampleChecksum() {
	data := []byte{0x00, 0x00, 0x08, 0x01, 0x00, 0x00, 0x00, 0x00}

	a, err := idx.Checksum(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := idx.Checksum(bytes.NewReader(data))
	fmt.Println(a == b, len(idx.FormatChecksum(a)))
	// Output: true 64
}
