// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package idx decodes the IDX binary format used by the MNIST handwritten
// digit distribution.
//
// IDX files are big-endian throughout:
//
//	Label file:
//	  [4 bytes: magic 0x00000801 (2049)]
//	  [4 bytes: number of items]
//	  [items x 1 byte: label]
//
//	Image file:
//	  [4 bytes: magic 0x00000803 (2051)]
//	  [4 bytes: number of items]
//	  [4 bytes: number of rows]
//	  [4 bytes: number of columns]
//	  [items x rows x columns bytes: pixels, row-major]
//
// The image decoder is single-resolution: it is configured with the
// dimensions it accepts (28x28 by default) and rejects files that declare
// anything else.
//
// Example usage:
//
//	ds, err := idx.Load("data/mnist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, label := ds.TrainImages[0], ds.TrainLabels[0]
//	fmt.Printf("label %d\n%s", label, img)
//
// Decoding errors are one of *IOError, *MagicError, *DimensionError or
// *CardinalityError. They are never retried and never downgraded.
package idx
