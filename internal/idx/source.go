package idx

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

const bufferSize = 1 << 16

// source is one exclusive read cursor over one file.
type source struct {
	io.Reader
	close func() error
}

// openSource opens path for decoding. With memoryMap set the file is mapped
// read-only and decoded from memory; otherwise it is read through a buffer.
func openSource(path string, memoryMap bool) (*source, error) {
	//nolint:gosec // G304: dataset paths come from the caller by design
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}

	if !memoryMap {
		return &source{Reader: bufio.NewReaderSize(f, bufferSize), close: f.Close}, nil
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if stat.Size() == 0 {
		return &source{Reader: bytes.NewReader(nil), close: f.Close}, nil
	}

	data, err := mmapFile(f, stat.Size())
	if err != nil {
		_ = f.Close()
		return nil, &IOError{Op: "mmap", Path: path, Err: err}
	}

	return &source{
		Reader: bytes.NewReader(data),
		close: func() error {
			err := munmapFile(data)
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
			return err
		},
	}, nil
}

// decodeFile runs decode over the file at path and releases the file on
// every exit path. Errors from decode are annotated with path.
func decodeFile(path string, memoryMap bool, decode func(io.Reader) error) error {
	src, err := openSource(path, memoryMap)
	if err != nil {
		return err
	}
	defer func() {
		_ = src.close() // Read-only; a close error cannot lose data.
	}()

	if err := decode(src); err != nil {
		return withPath(err, path)
	}
	return nil
}
