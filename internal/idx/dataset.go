package idx

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/born-ml/mnist/internal/parallel"
)

// Canonical MNIST file names, resolved directly under the dataset directory.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Files lists the canonical file names in load order.
var Files = []string{TrainLabelsFile, TrainImagesFile, TestLabelsFile, TestImagesFile}

// Split names one partition of the dataset.
type Split string

// Dataset splits.
const (
	Train Split = "train"
	Test  Split = "test"
)

// ParseSplit validates a split name.
func ParseSplit(s string) (Split, error) {
	switch Split(s) {
	case Train, Test:
		return Split(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSplit, s)
	}
}

// Dataset holds both splits of a decoded MNIST distribution.
// For each split the image and label counts are equal.
type Dataset struct {
	TrainImages []*Image
	TrainLabels []byte
	TestImages  []*Image
	TestLabels  []byte
}

// Split returns the images and labels of one split.
func (ds *Dataset) Split(s Split) ([]*Image, []byte, error) {
	switch s {
	case Train:
		return ds.TrainImages, ds.TrainLabels, nil
	case Test:
		return ds.TestImages, ds.TestLabels, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidSplit, s)
	}
}

// Options configures LoadWithOptions.
type Options struct {
	Decoder   *Decoder     // Image dimensions; nil means 28x28
	Parallel  bool         // Decode the four files concurrently
	MemoryMap bool         // Decode from read-only memory-mapped files
	Logger    *slog.Logger // Debug records per file; nil discards
}

// Load decodes the four canonical files under dir with default options.
func Load(dir string) (*Dataset, error) {
	return LoadWithOptions(dir, Options{})
}

// LoadWithOptions decodes the four canonical files under dir.
//
// The first failing decode, in the order of Files, is returned unchanged and
// no partial dataset is produced. This holds in parallel mode as well.
func LoadWithOptions(dir string, opts Options) (*Dataset, error) {
	decoder := opts.Decoder
	if decoder == nil {
		decoder = NewDecoder()
	}
	if err := decoder.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ds := &Dataset{}
	labels := func(name string, dst *[]byte) func() error {
		return func() error {
			path := filepath.Join(dir, name)
			start := time.Now()
			out, err := decodeLabelsFile(path, opts.MemoryMap)
			if err != nil {
				return err
			}
			*dst = out
			logger.Debug("decoded labels", "path", path, "count", len(out), "elapsed", time.Since(start))
			return nil
		}
	}
	images := func(name string, dst *[]*Image) func() error {
		return func() error {
			path := filepath.Join(dir, name)
			start := time.Now()
			out, err := decoder.decodeImagesFile(path, opts.MemoryMap)
			if err != nil {
				return err
			}
			*dst = out
			logger.Debug("decoded images", "path", path, "count", len(out), "elapsed", time.Since(start))
			return nil
		}
	}

	tasks := []func() error{
		labels(TrainLabelsFile, &ds.TrainLabels),
		images(TrainImagesFile, &ds.TrainImages),
		labels(TestLabelsFile, &ds.TestLabels),
		images(TestImagesFile, &ds.TestImages),
	}

	cfg := parallel.Config{Enabled: opts.Parallel, NumWorkers: len(tasks)}
	if err := parallel.Run(tasks, cfg); err != nil {
		return nil, err
	}

	if err := ds.checkCardinality(); err != nil {
		return nil, err
	}

	logger.Info("loaded dataset",
		"dir", dir,
		"train", len(ds.TrainImages),
		"test", len(ds.TestImages),
		"width", decoder.Width,
		"height", decoder.Height)
	return ds, nil
}

func (ds *Dataset) checkCardinality() error {
	for _, s := range []Split{Train, Test} {
		images, labels, _ := ds.Split(s)
		if len(images) != len(labels) {
			return &CardinalityError{Split: s, Images: len(images), Labels: len(labels)}
		}
	}
	return nil
}
