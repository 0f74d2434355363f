// Command mnist loads an MNIST distribution in IDX format and shows one
// image with its label.
//
// Usage:
//
//	mnist show --data-dir DIR [--dataset train|test] [--image-number N] [--plot BACKEND]
//	mnist info --data-dir DIR
//	mnist version
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/born-ml/mnist/internal/config"
	"github.com/born-ml/mnist/internal/idx"
	"github.com/born-ml/mnist/internal/plot"
)

const version = "v0.1.0-dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks errors caused by invalid command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "version", "--version":
		fmt.Fprintf(stdout, "mnist %s\n", version)
		return exitOK
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	case "show":
		err = runShow(args[1:], stdout, stderr)
	case "info":
		err = runInfo(args[1:], stdout, stderr)
	default:
		err = usagef("unknown command %q", args[0])
	}

	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	var usage *usageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitFailure
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `mnist - inspect MNIST datasets stored in IDX format.

Usage:
  mnist show --data-dir DIR [--dataset train|test] [--image-number N] [--plot BACKEND]
  mnist info --data-dir DIR
  mnist version

Run "mnist <command> --help" for the flags of a command.
`)
}

// commonFlags are accepted by every command that reads the dataset.
type commonFlags struct {
	configPath string
	dataDir    string
	logLevel   string
	width      int
	height     int
	parallel   bool
	memoryMap  bool
}

func (f *commonFlags) add(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.configPath, "config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVarP(&f.dataDir, "data-dir", "d", "", "directory containing the MNIST IDX files")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.IntVar(&f.width, "width", 0, "expected image width")
	flagSet.IntVar(&f.height, "height", 0, "expected image height")
	flagSet.BoolVar(&f.parallel, "parallel", false, "decode the dataset files concurrently")
	flagSet.BoolVar(&f.memoryMap, "mmap", false, "decode from memory-mapped files")
}

// resolve loads the config file and applies explicitly set flags on top.
func (f *commonFlags) resolve(flagSet *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, err
	}

	if flagSet.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flagSet.Changed("width") {
		cfg.Image.Width = f.width
	}
	if flagSet.Changed("height") {
		cfg.Image.Height = f.height
	}
	if flagSet.Changed("parallel") {
		cfg.Load.Parallel = f.parallel
	}
	if flagSet.Changed("mmap") {
		cfg.Load.MemoryMap = f.memoryMap
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, stderr io.Writer) *slog.Logger {
	level, _ := cfg.Level() // Validated by the caller.
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func parseFlags(flagSet *pflag.FlagSet, args []string, stderr io.Writer) error {
	flagSet.SetOutput(stderr)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return &usageError{err: err}
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return usagef("unexpected argument: %s", rest[0])
	}
	return nil
}

func runShow(args []string, stdout, stderr io.Writer) error {
	var common commonFlags
	var dataset, plotBackend string
	var imageNumber int

	flagSet := pflag.NewFlagSet("mnist show", pflag.ContinueOnError)
	common.add(flagSet)
	flagSet.StringVarP(&dataset, "dataset", "s", "", "split to show: train or test")
	flagSet.IntVarP(&imageNumber, "image-number", "i", 0, "index of the image to show")
	flagSet.StringVar(&plotBackend, "plot", "", "plot backend: none, terminal, gnuplot, auto")

	if err := parseFlags(flagSet, args, stderr); err != nil {
		return err
	}

	cfg, err := common.resolve(flagSet)
	if err != nil {
		return err
	}
	if flagSet.Changed("dataset") {
		cfg.Dataset = dataset
	}
	if flagSet.Changed("image-number") {
		cfg.ImageNumber = imageNumber
	}
	if flagSet.Changed("plot") {
		cfg.Plot = plotBackend
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}

	logger := newLogger(cfg, stderr)
	logger.Debug("loading dataset", "dir", cfg.DataDir)

	ds, err := idx.LoadWithOptions(cfg.DataDir, cfg.LoadOptions(logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Loaded %d training labels.\n", len(ds.TrainLabels))
	fmt.Fprintf(stdout, "Loaded %d training images.\n", len(ds.TrainImages))
	fmt.Fprintf(stdout, "Loaded %d test labels.\n", len(ds.TestLabels))
	fmt.Fprintf(stdout, "Loaded %d test images.\n", len(ds.TestImages))

	split := idx.Split(cfg.Dataset)
	images, labels, err := ds.Split(split)
	if err != nil {
		return err
	}
	if cfg.ImageNumber >= len(images) {
		return fmt.Errorf("image number %d out of range: %s split has %d images", cfg.ImageNumber, split, len(images))
	}

	img, label := images[cfg.ImageNumber], labels[cfg.ImageNumber]
	fmt.Fprintf(stdout, "\n--- Dataset: %s | Image #%d | Label: %d ---\n", split, cfg.ImageNumber, label)
	fmt.Fprint(stdout, img)

	plotter, err := selectPlotter(cfg.Plot, stdout)
	if err != nil {
		return err
	}
	if plotter == nil {
		return nil
	}
	logger.Debug("plotting image", "backend", cfg.Plot, "label", label)
	return plotter.Plot(img, label)
}

// selectPlotter resolves the auto backend against stdout.
func selectPlotter(backend string, stdout io.Writer) (plot.Plotter, error) {
	if backend == config.PlotAuto {
		backend = plot.BackendNone
		if isTerminal(stdout) {
			backend = plot.BackendTerminal
		}
	}
	return plot.New(backend, stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptor fits in int
}

func runInfo(args []string, stdout, stderr io.Writer) error {
	var common commonFlags

	flagSet := pflag.NewFlagSet("mnist info", pflag.ContinueOnError)
	common.add(flagSet)

	if err := parseFlags(flagSet, args, stderr); err != nil {
		return err
	}

	cfg, err := common.resolve(flagSet)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	logger := newLogger(cfg, stderr)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tMAGIC\tCOUNT\tROWS\tCOLS\tBLAKE3")
	for _, name := range idx.Files {
		path := filepath.Join(cfg.DataDir, name)
		h, sum, err := idx.Inspect(path)
		if err != nil {
			_ = tw.Flush()
			return err
		}
		logger.Debug("inspected file", "path", path, "header", h.String())

		rows, cols := "-", "-"
		if h.IsImage() {
			rows, cols = fmt.Sprint(h.Rows), fmt.Sprint(h.Cols)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n", name, h.Magic, h.Count, rows, cols, idx.FormatChecksum(sum))
	}
	return tw.Flush()
}
