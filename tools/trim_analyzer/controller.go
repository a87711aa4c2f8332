package trim_analyzer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"ecoscope_go/config"
	common "ecoscope_go/utils"
)

var (
	errInputIsDir    = errors.New("is a directory")
	errOutputIsInput = errors.New("output file is the input file")
)

// Result describes a finished run. Stats is a copy owned by the caller.
type Result struct {
	Stats         RunStatistics
	TrimmedPath   string
	HistogramPath string
	CSVPath       string
}

// Run trims opts.Input into <Output>/trimmed.fastq, then reports statistics to w
// and the output directory. The input extension is checked before anything is
// opened or created. A failed run may leave a partial trimmed.fastq behind.
func Run(opts config.Options, w io.Writer) (Result, error) {
	var result Result
	if err := opts.Validate(); err != nil {
		return result, err
	}

	if !common.HasFastqExtension(opts.Input) {
		return result, &UnsupportedFormatError{Path: opts.Input, Ext: filepath.Ext(opts.Input)}
	}

	pipeline, err := NewPipeline(opts.Pipeline, opts.TrimLength)
	if err != nil {
		return result, err
	}

	if opts.Verbose {
		printOptions(w, opts)
	}

	stats, err := trimFile(opts, pipeline, w)
	if err != nil {
		return result, err
	}
	result.TrimmedPath = filepath.Join(opts.Output, TrimmedFileName)
	result.Stats = stats.Clone()

	reporter := FileReporter{OutputDir: opts.Output, Out: w, CSV: opts.CSV}
	files, err := reporter.Report(stats.Clone())
	if err != nil {
		return result, err
	}
	result.HistogramPath = files.HistogramPath
	result.CSVPath = files.CSVPath

	if opts.Verbose {
		fmt.Fprintf(w, "Processing complete (%s pipeline): %d reads written. Results saved to: %s\n",
			pipeline.Name(), stats.TotalReads, opts.Output)
	}
	return result, nil
}

func trimFile(opts config.Options, pipeline Pipeline, w io.Writer) (stats RunStatistics, err error) {
	in, err := os.Open(opts.Input)
	if err != nil {
		return stats, &InputNotFoundError{Path: opts.Input, Err: err}
	}
	defer in.Close()

	inInfo, err := in.Stat()
	if err != nil {
		return stats, &InputNotFoundError{Path: opts.Input, Err: err}
	}
	if inInfo.IsDir() {
		return stats, &InputNotFoundError{Path: opts.Input, Err: errInputIsDir}
	}

	if err := common.EnsureDir(opts.Output); err != nil {
		return stats, &OutputWriteError{Path: opts.Output, Err: err}
	}

	outPath := filepath.Join(opts.Output, TrimmedFileName)
	// Creating the output would truncate the input before it is read.
	if outInfo, err := os.Stat(outPath); err == nil && os.SameFile(inInfo, outInfo) {
		return stats, &OutputWriteError{Path: outPath, Err: errOutputIsInput}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return stats, &OutputWriteError{Path: outPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &OutputWriteError{Path: outPath, Err: cerr}
		}
	}()

	processor := NewProcessor(pipeline)
	processor.OutputName = outPath
	if opts.Verbose {
		processor.OnProgress = func(s RunStatistics) { PrintProgress(w, s) }
	}
	return processor.Process(in, out)
}

func printOptions(w io.Writer, opts config.Options) {
	fmt.Fprintf(w, "Input file: %s\n", opts.Input)
	fmt.Fprintf(w, "Output directory: %s\n", opts.Output)
	fmt.Fprintf(w, "Pipeline: %s\n", opts.Pipeline)
	if opts.Trimming() {
		fmt.Fprintf(w, "Trim length: %d\n", opts.TrimLength)
	} else {
		fmt.Fprintln(w, color.YellowString("No trimming length specified."))
	}
}
