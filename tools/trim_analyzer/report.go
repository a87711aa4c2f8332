package trim_analyzer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	common "ecoscope_go/utils"
)

const (
	TrimmedFileName   = "trimmed.fastq"
	HistogramFileName = "sequence_length_histogram.png"
	CSVFileName       = "run_statistics.csv"
)

// Reporter consumes the statistics of a finished run.
type Reporter interface {
	Report(stats RunStatistics) (ReportFiles, error)
}

// ReportFiles lists what a Reporter wrote. Empty fields were not produced.
type ReportFiles struct {
	HistogramPath string
	CSVPath       string
}

// FileReporter prints a summary to Out and writes the histogram (and optionally
// a CSV) into OutputDir. Runs with no reads skip the histogram and remove any
// stale one left in OutputDir.
type FileReporter struct {
	OutputDir string
	Out       io.Writer
	CSV       bool
}

func (r FileReporter) Report(stats RunStatistics) (ReportFiles, error) {
	var files ReportFiles
	PrintSummary(r.Out, stats)

	histPath := filepath.Join(r.OutputDir, HistogramFileName)
	if stats.TotalReads == 0 {
		if err := common.RemoveIfExists(histPath); err != nil {
			return files, &OutputWriteError{Path: histPath, Err: err}
		}
		fmt.Fprintln(r.Out, color.YellowString("No reads processed; histogram skipped."))
	} else {
		if err := WriteHistogramPNG(histPath, stats.Lengths); err != nil {
			return files, &OutputWriteError{Path: histPath, Err: err}
		}
		files.HistogramPath = histPath
		fmt.Fprintf(r.Out, "Histogram saved to: %s\n", histPath)
	}

	if r.CSV {
		csvPath := filepath.Join(r.OutputDir, CSVFileName)
		if err := WriteCSVReport(csvPath, stats); err != nil {
			return files, &OutputWriteError{Path: csvPath, Err: err}
		}
		files.CSVPath = csvPath
		fmt.Fprintf(r.Out, "Wrote run statistics to CSV file: %s\n", csvPath)
	}
	return files, nil
}

// PrintSummary writes the human-readable run statistics.
func PrintSummary(w io.Writer, stats RunStatistics) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	summary := stats.SummarizeLengths()
	fmt.Fprintln(w, bold("Sequence Statistics:"))
	fmt.Fprintf(w, "\tTotal Reads:\t\t%s\n", green(stats.TotalReads))
	fmt.Fprintf(w, "\tAverage Length:\t\t%s\n", green(fmt.Sprintf("%.2f", stats.AverageLength())))
	fmt.Fprintf(w, "\tGC Content:\t\t%s\n", green(fmt.Sprintf("%.2f%%", stats.GCContentPercent())))
	fmt.Fprintf(w, "\tMin / Max Length:\t%s\n", green(fmt.Sprintf("%d / %d", summary.Min, summary.Max)))
	fmt.Fprintf(w, "\tMedian Length:\t\t%s\n", green(fmt.Sprintf("%.1f", summary.Median)))
	fmt.Fprintf(w, "\tLength StdDev:\t\t%s\n", green(fmt.Sprintf("%.2f", summary.StdDev)))
}

// PrintProgress is the verbose per-1000-reads progress line.
func PrintProgress(w io.Writer, stats RunStatistics) {
	fmt.Fprintf(w, "%s processed %d reads (%d bases)\n", color.CyanString("[progress]"), stats.TotalReads, stats.TotalBases)
}
