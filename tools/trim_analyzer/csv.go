package trim_analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeaders = []string{
	"TotalReads", "TotalBases", "GCCount", "AverageLength", "GCContent",
	"MinLength", "MaxLength", "MedianLength", "LengthStdDev",
}

func WriteCSVReport(filename string, stats RunStatistics) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeCSV(f, stats)
}

func writeCSV(w io.Writer, stats RunStatistics) error {
	summary := stats.SummarizeLengths()
	values := []string{
		strconv.Itoa(stats.TotalReads),
		strconv.Itoa(stats.TotalBases),
		strconv.Itoa(stats.GCCount),
		fmt.Sprintf("%.2f", stats.AverageLength()),
		fmt.Sprintf("%.2f", stats.GCContentPercent()),
		strconv.Itoa(summary.Min),
		strconv.Itoa(summary.Max),
		fmt.Sprintf("%.2f", summary.Median),
		fmt.Sprintf("%.2f", summary.StdDev),
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeaders); err != nil {
		return err
	}
	if err := writer.Write(values); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
