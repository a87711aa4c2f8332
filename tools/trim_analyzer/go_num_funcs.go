package trim_analyzer

import (
	"errors"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const HistogramBins = 30

var errNoLengths = errors.New("no read lengths to plot")

// BinLengths splits [min, max] of lengths into n equal-width bins and counts
// each length into one. The max value lands in the last bin. A zero-width range
// uses width 1 so every read falls into the first bin.
func BinLengths(lengths []int, n int) ([]plotter.HistogramBin, float64) {
	if len(lengths) == 0 || n <= 0 {
		return nil, 0
	}
	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	binWidth := float64(maxLen-minLen) / float64(n)
	if binWidth == 0 {
		binWidth = 1
	}
	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i].Min = float64(minLen) + binWidth*float64(i)
		bins[i].Max = float64(minLen) + binWidth*float64(i+1)
	}

	for _, l := range lengths {
		bin := int(float64(l-minLen) / binWidth)
		if bin >= n {
			bin = n - 1
		}
		bins[bin].Weight++
	}
	return bins, binWidth
}

// NewLengthHistogramPlot builds the read-length histogram for lengths.
func NewLengthHistogramPlot(lengths []int) (*plot.Plot, error) {
	if len(lengths) == 0 {
		return nil, errNoLengths
	}
	bins, width := BinLengths(lengths, HistogramBins)

	p := plot.New()
	p.Title.Text = "Sequence Length Distribution"
	p.X.Label.Text = "Sequence Length (bp)"
	p.Y.Label.Text = "Read Count"
	p.Add(plotter.NewGrid())

	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     width,
		FillColor: color.RGBA{R: 50, G: 100, B: 200, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	hist.LineStyle.Color = color.Black
	p.Add(hist)
	return p, nil
}

// WriteHistogramPNG renders the histogram of lengths to path as an 8x4 inch PNG.
func WriteHistogramPNG(path string, lengths []int) (err error) {
	p, err := NewLengthHistogramPlot(lengths)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = writer.WriteTo(f)
	return err
}
