package trim_analyzer

import (
	"errors"
	"io"
)

const DefaultProgressEvery = 1000

// Processor streams FASTQ records from input to output one at a time, applying
// Pipeline to each and accumulating RunStatistics.
type Processor struct {
	Pipeline Pipeline

	// OnProgress, if set, is called with a snapshot every ProgressEvery reads.
	OnProgress    func(RunStatistics)
	ProgressEvery int

	// OutputName labels write failures.
	OutputName string
}

func NewProcessor(p Pipeline) *Processor {
	return &Processor{Pipeline: p, ProgressEvery: DefaultProgressEvery, OutputName: "output"}
}

// Process returns the statistics for every record written. On a malformed record
// the records before it are flushed to out and the error is returned alongside
// the partial statistics.
func (p *Processor) Process(in io.Reader, out io.Writer) (RunStatistics, error) {
	var stats RunStatistics

	pipeline := p.Pipeline
	if pipeline == nil {
		pipeline = DefaultPipeline{}
	}
	reader := NewFastqReader(in)
	writer := NewFastqWriter(out)

	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ferr := writer.Flush(); ferr != nil {
				return stats, &OutputWriteError{Path: p.OutputName, Err: ferr}
			}
			return stats, err
		}

		rec = pipeline.Apply(rec)
		if err := writer.Write(rec); err != nil {
			return stats, &OutputWriteError{Path: p.OutputName, Err: err}
		}
		stats.Add(rec.Sequence)

		if p.OnProgress != nil && p.ProgressEvery > 0 && stats.TotalReads%p.ProgressEvery == 0 {
			p.OnProgress(stats.Clone())
		}
	}

	if err := writer.Flush(); err != nil {
		return stats, &OutputWriteError{Path: p.OutputName, Err: err}
	}
	return stats, nil
}
