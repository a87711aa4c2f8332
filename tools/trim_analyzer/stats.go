package trim_analyzer

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	common "ecoscope_go/utils"
)

// RunStatistics accumulates per-read counts over a single pass. Lengths holds
// one post-trim length per read, in read order.
type RunStatistics struct {
	TotalReads int
	TotalBases int
	GCCount    int
	Lengths    []int
}

// Add records one (already trimmed) sequence.
func (s *RunStatistics) Add(seq string) {
	s.TotalReads++
	s.TotalBases += len(seq)
	s.GCCount += common.CountGC(seq)
	s.Lengths = append(s.Lengths, len(seq))
}

func (s RunStatistics) AverageLength() float64 {
	if s.TotalReads == 0 {
		return 0
	}
	return float64(s.TotalBases) / float64(s.TotalReads)
}

func (s RunStatistics) GCContentPercent() float64 {
	return common.Percent(s.GCCount, s.TotalBases)
}

// Clone returns a copy that shares no memory with s.
func (s RunStatistics) Clone() RunStatistics {
	out := s
	out.Lengths = append([]int(nil), s.Lengths...)
	return out
}

// Merge combines s with a statistics block that follows it in file order.
// Neither operand is modified.
func (s RunStatistics) Merge(next RunStatistics) RunStatistics {
	lengths := make([]int, 0, len(s.Lengths)+len(next.Lengths))
	lengths = append(lengths, s.Lengths...)
	lengths = append(lengths, next.Lengths...)
	return RunStatistics{
		TotalReads: s.TotalReads + next.TotalReads,
		TotalBases: s.TotalBases + next.TotalBases,
		GCCount:    s.GCCount + next.GCCount,
		Lengths:    lengths,
	}
}

// LengthSummary describes the post-trim length distribution.
type LengthSummary struct {
	Min    int
	Max    int
	Median float64
	StdDev float64
}

// SummarizeLengths is zero-valued for an empty run.
func (s RunStatistics) SummarizeLengths() LengthSummary {
	if len(s.Lengths) == 0 {
		return LengthSummary{}
	}
	values := lengthsToFloats(s.Lengths)
	_, std := stat.PopMeanStdDev(values, nil)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return LengthSummary{
		Min:    int(floats.Min(values)),
		Max:    int(floats.Max(values)),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev: std,
	}
}

func lengthsToFloats(lengths []int) []float64 {
	out := make([]float64, len(lengths))
	for i, l := range lengths {
		out[i] = float64(l)
	}
	return out
}
