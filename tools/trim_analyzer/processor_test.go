package trim_analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope_go/config"
)

// Three records with 26-27 base sequences and 28 character quality strings.
const sampleFastq = `@SEQ_ID_1
GATTTGGGGTTTAAACCCGTTTGGGA
+
!''*((((***+))%%%++)(%%%%).1
@SEQ_ID_2
TAAACCCGGTTTGGGGAATTTCCCGGG
+
!''*((((***+))%%%++)(%%%%).1
@SEQ_ID_3
GGGTTTAAACCCGTTTGGGGAATTTCC
+
!''*((((***+))%%%++)(%%%%).1
`

func process(t *testing.T, input string, trimLength int) (RunStatistics, string) {
	t.Helper()
	var out bytes.Buffer
	stats, err := NewProcessor(DefaultPipeline{TrimLength: trimLength}).Process(strings.NewReader(input), &out)
	require.NoError(t, err)
	return stats, out.String()
}

func parse(t *testing.T, text string) []FastqRecord {
	t.Helper()
	records, err := readAll(t, text)
	require.NoError(t, err)
	return records
}

func TestProcessTrimScenario(t *testing.T) {
	stats, out := process(t, sampleFastq, 20)

	assert.Equal(t, 3, stats.TotalReads)
	assert.Equal(t, 60, stats.TotalBases)
	assert.Equal(t, []int{20, 20, 20}, stats.Lengths)

	records := parse(t, out)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, fmt.Sprintf("@SEQ_ID_%d", i+1), rec.Header)
		assert.Equal(t, "+", rec.Plus)
		assert.Len(t, rec.Sequence, 20)
		assert.Len(t, rec.Quality, 20)
	}
	assert.Equal(t, "GATTTGGGGTTTAAACCCGT", records[0].Sequence)
	assert.Equal(t, "!''*((((***+))%%%++)", records[0].Quality)
}

func TestProcessRecordCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 2500} {
		t.Run(fmt.Sprintf("%d_records", n), func(t *testing.T) {
			stats, _ := process(t, generateFastq(n, 12), 0)
			assert.Equal(t, n, stats.TotalReads)
			assert.Len(t, stats.Lengths, n)
		})
	}
}

func TestProcessNoOpTrim(t *testing.T) {
	for _, trim := range []int{0, -5} {
		t.Run(fmt.Sprintf("trim_%d", trim), func(t *testing.T) {
			_, out := process(t, sampleFastq, trim)
			assert.Equal(t, sampleFastq, out)
		})
	}
}

func TestProcessTrimLongerThanReads(t *testing.T) {
	stats, out := process(t, sampleFastq, 500)

	assert.Equal(t, parse(t, sampleFastq), parse(t, out))
	assert.Equal(t, 26+27+27, stats.TotalBases)
	assert.Equal(t, []int{26, 27, 27}, stats.Lengths)
}

func TestProcessTrimIdempotence(t *testing.T) {
	for _, l := range []int{1, 10, 26, 27, 40} {
		t.Run(fmt.Sprintf("L=%d", l), func(t *testing.T) {
			onceStats, once := process(t, sampleFastq, l)
			twiceStats, twice := process(t, once, l)

			assert.Equal(t, once, twice)
			assert.Equal(t, onceStats, twiceStats)
			for i, rec := range parse(t, twice) {
				orig := parse(t, sampleFastq)[i]
				assert.Len(t, rec.Sequence, min(l, len(orig.Sequence)))
			}
		})
	}
}

func TestProcessLengthConsistency(t *testing.T) {
	stats, out := process(t, sampleFastq, 26)
	records := parse(t, out)

	require.Len(t, stats.Lengths, len(records))
	for i, rec := range records {
		assert.Equal(t, stats.Lengths[i], len(rec.Sequence))
		assert.Equal(t, stats.Lengths[i], len(rec.Quality))
	}
}

func TestProcessGCContent(t *testing.T) {
	allAT := "@a\nATTA\n+\nIIII\n@b\natat\n+\nIIII\n"
	allGC := "@a\nGCGC\n+\nIIII\n@b\ncgcg\n+\nIIII\n"

	stats, _ := process(t, allAT, 0)
	assert.Equal(t, 0.0, stats.GCContentPercent())

	stats, _ = process(t, allGC, 0)
	assert.Equal(t, 100.0, stats.GCContentPercent())

	// GC is counted on the trimmed sequence only.
	stats, _ = process(t, "@a\nGGAA\n+\nIIII\n", 2)
	assert.Equal(t, 2, stats.GCCount)
	assert.Equal(t, 100.0, stats.GCContentPercent())
}

func TestProcessEmptyInput(t *testing.T) {
	stats, out := process(t, "", 20)

	assert.Equal(t, 0, stats.TotalReads)
	assert.Equal(t, 0.0, stats.AverageLength())
	assert.Equal(t, 0.0, stats.GCContentPercent())
	assert.Empty(t, out)
}

func TestProcessMalformedRecord(t *testing.T) {
	input := "@r1\nACGTACGT\n+\nIIIIIIII\n@r2\nACGT\n"
	var out bytes.Buffer

	stats, err := NewProcessor(DefaultPipeline{TrimLength: 4}).Process(strings.NewReader(input), &out)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Record)
	assert.Equal(t, "@r2", malformed.Header)
	assert.Equal(t, "separator", malformed.Missing)

	assert.Equal(t, 1, stats.TotalReads)
	assert.Equal(t, "@r1\nACGT\n+\nIIII\n", out.String(), "records before the bad one are flushed")
}

func TestProcessCustomPipelineMatchesDefault(t *testing.T) {
	custom, err := NewPipeline(config.PipelineCustom, 20)
	require.NoError(t, err)
	assert.Equal(t, "custom", custom.Name())

	var out bytes.Buffer
	stats, err := NewProcessor(custom).Process(strings.NewReader(sampleFastq), &out)
	require.NoError(t, err)

	wantStats, want := process(t, sampleFastq, 20)
	assert.Equal(t, want, out.String())
	assert.Equal(t, wantStats, stats)
}

func TestProcessProgress(t *testing.T) {
	var seen []int
	processor := NewProcessor(DefaultPipeline{})
	processor.OnProgress = func(s RunStatistics) {
		seen = append(seen, s.TotalReads)
		s.Lengths[0] = -1 // snapshots must not alias the running statistics
	}

	stats, err := processor.Process(strings.NewReader(generateFastq(2500, 8)), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []int{1000, 2000}, seen)
	assert.Equal(t, 8, stats.Lengths[0])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestProcessWriteFailure(t *testing.T) {
	processor := NewProcessor(DefaultPipeline{})
	processor.OutputName = "out/trimmed.fastq"

	_, err := processor.Process(strings.NewReader(sampleFastq), failingWriter{})

	var writeErr *OutputWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "out/trimmed.fastq", writeErr.Path)
	assert.EqualError(t, errors.Unwrap(writeErr), "disk full")
}

func generateFastq(n, length int) string {
	var sb strings.Builder
	seq := strings.Repeat("ACGT", length/4+1)[:length]
	qual := strings.Repeat("I", length)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "@read_%d\n%s\n+\n%s\n", i, seq, qual)
	}
	return sb.String()
}
