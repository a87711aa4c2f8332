package sanity_check

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"ecoscope_go/config" // Version control file
	"ecoscope_go/tools/trim_analyzer"
)

const selfTestFastq = `@SEQ_ID_1
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

// Run trims a small in-memory FASTQ to 20 bases and checks the resulting
// statistics, printing a helpful message and version number.
func Run(w io.Writer) error {
	processor := trim_analyzer.NewProcessor(trim_analyzer.DefaultPipeline{TrimLength: 20})
	var out bytes.Buffer
	stats, err := processor.Process(strings.NewReader(selfTestFastq), &out)
	if err != nil {
		return fmt.Errorf("self test failed: %w", err)
	}
	if stats.TotalReads != 3 || stats.TotalBases != 60 {
		return fmt.Errorf("self test failed: got %d reads / %d bases, want 3 / 60", stats.TotalReads, stats.TotalBases)
	}
	fmt.Fprintf(w, "Successfully running EcoScope 16S Analyzer! (%s)\n", config.Main_version)
	return nil
}
