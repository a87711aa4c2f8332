package trim_analyzer

import "fmt"

// InputNotFoundError means the input path does not exist or cannot be opened.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %s not found or unreadable: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// UnsupportedFormatError rejects inputs whose extension is not a FASTQ suffix.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported input format %s for %s: please use FASTQ (.fastq, .fq)", ext, e.Path)
}

// OutputWriteError covers failures creating the output directory or writing any output file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// MalformedRecordError reports a record cut short by the end of the stream.
// Record is 1-based.
type MalformedRecordError struct {
	Record  int
	Header  string
	Missing string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %d (%s): stream ended before %s line", e.Record, e.Header, e.Missing)
}
