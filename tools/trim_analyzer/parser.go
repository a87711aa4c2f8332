package trim_analyzer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 64 * 1024 * 1024

type FastqRecord struct {
	Header   string
	Sequence string
	Plus     string
	Quality  string
}

// FastqReader yields one 4-line record at a time. Lines are whitespace-trimmed.
type FastqReader struct {
	scanner *bufio.Scanner
	records int
}

func NewFastqReader(r io.Reader) *FastqReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &FastqReader{scanner: scanner}
}

// Next returns the next record, or io.EOF once the stream ends or an empty header
// line is reached. A record cut short after its header yields *MalformedRecordError.
func (fr *FastqReader) Next() (FastqRecord, error) {
	header, ok := fr.line()
	if !ok || header == "" {
		if err := fr.scanner.Err(); err != nil {
			return FastqRecord{}, fmt.Errorf("scanner error: %w", err)
		}
		return FastqRecord{}, io.EOF
	}
	fr.records++

	var rec FastqRecord
	rec.Header = header
	fields := []struct {
		name string
		dst  *string
	}{
		{"sequence", &rec.Sequence},
		{"separator", &rec.Plus},
		{"quality", &rec.Quality},
	}
	for _, f := range fields {
		line, ok := fr.line()
		if !ok {
			if err := fr.scanner.Err(); err != nil {
				return FastqRecord{}, fmt.Errorf("scanner error: %w", err)
			}
			return FastqRecord{}, &MalformedRecordError{Record: fr.records, Header: header, Missing: f.name}
		}
		*f.dst = line
	}
	return rec, nil
}

func (fr *FastqReader) line() (string, bool) {
	if !fr.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(fr.scanner.Text()), true
}

// FastqWriter writes records in 4-line form, each line terminated by '\n'.
type FastqWriter struct {
	w *bufio.Writer
}

func NewFastqWriter(w io.Writer) *FastqWriter {
	return &FastqWriter{w: bufio.NewWriter(w)}
}

func (fw *FastqWriter) Write(rec FastqRecord) error {
	for _, line := range [4]string{rec.Header, rec.Sequence, rec.Plus, rec.Quality} {
		if _, err := fw.w.WriteString(line); err != nil {
			return err
		}
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (fw *FastqWriter) Flush() error {
	return fw.w.Flush()
}
