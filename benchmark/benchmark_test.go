package benchmark

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReportsAndPassesError(t *testing.T) {
	var buf bytes.Buffer
	called := false

	err := Run(&buf, "ecoscope -i x.fastq", func() error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, buf.String(), "[Benchmark] Running: ecoscope -i x.fastq")
	assert.Contains(t, buf.String(), "[Benchmark] Time Elapsed:")
	assert.NotContains(t, buf.String(), "Run failed")

	buf.Reset()
	boom := errors.New("boom")
	assert.ErrorIs(t, Run(&buf, "failing", func() error { return boom }), boom)
	assert.Contains(t, buf.String(), "[Benchmark] Run failed: boom")
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	Diagnostics(&buf)

	assert.Contains(t, buf.String(), "[Diagnostics] Go Version: "+runtime.Version())
	assert.Contains(t, buf.String(), "[Diagnostics] OS/Arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}
