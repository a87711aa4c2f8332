// benchmark.go
// Opt-in run benchmarking and environment diagnostics
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Diagnostics reports host and OS information for repeatability.
// It is only called when explicitly requested at startup.
func Diagnostics(w io.Writer) {
	fmt.Fprintln(w, "[Diagnostics] Timestamp:", time.Now().Format(time.RFC1123)) // Run begin time
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Diagnostics] Hostname:", host)
	}
	if wd, err := os.Getwd(); err == nil {
		fmt.Fprintln(w, "[Diagnostics] Working Directory:", wd)
	}
	fmt.Fprintln(w, "[Diagnostics] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Diagnostics] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "[Diagnostics] CPU Cores: %d\n", runtime.NumCPU())
}

// Run wraps f to measure its runtime and memory usage. The error from f is
// returned unchanged; the report is printed either way.
func Run(w io.Writer, label string, f func() error) error {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart) // Memory usage before running the function
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	// Report resource usage
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", megabytes(memEnd.TotalAlloc-memStart.TotalAlloc)) // Total memory ever allocated during run
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", megabytes(memEnd.HeapAlloc))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] Total System Memory Allocated: %.2f MB\n", megabytes(memEnd.Sys))
	if err != nil {
		fmt.Fprintf(w, "[Benchmark] Run failed: %v\n", err)
	}
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return err
}

func megabytes(b uint64) float64 {
	return float64(b) / 1024.0 / 1024.0
}
