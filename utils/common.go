// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

// CountGC returns the number of G/C bases in seq. The count is case-insensitive;
// every other character (A, T, N, gaps) is ignored.
func CountGC(seq string) int {
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g', 'C', 'c':
			gc++
		}
	}
	return gc
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Truncate returns the first n bytes of s. A non-positive n, or one past the end of s,
// returns s unchanged; it never pads.
func Truncate(s string, n int) string {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
