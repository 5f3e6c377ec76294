// Package parser turns a raw command line into a structured parse result.
// It normalizes whitespace in place, splits the line into a command name
// and arguments, and classifies each argument by its leading token
// character.
package parser

// Normalize scrubs whitespace from buf[:n] in place and returns the new
// effective length. Three passes: strip leading spaces, strip trailing
// spaces, collapse interior runs of two or more spaces into one. An empty
// or all-space buffer reduces to length 0; every index computation is
// guarded against underflow.
func Normalize(buf []byte, n int) int {
	if n > len(buf) {
		n = len(buf)
	}

	// Leading spaces.
	start := 0
	for start < n && buf[start] == ' ' {
		start++
	}
	if start > 0 {
		copy(buf, buf[start:n])
		n -= start
	}

	// Trailing spaces.
	for n > 0 && buf[n-1] == ' ' {
		n--
	}

	// Interior runs. Compact in a single writer pass instead of the
	// quadratic shift-left of repeated deletes.
	w := 0
	for r := 0; r < n; r++ {
		if buf[r] == ' ' && w > 0 && buf[w-1] == ' ' {
			continue
		}
		buf[w] = buf[r]
		w++
	}
	return w
}
