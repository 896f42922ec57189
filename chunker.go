package docsmcp

import (
	"iter"
	"strings"
)

// Default chunking parameters, measured in characters.
const (
	DefaultChunkSize    = 1200
	DefaultChunkOverlap = 150
)

// Windows yields overlapping windows of text. Window i starts at
// i*(size-overlap) and spans size characters, clipped to the end of the
// text. Iteration stops once a window reaches the end.
//
// A non-positive size falls back to DefaultChunkSize, a negative overlap
// is treated as zero and an overlap of size or more is clamped to size-1.
func Windows(text string, size, overlap int) iter.Seq[string] {
	size, overlap = clampWindow(size, overlap)
	return func(yield func(string) bool) {
		runes := []rune(text)
		n := len(runes)
		step := size - overlap
		for start := 0; start < n; start += step {
			end := min(start+size, n)
			if !yield(string(runes[start:end])) {
				return
			}
			if end == n {
				return
			}
		}
	}
}

// SplitText collects Windows into a slice.
func SplitText(text string, size, overlap int) []string {
	var chunks []string
	for w := range Windows(text, size, overlap) {
		chunks = append(chunks, w)
	}
	return chunks
}

// SplitNonBlank is SplitText without whitespace-only windows.
func SplitNonBlank(text string, size, overlap int) []string {
	var chunks []string
	for w := range Windows(text, size, overlap) {
		if strings.TrimSpace(w) == "" {
			continue
		}
		chunks = append(chunks, w)
	}
	return chunks
}

func clampWindow(size, overlap int) (int, int) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return size, overlap
}
