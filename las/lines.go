package las

import (
	"iter"
	"slices"
	"strings"
)

// contentLines yields the trimmed lines of body that are neither comments
// nor blank, in order. The sequence can be ranged over any number of times.
func contentLines(body string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for raw := range strings.Lines(body) {
			line := strings.TrimSpace(raw)
			if line == "" || isComment(line) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// filterLines collects contentLines into a slice.
func filterLines(body string) []string {
	return slices.Collect(contentLines(body))
}

// isComment reports whether an already trimmed line is a comment.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
