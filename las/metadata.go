package las

import (
	"math"
	"strconv"
	"strings"
)

// Metadata holds the two mandatory entries of the version section.
type Metadata struct {
	// Version is the declared LAS version. Only meaningful when HasVersion is true.
	Version float64
	// HasVersion is false when the version line is missing or unparseable.
	HasVersion bool
	// Wrap is true when the WRAP value is "YES" in any letter case.
	Wrap bool
}

// decodeMetadata reads the version and wrap lines of the version section.
// The lines are taken by position (first is VERS, second is WRAP), not by
// mnemonic.
func decodeMetadata(text string) Metadata {
	lines, _ := sectionLines(text, SectionVersion)

	var m Metadata
	if len(lines) > 0 {
		m.Version, m.HasVersion = parseVersion(metaValue(lines[0]))
	}
	if len(lines) > 1 {
		m.Wrap = parseWrap(metaValue(lines[1]))
	}
	return m
}

// metaValue returns the raw value field of a version section line, or ""
// when the line has none.
func metaValue(line string) string {
	parts := metaSeparator.get().Split(line, 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func parseVersion(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func parseWrap(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "yes")
}
