package las

import (
	"strings"
	"unicode"
)

// SectionKey identifies a LAS section by the letter that follows the ~
// sentinel on its header line.
type SectionKey byte

const (
	// SectionVersion is the ~V section (VERS and WRAP).
	SectionVersion SectionKey = 'V'
	// SectionWell is the ~W section (well identification).
	SectionWell SectionKey = 'W'
	// SectionCurve is the ~C section (one entry per data column).
	SectionCurve SectionKey = 'C'
	// SectionParameter is the ~P section (log parameters).
	SectionParameter SectionKey = 'P'
	// SectionOther is the ~O section (free text).
	SectionOther SectionKey = 'O'
	// SectionASCII is the ~A section (the data matrix).
	SectionASCII SectionKey = 'A'
)

// String returns the conventional section title.
func (k SectionKey) String() string {
	switch k {
	case SectionVersion:
		return "VERSION"
	case SectionWell:
		return "WELL"
	case SectionCurve:
		return "CURVE"
	case SectionParameter:
		return "PARAMETER"
	case SectionOther:
		return "OTHER"
	case SectionASCII:
		return "ASCII"
	default:
		return "UNKNOWN"
	}
}

// section returns the raw text of the first section introduced by key,
// starting at its header line and ending just before the next header line
// or at the end of text.
func section(text string, key SectionKey) (string, bool) {
	start := -1
	offset := 0
	for raw := range strings.Lines(text) {
		if header, ok := headerKey(raw); ok {
			if start >= 0 {
				return text[start:offset], true
			}
			if header == key {
				start = offset
			}
		}
		offset += len(raw)
	}
	if start < 0 {
		return "", false
	}
	return text[start:], true
}

// sectionLines returns the filtered lines of a section with its header line
// dropped.
func sectionLines(text string, key SectionKey) ([]string, bool) {
	body, ok := section(text, key)
	if !ok {
		return nil, false
	}
	lines := filterLines(body)
	if len(lines) > 0 {
		lines = lines[1:]
	}
	return lines, true
}

// dataBody returns the data section without its raw header line. Data lines
// are not comment filtered.
func dataBody(text string) (string, bool) {
	body, ok := section(text, SectionASCII)
	if !ok {
		return "", false
	}
	_, rest, _ := strings.Cut(body, "\n")
	return rest, true
}

// headerKey reports whether line is a section header and which key it opens.
func headerKey(line string) (SectionKey, bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(line, "~") {
		return 0, false
	}
	if len(line) < 2 {
		return 0, true
	}
	return SectionKey(unicode.ToUpper(rune(line[1]))), true
}
