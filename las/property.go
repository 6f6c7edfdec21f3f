package las

import (
	"strings"
	"unicode"
)

// UnknownTitle is used when no mnemonic can be read from a line.
const UnknownTitle = "UNKNOWN"

// noUnit stands in for an empty unit field while a line is tokenized.
const noUnit = "none"

// Property is one MNEMONIC.UNIT VALUE : DESCRIPTION entry of the well,
// curve or parameter section.
type Property struct {
	Title       string `json:"title" yaml:"title"`
	Unit        string `json:"unit" yaml:"unit"`
	Description string `json:"description" yaml:"description"`
	Value       string `json:"value" yaml:"value"`
}

// parseProperty tokenizes a single filtered line. The rules run in a fixed
// order: normalizeDot, splitTitle, splitUnit, splitDescription, splitValue.
func parseProperty(line string) Property {
	line = normalizeDot(line)
	return Property{
		Title:       splitTitle(line),
		Unit:        splitUnit(line),
		Description: splitDescription(line),
		Value:       splitValue(line),
	}
}

// normalizeDot replaces a dot standing alone between whitespace, before the
// first colon, with the noUnit placeholder, so "NULL . -999.25 :" reads as
// "NULL none -999.25 :".
func normalizeDot(line string) string {
	loc := standaloneDot.get().FindStringIndex(line)
	if loc == nil {
		return line
	}
	if colon := strings.IndexByte(line, ':'); colon >= 0 && loc[0] > colon {
		return line
	}
	return line[:loc[0]] + " " + noUnit + " " + line[loc[1]:]
}

// splitTitle returns the mnemonic: everything before the first run of dots
// or whitespace.
func splitTitle(line string) string {
	parts := titleSeparator.get().Split(line, 2)
	title := strings.TrimSpace(parts[0])
	if title == "" {
		return UnknownTitle
	}
	return title
}

// splitUnit returns the token that follows the mnemonic and its dot, up to
// the first whitespace.
func splitUnit(line string) string {
	unit, _ := cutUnit(line)
	if strings.TrimSpace(unit) == noUnit {
		return ""
	}
	return unit
}

// splitDescription returns the text after the first colon, with leading
// numeric codes removed.
func splitDescription(line string) string {
	_, desc, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	desc = strings.TrimSpace(desc)
	return leadingCodes.get().ReplaceAllString(desc, "")
}

// splitValue returns the value field: the text between the unit and the
// first colon. Fields are delimited by inner runs of two or more whitespace
// characters, which keeps multi-word values such as well names intact. The
// stripped mnemonic counts as the first field, so when two or more fields
// remain the second to last one is the value.
func splitValue(line string) string {
	head, _, _ := strings.Cut(line, ":")
	_, rest := cutUnit(head)
	fields := wideSpace.get().Split(strings.TrimSpace(rest), -1)
	if len(fields) > 1 {
		return strings.TrimSpace(fields[len(fields)-2])
	}
	return strings.TrimSpace(fields[len(fields)-1])
}

// cutUnit splits line after the mnemonic prefix into the unit token and the
// remainder that follows it.
func cutUnit(line string) (unit, rest string) {
	loc := mnemonicPrefix.get().FindStringIndex(line)
	if loc == nil {
		return "", ""
	}
	tail := line[loc[1]:]
	if i := strings.IndexFunc(tail, unicode.IsSpace); i >= 0 {
		return tail[:i], tail[i:]
	}
	return tail, ""
}

// parseProperties parses every filtered, header-stripped line of a section
// in document order.
func parseProperties(text string, key SectionKey) ([]Property, bool) {
	lines, ok := sectionLines(text, key)
	if !ok {
		return nil, false
	}
	props := make([]Property, 0, len(lines))
	for _, line := range lines {
		props = append(props, parseProperty(line))
	}
	return props, true
}

// propertyMap indexes props by title. Later duplicates win.
func propertyMap(props []Property) map[string]Property {
	m := make(map[string]Property, len(props))
	for _, p := range props {
		m[p.Title] = p
	}
	return m
}
