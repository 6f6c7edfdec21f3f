// Package format provides file format detection and naming for the lasgo
// library: the LAS input format and the export targets.
package format

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input or output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// LAS indicates a Log ASCII Standard well-log file.
	LAS
	// CSV indicates comma-separated values.
	CSV
	// TSV indicates tab-separated values.
	TSV
	// JSON indicates a JSON document.
	JSON
	// Markdown indicates a Markdown document.
	Markdown
	// HTML indicates an HTML document.
	HTML
	// YAML indicates a YAML document.
	YAML
	// PNG indicates a PNG image.
	PNG
	// SVG indicates an SVG image.
	SVG
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case LAS:
		return "LAS"
	case CSV:
		return "CSV"
	case TSV:
		return "TSV"
	case JSON:
		return "JSON"
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	case YAML:
		return "YAML"
	case PNG:
		return "PNG"
	case SVG:
		return "SVG"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case LAS:
		return ".las"
	case CSV:
		return ".csv"
	case TSV:
		return ".tsv"
	case JSON:
		return ".json"
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	case YAML:
		return ".yaml"
	case PNG:
		return ".png"
	case SVG:
		return ".svg"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// IsImage reports whether the format is a plot output.
func (f Format) IsImage() bool {
	return f == PNG || f == SVG || f == PDF
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".las":
		return LAS
	case ".csv":
		return CSV
	case ".tsv", ".tab":
		return TSV
	case ".json":
		return JSON
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".yaml", ".yml":
		return YAML
	case ".png":
		return PNG
	case ".svg":
		return SVG
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// Parse resolves a format name as typed on a command line ("csv", "md",
// "markdown", "yml", ...). A leading dot is accepted.
func Parse(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Unknown, fmt.Errorf("empty format name")
	}
	if !strings.HasPrefix(key, ".") {
		key = "." + key
	}
	if key == ".markdown" {
		return Markdown, nil
	}
	if f := Detect(key); f != Unknown {
		return f, nil
	}
	return Unknown, fmt.Errorf("unknown format %q", name)
}

// magicSize is how much of the input DetectFromReader inspects.
const magicSize = 512

// DetectFromMagic checks the start of a file to determine its format. A LAS
// file is recognised when its first line that is neither blank nor a comment
// opens the version section (~V). Returns Unknown otherwise.
func DetectFromMagic(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimPrefix(line, "\ufeff")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) >= 2 && line[0] == '~' && (line[1] == 'V' || line[1] == 'v') {
			return LAS
		}
		return Unknown
	}
	return Unknown
}

// DetectFromReader inspects the first bytes of r to determine its format.
// This is more reliable than extension-based detection for files with
// nonstandard names.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, magicSize)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
