package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{LAS, "LAS"},
		{CSV, "CSV"},
		{TSV, "TSV"},
		{JSON, "JSON"},
		{Markdown, "Markdown"},
		{HTML, "HTML"},
		{YAML, "YAML"},
		{PNG, "PNG"},
		{SVG, "SVG"},
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{LAS, ".las"},
		{CSV, ".csv"},
		{TSV, ".tsv"},
		{JSON, ".json"},
		{Markdown, ".md"},
		{HTML, ".html"},
		{YAML, ".yaml"},
		{PNG, ".png"},
		{SVG, ".svg"},
		{PDF, ".pdf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsImage(t *testing.T) {
	for _, f := range []Format{PNG, SVG, PDF} {
		if !f.IsImage() {
			t.Errorf("%s.IsImage() = false, want true", f)
		}
	}
	for _, f := range []Format{LAS, CSV, HTML, Unknown} {
		if f.IsImage() {
			t.Errorf("%s.IsImage() = true, want false", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"well.las", LAS},
		{"WELL.LAS", LAS},
		{"/data/logs/a10.Las", LAS},
		{"out.csv", CSV},
		{"out.tsv", TSV},
		{"out.tab", TSV},
		{"out.json", JSON},
		{"README.md", Markdown},
		{"notes.markdown", Markdown},
		{"report.html", HTML},
		{"report.htm", HTML},
		{"header.yml", YAML},
		{"header.yaml", YAML},
		{"track.png", PNG},
		{"track.svg", SVG},
		{"track.pdf", PDF},
		{"well.dlis", Unknown},
		{"noextension", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"csv", CSV, false},
		{"CSV", CSV, false},
		{".tsv", TSV, false},
		{"md", Markdown, false},
		{"markdown", Markdown, false},
		{"yml", YAML, false},
		{" json ", JSON, false},
		{"png", PNG, false},
		{"", Unknown, true},
		{"xlsx", Unknown, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"version first", "~VERSION INFORMATION\n VERS. 2.0 :\n", LAS},
		{"lower case", "~version\n", LAS},
		{"after comments", "# LAS format log file from PETREL\n#====\n\n~Version Information\n", LAS},
		{"byte order mark", "\ufeff~V\n", LAS},
		{"indented", "   ~V\n", LAS},
		{"other section first", "~W\nSTRT.M 1 :\n", Unknown},
		{"csv", "DEPT,GR\n1,2\n", Unknown},
		{"only comments", "# nothing here\n", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	// Longer than the inspected prefix.
	data := "~V\n" + strings.Repeat("# padding\n", 100)
	got, err := DetectFromReader(bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error: %v", err)
	}
	if got != LAS {
		t.Errorf("DetectFromReader() = %v, want LAS", got)
	}

	// Shorter than the inspected prefix.
	got, err = DetectFromReader(strings.NewReader("~V\n"))
	if err != nil {
		t.Fatalf("DetectFromReader() error: %v", err)
	}
	if got != LAS {
		t.Errorf("DetectFromReader() = %v, want LAS", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestDetectFromReaderError(t *testing.T) {
	if _, err := DetectFromReader(failingReader{}); err == nil {
		t.Error("expected read error to be returned")
	}
}
