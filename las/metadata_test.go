package las

import (
	"testing"

	"github.com/tsawler/lasgo/internal/fixtures"
)

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Metadata
	}{
		{
			name: "cwls layout",
			text: `~VERSION INFORMATION
    VERS.                          2.0 :   CWLS LOG ASCII STANDARD -VERSION 2.0
    WRAP.                          NO  :   ONE LINE PER DEPTH STEP
    ~WELL INFORMATION`,
			want: Metadata{Version: 2.0, HasVersion: true, Wrap: false},
		},
		{
			name: "empty version token",
			text: `~VERSION INFORMATION
    VERS.                           :   CWLS LOG ASCII STANDARD -VERSION 2.0
    WRAP.                           :   ONE LINE PER DEPTH STEP
    ~WELL INFORMATION`,
			want: Metadata{},
		},
		{
			name: "petrel banner",
			text: `# LAS format log file from PETREL
    # Project units are specified as depth units
    #==================================================================
    ~Version Information
    VERS.   2.0:
    WRAP.   NO:
    #==================================================================`,
			want: Metadata{Version: 2.0, HasVersion: true},
		},
		{
			name: "wrapped",
			text: "~V\nVERS. 1.2 : v\nWRAP. YES : w\n",
			want: Metadata{Version: 1.2, HasVersion: true, Wrap: true},
		},
		{
			name: "wrap mixed case with padding",
			text: "~V\nVERS. 2.0 : v\nWRAP.   yEs   : w\n",
			want: Metadata{Version: 2.0, HasVersion: true, Wrap: true},
		},
		{
			name: "wrap line missing",
			text: "~V\nVERS. 2.0 : v\n~W\n",
			want: Metadata{Version: 2.0, HasVersion: true},
		},
		{
			name: "no version section",
			text: "~W\nSTRT.M 10 : start\n",
			want: Metadata{},
		},
		{
			name: "version is not a number",
			text: "~V\nVERS. two : v\nWRAP. YES : w\n",
			want: Metadata{Wrap: true},
		},
		{
			name: "blank and comment lines between entries",
			text: "~V\n\n# c\nVERS. 3.0 : v\n\n# c\nWRAP. NO : w\n",
			want: Metadata{Version: 3.0, HasVersion: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeMetadata(tt.text); got != tt.want {
				t.Errorf("decodeMetadata() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMetaValue(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"VERS.                          2.0 :   CWLS LOG ASCII STANDARD", "2.0"},
		{"VERS.   2.0:", "2.0"},
		{"VERS.  :", ""},
		{"VERS.", ""},
		{"WRAP.   NO:", "NO"},
	}
	for _, tt := range tests {
		if got := metaValue(tt.line); got != tt.want {
			t.Errorf("metaValue(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"2.0", 2.0, true},
		{"1.20", 1.2, true},
		{" 3 ", 3, true},
		{"", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"v2", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseVersion(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseVersion(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseWrap(t *testing.T) {
	for _, raw := range []string{"YES", "yes", " Yes "} {
		if !parseWrap(raw) {
			t.Errorf("parseWrap(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"NO", "", "Y", "YES PLEASE", "1"} {
		if parseWrap(raw) {
			t.Errorf("parseWrap(%q) = true, want false", raw)
		}
	}
}

func TestMetadataFixtures(t *testing.T) {
	if m := New(fixtures.Example1).Metadata(); !m.HasVersion || m.Version != 2.0 || m.Wrap {
		t.Errorf("Example1 metadata = %+v", m)
	}
	if m := New(fixtures.Wrapped).Metadata(); !m.HasVersion || !m.Wrap {
		t.Errorf("Wrapped metadata = %+v", m)
	}
}
