package las

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterLines(t *testing.T) {
	input := `#remove me
    #    still remove me
    retain me
      retain me but trimmed  

    123 retain`

	want := []string{"retain me", "retain me but trimmed", "123 retain"}
	if diff := cmp.Diff(want, filterLines(input)); diff != "" {
		t.Errorf("filterLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterLinesCRLF(t *testing.T) {
	input := "~V\r\nVERS. 2.0 :\r\n\r\n# note\r\nWRAP. NO :\r\n"
	want := []string{"~V", "VERS. 2.0 :", "WRAP. NO :"}
	if diff := cmp.Diff(want, filterLines(input)); diff != "" {
		t.Errorf("filterLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestContentLinesRestartable(t *testing.T) {
	seq := contentLines("a\n#b\nc\n\nd")

	var first, second []string
	for line := range seq {
		first = append(first, line)
	}
	for line := range seq {
		second = append(second, line)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}

	// Stopping early must not yield further lines.
	var got []string
	for line := range seq {
		got = append(got, line)
		if line == "c" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "c"}, got); diff != "" {
		t.Errorf("early break mismatch (-want +got):\n%s", diff)
	}
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"# comment", true},
		{"#", true},
		{"DEPT.M : # not a comment", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isComment(tt.line); got != tt.want {
			t.Errorf("isComment(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
