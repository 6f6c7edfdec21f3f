package las

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/lasgo/internal/fixtures"
)

func TestVersion(t *testing.T) {
	v, err := New(fixtures.Example1).Version()
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if v != 2.0 {
		t.Errorf("Version() = %v, want 2.0", v)
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		t.Errorf("Version() = %v, want a finite positive number", v)
	}
}

func TestVersionInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty token", "~V\nVERS.    : CWLS\nWRAP. NO : one line\n"},
		{"no version section", "~W\nSTRT.M 1 : start\n"},
		{"empty document", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.text).Version()
			if !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("Version() error = %v, want ErrInvalidVersion", err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if New(fixtures.Example1).Wrap() {
		t.Error("Example1 declares WRAP NO")
	}
	if !New(fixtures.Wrapped).Wrap() {
		t.Error("Wrapped declares WRAP YES")
	}
	if New("~W\n").Wrap() {
		t.Error("missing version section must read as no wrap")
	}
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"example1", fixtures.Example1, fixtures.Example1Headers},
		{"petrel", fixtures.Petrel, fixtures.PetrelHeaders},
		{"wrapped", fixtures.Wrapped, []string{"DEPT", "GR", "NPHI"}},
		{"no curve section", "~V\nVERS. 2.0 :\n", []string{}},
		{"no dot", "~C\nDEPT  : depth\n", []string{"DEPT  : depth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, New(tt.text).Headers()); diff != "" {
				t.Errorf("Headers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColumn(t *testing.T) {
	l := New(fixtures.Example1)

	got, err := l.Column("DEPT")
	if err != nil {
		t.Fatalf("Column(DEPT) error: %v", err)
	}
	want := []float64{1670.0, 1669.875, 1669.75, 1669.745}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Column(DEPT) mismatch (-want +got):\n%s", diff)
	}

	data := l.Data()
	for i, v := range got {
		if v != data[i][0] {
			t.Errorf("Column(DEPT)[%d] = %v, want first value of row %v", i, v, data[i])
		}
	}

	nphi, err := l.Column("NPHI")
	if err != nil {
		t.Fatalf("Column(NPHI) error: %v", err)
	}
	if diff := cmp.Diff([]float64{0.45, 0.45, 0.45, -999.25}, nphi); diff != "" {
		t.Errorf("Column(NPHI) mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnNotFound(t *testing.T) {
	l := New(fixtures.Example1)
	for _, name := range []string{"GR", "dept", ""} {
		if _, err := l.Column(name); !errors.Is(err, ErrFieldNotFound) {
			t.Errorf("Column(%q) error = %v, want ErrFieldNotFound", name, err)
		}
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCols int
		wantRows int
	}{
		{"example1", fixtures.Example1, 8, 4},
		{"petrel", fixtures.Petrel, 6, 5},
		{"wrapped", fixtures.Wrapped, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.text)
			if got := l.ColumnCount(); got != tt.wantCols {
				t.Errorf("ColumnCount() = %d, want %d", got, tt.wantCols)
			}
			if got := l.RowCount(); got != tt.wantRows {
				t.Errorf("RowCount() = %d, want %d", got, tt.wantRows)
			}
			if len(l.Headers()) != l.ColumnCount() {
				t.Error("len(Headers()) != ColumnCount()")
			}
			if len(l.Data()) != l.RowCount() {
				t.Error("len(Data()) != RowCount()")
			}
			for i, row := range l.Data() {
				if len(row) != l.ColumnCount() {
					t.Errorf("row %d has %d values, want %d", i, len(row), l.ColumnCount())
				}
			}
		})
	}
}

func TestHeadersAndDesc(t *testing.T) {
	want := []HeaderDesc{
		{"DEPT", "DEPTH"},
		{"DT", "SONIC TRANSIT TIME"},
		{"RHOB", "BULK DENSITY"},
		{"NPHI", "NEUTRON POROSITY"},
		{"SFLU", "SHALLOW RESISTIVITY"},
		{"SFLA", "SHALLOW RESISTIVITY"},
		{"ILM", "MEDIUM RESISTIVITY"},
		{"ILD", "DEEP RESISTIVITY"},
	}
	if diff := cmp.Diff(want, New(fixtures.Example1).HeadersAndDesc()); diff != "" {
		t.Errorf("HeadersAndDesc() mismatch (-want +got):\n%s", diff)
	}
}

func TestOther(t *testing.T) {
	want := "Note: The logging tools became stuck at 625 metres causing the data\n" +
		"between 625 metres and 615 metres to be invalid."
	if got := New(fixtures.Example1).Other(); got != want {
		t.Errorf("Other() = %q, want %q", got, want)
	}
	if got := New(fixtures.Petrel).Other(); got != "" {
		t.Errorf("Other() = %q, want empty string", got)
	}
}

func TestNullValue(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{"example1", fixtures.Example1, -999.25, true},
		{"petrel", fixtures.Petrel, -999.25, true},
		{"no well section", "~V\nVERS. 2.0 :\n", 0, false},
		{"not a number", "~W\nNULL.  none : null\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.text).NullValue()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NullValue() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	want := Diagnostics{HasVersion: true, Wrap: true, Curves: 3, Rows: 2}
	if got := New(fixtures.Wrapped).Diagnostics(); got != want {
		t.Errorf("Diagnostics() = %+v, want %+v", got, want)
	}
}

func TestNewBytes(t *testing.T) {
	b := []byte(fixtures.Example1)
	l := NewBytes(b)
	b[0] = 'X'
	if l.Text() != fixtures.Example1 {
		t.Error("NewBytes must copy its input")
	}
}

func TestConcurrentAccess(t *testing.T) {
	l := New(fixtures.Example1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Version(); err != nil {
				t.Errorf("Version() error: %v", err)
			}
			if n := len(l.Data()); n != 4 {
				t.Errorf("len(Data()) = %d, want 4", n)
			}
			if n := len(l.WellInfo()); n != 12 {
				t.Errorf("len(WellInfo()) = %d, want 12", n)
			}
		}()
	}
	wg.Wait()
}
