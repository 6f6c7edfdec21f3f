// Package stats summarizes the curves of a LAS log.
//
// Samples equal to the file's NULL value and NaN samples are treated as
// missing: they are counted in Summary.Nulls and left out of every other
// statistic.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/lasgo/las"
)

// Summary describes the valid samples of one curve.
type Summary struct {
	Curve string `json:"curve" yaml:"curve"`
	// Count is the number of valid samples.
	Count int `json:"count" yaml:"count"`
	// Nulls is the number of missing samples.
	Nulls  int     `json:"nulls" yaml:"nulls"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Median float64 `json:"median" yaml:"median"`
}

// Describe summarizes values. When hasNull is set, samples equal to null
// are missing. With no valid samples Count is 0 and the statistics are NaN;
// StdDev is the sample standard deviation and is NaN for a single sample.
func Describe(name string, values []float64, null float64, hasNull bool) Summary {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || (hasNull && v == null) {
			continue
		}
		valid = append(valid, v)
	}

	s := Summary{
		Curve: name,
		Count: len(valid),
		Nulls: len(values) - len(valid),
	}
	if len(valid) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.StdDev, s.Median = nan, nan, nan, nan, nan
		return s
	}

	s.Min = floats.Min(valid)
	s.Max = floats.Max(valid)
	s.Mean, s.StdDev = stat.MeanStdDev(valid, nil)
	if len(valid) < 2 {
		s.StdDev = math.NaN()
	}
	s.Median = median(valid)
	return s
}

// median sorts values in place.
func median(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

// DescribeLog summarizes every curve of l in header order, using the NULL
// value from its well section.
func DescribeLog(l *las.Log) []Summary {
	null, hasNull := l.NullValue()
	headers := l.Headers()
	rows := l.Data()

	out := make([]Summary, len(headers))
	col := make([]float64, len(rows))
	for i, name := range headers {
		for j, row := range rows {
			col[j] = row[i]
		}
		out[i] = Describe(name, col, null, hasNull)
	}
	return out
}
