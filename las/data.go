package las

import (
	"errors"
	"strconv"
)

// matrix is the result of one pass over the data section.
type matrix struct {
	rows     [][]float64
	coerced  int
	leftover []float64
}

// buildMatrix tokenizes the data section and reshapes the values into rows of
// width columns. Tokens that do not parse as numbers become 0. Values that do
// not fill a complete final row are returned in leftover, not in rows.
func buildMatrix(text string, width int) matrix {
	var m matrix
	body, ok := dataBody(text)
	if !ok {
		return m
	}

	values, coerced := parseTokens(body)
	m.coerced = coerced

	if width <= 0 {
		m.leftover = values
		return m
	}

	complete := len(values) / width
	m.rows = make([][]float64, 0, complete)
	for i := 0; i < complete; i++ {
		m.rows = append(m.rows, values[i*width:(i+1)*width:(i+1)*width])
	}
	if rem := values[complete*width:]; len(rem) > 0 {
		m.leftover = rem
	}
	return m
}

// parseTokens flattens every whitespace separated token of body into one
// sequence of floats. It reports how many tokens had to be replaced by 0.
// Numbers outside the float64 range keep the ±Inf that ParseFloat returns.
func parseTokens(body string) ([]float64, int) {
	var (
		values  []float64
		coerced int
	)
	for _, token := range whitespace.get().Split(body, -1) {
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			v = 0
			coerced++
		}
		values = append(values, v)
	}
	return values, coerced
}
