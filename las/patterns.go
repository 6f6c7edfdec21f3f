package las

import (
	"regexp"
	"sync"
)

// lazyRegexp compiles its expression the first time it is used. It is safe
// for concurrent use; the expression is compiled exactly once per process.
type lazyRegexp struct {
	expr string
	once sync.Once
	re   *regexp.Regexp
}

func newLazyRegexp(expr string) *lazyRegexp {
	return &lazyRegexp{expr: expr}
}

// get returns the compiled expression, compiling it on first call.
func (l *lazyRegexp) get() *regexp.Regexp {
	l.once.Do(func() {
		l.re = regexp.MustCompile(l.expr)
	})
	return l.re
}

var (
	// metaSeparator splits "VERS.   2.0 : desc" into mnemonic, value, rest.
	metaSeparator = newLazyRegexp(`\s+|\s*:`)

	// standaloneDot matches a unit separator dot with no unit attached.
	standaloneDot = newLazyRegexp(`\s+\.\s+`)

	// titleSeparator ends the mnemonic.
	titleSeparator = newLazyRegexp(`[.\s]+`)

	// mnemonicPrefix matches the mnemonic and the dot (or whitespace) after it.
	mnemonicPrefix = newLazyRegexp(`^[^.\s]*\s*[.\s]`)

	// wideSpace separates value fields from their neighbours.
	wideSpace = newLazyRegexp(`\s{2,}`)

	// leadingCodes matches API codes or indices bleeding into a description.
	leadingCodes = newLazyRegexp(`^(?:\d+\s+)+`)

	// headerSeparator ends a curve name in the curve section.
	headerSeparator = newLazyRegexp(`\s*\.`)

	// whitespace separates data tokens.
	whitespace = newLazyRegexp(`\s+`)
)
