package lasgo

import "golang.org/x/text/encoding"

// ExtractOptions holds configuration for an Extractor.
type ExtractOptions struct {
	// Source decoding, nil means UTF-8
	encoding encoding.Encoding

	// Curve selection, nil means all curves in file order
	curves []string

	// Output
	nullAsEmpty bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		encoding:    nil,
		curves:      nil,
		nullAsEmpty: false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		encoding:    o.encoding,
		nullAsEmpty: o.nullAsEmpty,
	}

	if o.curves != nil {
		newOpts.curves = make([]string, len(o.curves))
		copy(newOpts.curves, o.curves)
	}

	return newOpts
}
