// Package reader loads LAS files into [las.Log] values.
//
// The las package works on text that is already in memory; this package is
// the thin layer that gets it there, from a file or from any io.Reader.
//
// # Opening Files
//
//	l, err := reader.Open("well.las")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	headers := l.Headers()
//
// # Legacy Code Pages
//
// Many LAS files were written on Windows or DOS machines and contain
// Windows-1252 or CP437 bytes in descriptions and well names. The encoding
// is never guessed. Pass it explicitly when it is known:
//
//	l, err := reader.Open("old.las", reader.WithEncoding(charmap.Windows1252))
//
// or resolve it by name, for example from a command line flag:
//
//	enc, err := reader.EncodingByName("latin1")
//
// A UTF-8 byte order mark at the start of the input is removed.
package reader
