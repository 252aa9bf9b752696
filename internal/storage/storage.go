package storage

import "io"

// Source reads a whole input document
type Source interface {
	Read(path string) (string, error)
}

// Sink receives the generated document exactly once
type Sink interface {
	Write(text string) error
	io.Closer
	// Name describes the destination for logs ("stdout" or the file path)
	Name() string
}

// Close closes c and ignores any error.
// Use for best-effort cleanup in defer on error paths.
func Close(c io.Closer) {
	_ = c.Close()
}
