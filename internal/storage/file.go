package storage

import (
	"fmt"
	"io"
	"os"
)

// FileSource implements Source on the local filesystem
type FileSource struct{}

// NewFileSource creates a new file source
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Read returns the entire file contents as text
func (s *FileSource) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input file %q: %w", path, err)
	}
	return string(data), nil
}

// OpenSink returns a sink for path. An empty path writes to stdout.
// Files are opened right away so an unwritable path fails before any
// conversion work is done.
func OpenSink(path string, stdout io.Writer) (Sink, error) {
	if path == "" {
		return &streamSink{w: stdout}, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file %q: %w", path, err)
	}
	return &fileSink{f: f, path: path}, nil
}

// fileSink writes to a file opened by OpenSink
type fileSink struct {
	f    *os.File
	path string
}

func (s *fileSink) Write(text string) error {
	// Opened without O_TRUNC; drop leftovers from an older, longer file now.
	if err := s.f.Truncate(0); err != nil {
		return fmt.Errorf("cannot truncate output file %q: %w", s.path, err)
	}
	if _, err := s.f.WriteString(text); err != nil {
		return fmt.Errorf("cannot write output file %q: %w", s.path, err)
	}
	return nil
}

func (s *fileSink) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("cannot close output file %q: %w", s.path, err)
	}
	return nil
}

func (s *fileSink) Name() string { return s.path }

// streamSink writes to stdout and never closes it
type streamSink struct {
	w io.Writer
}

func (s *streamSink) Write(text string) error {
	if _, err := io.WriteString(s.w, text); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

func (s *streamSink) Close() error { return nil }

func (s *streamSink) Name() string { return "stdout" }
