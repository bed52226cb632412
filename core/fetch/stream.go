package fetch

import (
	"bufio"
	"io"
	"strings"
)

// maxLineLength bounds a single header or body line.
const maxLineLength = 1024 * 1024

// Stream exposes a raw HTTP response as lines of text.
type Stream struct {
	rc      io.ReadCloser
	scanner *bufio.Scanner
	line    string
	closed  bool
}

// NewStream wraps a raw response. The stream owns rc and closes it.
func NewStream(rc io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Stream{
		rc:      rc,
		scanner: scanner,
	}
}

// SkipHeaders reads and discards lines up to and including the first empty
// line, which separates the HTTP header block from the body.
func (s *Stream) SkipHeaders() error {
	for s.scanner.Scan() {
		if line := s.scanner.Text(); line == "" || line == "\r" {
			break
		}
	}
	return s.scanner.Err()
}

// Next advances to the next line, it returns false at the end of the stream
// or on error.
func (s *Stream) Next() bool {
	if !s.scanner.Scan() {
		s.line = ""
		return false
	}
	s.line = strings.TrimSuffix(s.scanner.Text(), "\r")
	return true
}

// Text returns the current line without its line terminator.
func (s *Stream) Text() string {
	return s.line
}

// Err returns the first non-EOF read error.
func (s *Stream) Err() error {
	return s.scanner.Err()
}

// Close closes the underlying connection, it is safe to call more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.rc.Close()
}
