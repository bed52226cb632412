package core

import (
	"bufio"
	"io"
	"strings"
)

// ScannerReader reads lines from a plain stream, it is used when input isn't
// a terminal.
type ScannerReader struct {
	scanner *bufio.Scanner
	// Out receives the prompt before each read, nil writes no prompt.
	Out    io.Writer
	prompt string
}

// NewScannerReader reads lines from r, writing prompts to out.
func NewScannerReader(r io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(r),
		Out:     out,
	}
}

func (s *ScannerReader) SetPrompt(prompt string) {
	s.prompt = prompt
}

// Readline returns the next line without its terminator (LF or CRLF), or
// io.EOF.
func (s *ScannerReader) Readline() (string, error) {
	if s.Out != nil {
		io.WriteString(s.Out, s.prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}
