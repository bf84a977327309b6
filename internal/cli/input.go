package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// maxTokenLen bounds a single input token. Anything longer is rejected
// with an explicit error instead of being truncated.
const maxTokenLen = 1024

// ErrInputClosed is returned when input ends before a token arrives.
var ErrInputClosed = errors.New("input closed")

// TokenReader reads whitespace-delimited tokens from a stream through
// a bounded buffer.
type TokenReader struct {
	s *bufio.Scanner
}

// NewTokenReader creates a reader over r.
func NewTokenReader(r io.Reader) *TokenReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 256), maxTokenLen)
	s.Split(bufio.ScanWords)
	return &TokenReader{s: s}
}

// Token returns the next token. It returns ErrInputClosed on end of
// input and a descriptive error when a token exceeds maxTokenLen.
func (t *TokenReader) Token() (string, error) {
	if t.s.Scan() {
		return t.s.Text(), nil
	}
	if err := t.s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("input token exceeds %d bytes", maxTokenLen)
		}
		return "", err
	}
	return "", ErrInputClosed
}
