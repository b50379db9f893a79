package protocol

import (
	"errors"
	"io"
)

// MaxRequestLineLen caps the first line of the request head. The bound is
// derived from the supported request surface: the longest valid request
// line is "GET /cpu-name HTTP/1.1" plus CR, with some slack for the URI.
const MaxRequestLineLen = 30

var (
	// ErrMalformedHead reports a request head that violates the expected
	// syntax or a stream that ended before the terminating blank line.
	ErrMalformedHead = errors.New("malformed request head")
	// ErrLineTooLong reports a first line longer than MaxRequestLineLen.
	ErrLineTooLong = errors.New("request line too long")
)

type scanState uint8

const (
	stateFirstLine scanState = iota + 1
	stateHeader
	stateHeaderSpace
	stateHeaderValue
	stateEnd
)

// HeadScanner consumes a request head one byte at a time. It captures the
// first line into a fixed buffer and validates header syntax without
// storing any header data. The zero value is not usable; call NewHeadScanner.
type HeadScanner struct {
	state scanState
	buf   [MaxRequestLineLen]byte
	n     int
}

func NewHeadScanner() *HeadScanner {
	return &HeadScanner{state: stateFirstLine}
}

// FirstLine returns the captured first line, without the trailing LF.
func (s *HeadScanner) FirstLine() []byte {
	return s.buf[:s.n]
}

// Step advances the scanner by one byte. It reports done=true once the
// blank line terminating the head has been consumed.
func (s *HeadScanner) Step(c byte) (done bool, err error) {
	switch s.state {
	case stateFirstLine:
		if c == '\n' {
			s.state = stateHeader
			return false, nil
		}
		if s.n == MaxRequestLineLen {
			return false, ErrLineTooLong
		}
		s.buf[s.n] = c
		s.n++
	case stateHeader:
		switch {
		case c == ':':
			s.state = stateHeaderSpace
		case c == '\r':
			s.state = stateEnd
		case isHeaderNameByte(c):
			// stay in stateHeader
		default:
			return false, ErrMalformedHead
		}
	case stateHeaderSpace:
		if !isSpace(c) {
			s.state = stateHeaderValue
		}
	case stateHeaderValue:
		if c == '\n' {
			s.state = stateHeader
		}
	case stateEnd:
		if c != '\n' {
			return false, ErrMalformedHead
		}
		return true, nil
	}
	return false, nil
}

// ReadRequestHead drives a HeadScanner over the connection until the head
// terminator, a syntax violation, or a read failure. Read errors other than
// a premature EOF are returned verbatim so the caller can tell transport
// failures apart from protocol ones.
func ReadRequestHead(r io.Reader) ([]byte, error) {
	s := NewHeadScanner()
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 0 {
			if err == nil {
				continue
			}
			if err == io.EOF {
				// stream ended before the head was terminated
				return nil, ErrMalformedHead
			}
			return nil, err
		}
		done, serr := s.Step(b[0])
		if serr != nil {
			return nil, serr
		}
		if done {
			return s.FirstLine(), nil
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
	}
}

func isHeaderNameByte(c byte) bool {
	return c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// isSpace matches C's isspace for the ASCII range.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
