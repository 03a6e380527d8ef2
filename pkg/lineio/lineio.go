// Package lineio implements a buffered reader that exposes its internal
// buffer to callers, plus line-oriented reading built on top of it.
//
// It exists so that byte-level consumers (Fill/Consume) and line-level
// consumers (ReadLine) share a single buffer: mixing the two never loses or
// duplicates bytes at the boundary between calls.
package lineio

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

var (
	// ErrEndOfInput is returned by ReadLine when the source is exhausted
	// before any byte of a new line was read. An empty line (the user
	// pressing enter straight away) is a successful empty string, not this.
	ErrEndOfInput = errors.New("end of input")

	// ErrInvalidEncoding is returned by ReadLine when the accumulated line
	// is not valid UTF-8. The raw bytes have already been consumed from the
	// buffer; callers wanting the bytes themselves should use Fill/Consume.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

const bufSize = 4096

// Reader reads from src through an internal buffer.
//
// Not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf []byte
	r   int // next unread byte in buf
	w   int // end of valid data in buf
	err error
}

// NewReader returns a Reader buffering reads from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src: src,
		buf: make([]byte, bufSize),
	}
}

// Fill returns the unread bytes currently buffered, reading from the source
// only when the buffer is empty. The returned slice is valid until the next
// Fill, Read or ReadLine call, and is not consumed until Consume is called.
//
// At end of input Fill returns io.EOF. If the source returned data together
// with an error, the data is returned first and the error is reported by the
// following call.
func (b *Reader) Fill() ([]byte, error) {
	if b.r < b.w {
		return b.buf[b.r:b.w], nil
	}
	if b.err != nil {
		return nil, b.err
	}
	b.r, b.w = 0, 0
	n, err := b.src.Read(b.buf)
	b.w = n
	if err != nil {
		b.err = err
		if n == 0 {
			return nil, err
		}
	}
	return b.buf[b.r:b.w], nil
}

// Consume marks the next n buffered bytes as read. Consuming more than
// Buffered reports is truncated to the buffered amount.
func (b *Reader) Consume(n int) {
	if n > b.w-b.r {
		n = b.w - b.r
	}
	if n > 0 {
		b.r += n
	}
}

// Buffered returns the number of unread bytes in the buffer.
func (b *Reader) Buffered() int {
	return b.w - b.r
}

// Read implements io.Reader over the same buffer as Fill/Consume.
func (b *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	avail, err := b.Fill()
	if err != nil {
		return 0, err
	}
	n := copy(p, avail)
	b.Consume(n)
	return n, nil
}

// ReadLine reads until a newline and returns the line without its
// terminator. A "\r\n" terminator is stripped entirely; a carriage return
// anywhere else is ordinary content and does not terminate the line.
//
// If the source ends before a newline is seen, any bytes read so far are
// returned as the final line; a subsequent call returns ErrEndOfInput.
// If the source ends with no bytes read at all, ReadLine returns
// ErrEndOfInput rather than an empty line.
func (b *Reader) ReadLine() (string, error) {
	var line []byte
	for {
		avail, err := b.Fill()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(line) == 0 {
					return "", ErrEndOfInput
				}
				return decode(line)
			}
			return "", err
		}
		if i := bytes.IndexByte(avail, '\n'); i >= 0 {
			line = append(line, avail[:i]...)
			b.Consume(i + 1)
			return decode(line)
		}
		line = append(line, avail...)
		b.Consume(len(avail))
	}
}

// decode strips a single trailing carriage return left over from a "\r\n"
// terminator, then validates the result as UTF-8.
func decode(line []byte) (string, error) {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if !utf8.Valid(line) {
		return "", ErrInvalidEncoding
	}
	return string(line), nil
}
