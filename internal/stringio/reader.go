package stringio

import (
	"bytes"
	"io"
)

// ReadStream reads from a fixed buffer owned by the caller.
// Closing it releases the cursor only; the buffer is never modified.
type ReadStream struct {
	buf    []byte
	pos    int64
	closed bool
}

// NewReader returns a ReadStream positioned at the start of buf.
func NewReader(buf []byte) *ReadStream {
	return &ReadStream{buf: buf}
}

// NewStringReader is NewReader for string input.
func NewStringReader(s string) *ReadStream {
	return NewReader([]byte(s))
}

// Read copies up to len(p) bytes from the cursor and advances it.
// At or past the end of the buffer it returns 0, io.EOF.
func (r *ReadStream) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.pos >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *ReadStream) ReadByte() (byte, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.pos >= int64(len(r.buf)) {
		return 0, io.EOF
	}
	c := r.buf[r.pos]
	r.pos++
	return c, nil
}

// Write always fails: a ReadStream never modifies the caller's buffer.
func (r *ReadStream) Write(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	return 0, ErrReadOnly
}

// Seek sets the cursor using io.SeekStart, io.SeekCurrent or io.SeekEnd.
// Positions past the end are allowed; a negative result is rejected and
// the cursor is left where it was.
func (r *ReadStream) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = r.pos
	case io.SeekEnd:
		base = int64(len(r.buf))
	default:
		return r.pos, ErrInvalidWhence
	}
	next := base + offset
	if next < 0 {
		return r.pos, ErrNegativeSeek
	}
	r.pos = next
	return next, nil
}

// Gets behaves like fgets: it copies at most len(dst)-1 bytes into dst,
// stopping after the first newline, and writes a NUL after the copied
// bytes. It returns the number of bytes copied, excluding the NUL.
// io.EOF is returned when the cursor is at the end and nothing was copied.
func (r *ReadStream) Gets(dst []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if r.pos >= int64(len(r.buf)) {
		dst[0] = 0
		return 0, io.EOF
	}
	rest := r.buf[r.pos:]
	limit := len(dst) - 1
	if limit > len(rest) {
		limit = len(rest)
	}
	n := limit
	if i := bytes.IndexByte(rest[:limit], '\n'); i >= 0 {
		n = i + 1
	}
	copy(dst, rest[:n])
	dst[n] = 0
	r.pos += int64(n)
	return n, nil
}

// ReadLine returns the next line the way Gets would fill a buffer of the
// given size, without the NUL terminator.
func (r *ReadStream) ReadLine(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	dst := make([]byte, size)
	n, err := r.Gets(dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Close releases the cursor. The underlying buffer stays valid for the caller.
func (r *ReadStream) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return nil
}

// Len returns the size of the underlying buffer.
func (r *ReadStream) Len() int { return len(r.buf) }

// Pos returns the current cursor position.
func (r *ReadStream) Pos() int64 { return r.pos }
