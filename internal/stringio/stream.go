// Package stringio provides memory-backed streams for benchmark workloads.
//
// A ReadStream is a read cursor over a caller-owned buffer. A WriteLog keeps
// every write call as its own unit so that Join reproduces output exactly as
// a collect-then-join writer would have produced it.
package stringio

import (
	"errors"
	"io"
	"os"
)

// Stream is the file-like surface shared by both stream kinds.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

var (
	// ErrClosed is returned by any operation on a closed stream.
	ErrClosed = os.ErrClosed

	ErrReadOnly      = errors.New("stringio: stream is read-only")
	ErrWriteOnly     = errors.New("stringio: stream is write-only")
	ErrNotSeekable   = errors.New("stringio: stream is not seekable")
	ErrNegativeSeek  = errors.New("stringio: seek to negative position")
	ErrInvalidWhence = errors.New("stringio: invalid whence")
)

var (
	_ Stream = (*ReadStream)(nil)
	_ Stream = (*WriteLog)(nil)
)
