package workload

import (
	"errors"
	"io"

	"benchscore/internal/stringio"
)

// readBufSize mirrors the fixed line buffer the workloads read with; lines
// longer than this arrive in several pieces.
const readBufSize = 128

// scanLines feeds every line of in to fn without its trailing newline.
func scanLines(in *stringio.ReadStream, fn func(line []byte) error) error {
	var pending []byte
	buf := make([]byte, readBufSize)
	for {
		n, err := in.Gets(buf)
		if errors.Is(err, io.EOF) {
			if len(pending) > 0 {
				return fn(pending)
			}
			return nil
		}
		if err != nil {
			return err
		}
		piece := buf[:n]
		if piece[n-1] != '\n' {
			pending = append(pending, piece...)
			continue
		}
		piece = piece[:n-1]
		if len(pending) > 0 {
			pending = append(pending, piece...)
			piece = pending
		}
		if err := fn(piece); err != nil {
			return err
		}
		pending = pending[:0]
	}
}

// section returns the concatenated, upper-cased residues of the sequence
// whose header starts with prefix.
func section(in *stringio.ReadStream, prefix string) ([]byte, error) {
	var (
		seq     []byte
		inside  bool
		matched bool
	)
	err := scanLines(in, func(line []byte) error {
		if len(line) > 0 && line[0] == '>' {
			inside = len(line) >= len(prefix) && string(line[:len(prefix)]) == prefix
			matched = matched || inside
			return nil
		}
		if inside {
			for _, c := range line {
				if 'a' <= c && c <= 'z' {
					c -= 'a' - 'A'
				}
				seq = append(seq, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrNoInput
	}
	return seq, nil
}
