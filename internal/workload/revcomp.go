package workload

import (
	"io"

	"benchscore/internal/stringio"
)

var complement = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []string{"AT", "CG", "GC", "TA", "UA", "MK", "RY", "WW", "SS", "YR", "KM", "VB", "HD", "DH", "BV", "NN"}
	for _, p := range pairs {
		t[p[0]] = p[1]
		t[p[0]+'a'-'A'] = p[1]
	}
	return t
}()

// RunRevcomp reads FASTA sequences from in and writes the reverse
// complement of each, wrapped at 60 columns.
func RunRevcomp(w io.Writer, in *stringio.ReadStream) error {
	var (
		header []byte
		seq    []byte
	)
	flush := func() error {
		if header == nil {
			return nil
		}
		if _, err := w.Write(header); err != nil {
			return err
		}
		for i, j := 0, len(seq)-1; i <= j; i, j = i+1, j-1 {
			seq[i], seq[j] = complement[seq[j]], complement[seq[i]]
		}
		line := make([]byte, 0, lineWidth+1)
		for len(seq) > 0 {
			m := min(len(seq), lineWidth)
			line = append(append(line[:0], seq[:m]...), '\n')
			if _, err := w.Write(line); err != nil {
				return err
			}
			seq = seq[m:]
		}
		return nil
	}

	err := scanLines(in, func(line []byte) error {
		if len(line) > 0 && line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			header = append(append([]byte(nil), line...), '\n')
			seq = nil
			return nil
		}
		seq = append(seq, line...)
		return nil
	})
	if err != nil {
		return err
	}
	if header == nil {
		return ErrNoInput
	}
	return flush()
}
