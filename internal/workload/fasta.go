package workload

import (
	"fmt"
	"io"
)

const (
	lineWidth = 60

	randIM = 139968
	randIA = 3877
	randIC = 29573
)

const alu = "GGCCGGGCGCGGTGGCTCACGCCTGTAATCCCAGCACTTTGG" +
	"GAGGCCGAGGCGGGCGGATCACCTGAGGTCAGGAGTTCGAGA" +
	"CCAGCCTGGCCAACATGGTGAAACCCCGTCTCTACTAAAAAT" +
	"ACAAAAATTAGCCGGGCGTGGTGGCGCGCGCCTGTAATCCCA" +
	"GCTACTCGGGAGGCTGAGGCAGGAGAATCGCTTGAACCCGGG" +
	"AGGCGGAGGTTGCAGTGAGCCGAGATCGCGCCACTGCACTCC" +
	"AGCCTGGGCGACAGAGCGAGACTCCGTCTCAAAAA"

type acid struct {
	c    byte
	prob float64
}

var iub = []acid{
	{'a', 0.27}, {'c', 0.12}, {'g', 0.12}, {'t', 0.27},
	{'B', 0.02}, {'D', 0.02}, {'H', 0.02}, {'K', 0.02},
	{'M', 0.02}, {'N', 0.02}, {'R', 0.02}, {'S', 0.02},
	{'V', 0.02}, {'W', 0.02}, {'Y', 0.02},
}

var homoSapiens = []acid{
	{'a', 0.3029549426680},
	{'c', 0.1979883004921},
	{'g', 0.1975473066391},
	{'t', 0.3015094502008},
}

// lcg is the benchmark's fixed linear congruential generator.
type lcg struct{ last int }

func (g *lcg) next(max float64) float64 {
	g.last = (g.last*randIA + randIC) % randIM
	return max * float64(g.last) / randIM
}

func cumulative(acids []acid) []acid {
	out := make([]acid, len(acids))
	var p float64
	for i, a := range acids {
		p += a.prob
		out[i] = acid{c: a.c, prob: p}
	}
	return out
}

// RunFasta writes three generated DNA sequences in FASTA format, one line
// per write.
func RunFasta(w io.Writer, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: fasta n=%d", ErrInvalidParam, n)
	}
	if err := repeatFasta(w, ">ONE Homo sapiens alu\n", alu, 2*n); err != nil {
		return err
	}
	rng := &lcg{last: 42}
	if err := randomFasta(w, ">TWO IUB ambiguity codes\n", cumulative(iub), 3*n, rng); err != nil {
		return err
	}
	return randomFasta(w, ">THREE Homo sapiens frequency\n", cumulative(homoSapiens), 5*n, rng)
}

func repeatFasta(w io.Writer, header, src string, n int) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	line := make([]byte, 0, lineWidth+1)
	pos := 0
	for n > 0 {
		m := min(n, lineWidth)
		line = line[:0]
		for i := 0; i < m; i++ {
			line = append(line, src[pos])
			if pos++; pos == len(src) {
				pos = 0
			}
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
		n -= m
	}
	return nil
}

func randomFasta(w io.Writer, header string, table []acid, n int, rng *lcg) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	line := make([]byte, 0, lineWidth+1)
	for n > 0 {
		m := min(n, lineWidth)
		line = line[:0]
		for i := 0; i < m; i++ {
			line = append(line, pick(table, rng.next(1)))
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
		n -= m
	}
	return nil
}

func pick(table []acid, r float64) byte {
	for _, a := range table {
		if r < a.prob {
			return a.c
		}
	}
	return table[len(table)-1].c
}
