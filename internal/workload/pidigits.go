package workload

import (
	"fmt"
	"io"
	"math/big"
)

type spigot struct {
	numer, accum, denom *big.Int
	tmp1, tmp2          *big.Int
}

func newSpigot() *spigot {
	return &spigot{
		numer: big.NewInt(1),
		accum: big.NewInt(0),
		denom: big.NewInt(1),
		tmp1:  new(big.Int),
		tmp2:  new(big.Int),
	}
}

func (s *spigot) extract(nth int64) int64 {
	s.tmp1.Mul(s.numer, big.NewInt(nth))
	s.tmp2.Add(s.tmp1, s.accum)
	s.tmp1.Quo(s.tmp2, s.denom)
	return s.tmp1.Int64()
}

func (s *spigot) nextTerm(k int64) {
	k2 := big.NewInt(2*k + 1)
	s.accum.Add(s.accum, s.tmp1.Lsh(s.numer, 1))
	s.accum.Mul(s.accum, k2)
	s.denom.Mul(s.denom, k2)
	s.numer.Mul(s.numer, big.NewInt(k))
}

func (s *spigot) eliminate(d int64) {
	s.accum.Sub(s.accum, s.tmp1.Mul(s.denom, big.NewInt(d)))
	s.accum.Mul(s.accum, big.NewInt(10))
	s.numer.Mul(s.numer, big.NewInt(10))
}

// RunPidigits prints the first n digits of pi, ten per line.
func RunPidigits(w io.Writer, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: pidigits n=%d", ErrInvalidParam, n)
	}
	s := newSpigot()
	line := make([]byte, 0, 10)
	for i, k := 0, int64(0); i < n; {
		k++
		s.nextTerm(k)
		if s.numer.Cmp(s.accum) > 0 {
			continue
		}
		d := s.extract(3)
		if d != s.extract(4) {
			continue
		}
		line = append(line, byte('0'+d))
		i++
		if i%10 == 0 || i == n {
			if _, err := fmt.Fprintf(w, "%-10s\t:%d\n", line, i); err != nil {
				return err
			}
			line = line[:0]
		}
		s.eliminate(d)
	}
	return nil
}
