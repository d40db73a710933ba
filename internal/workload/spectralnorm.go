package workload

import (
	"fmt"
	"io"
	"math"
)

func evalA(i, j int) float64 {
	return 1 / float64((i+j)*(i+j+1)/2+i+1)
}

func multAv(v, av []float64) {
	for i := range av {
		var sum float64
		for j, x := range v {
			sum += evalA(i, j) * x
		}
		av[i] = sum
	}
}

func multAtv(v, atv []float64) {
	for i := range atv {
		var sum float64
		for j, x := range v {
			sum += evalA(j, i) * x
		}
		atv[i] = sum
	}
}

func multAtAv(v, out, tmp []float64) {
	multAv(v, tmp)
	multAtv(tmp, out)
}

// RunSpectralnorm prints the spectral norm of an n by n infinite-matrix
// prefix, computed with the power method.
func RunSpectralnorm(w io.Writer, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: spectralnorm n=%d", ErrInvalidParam, n)
	}
	u := make([]float64, n)
	for i := range u {
		u[i] = 1
	}
	v := make([]float64, n)
	tmp := make([]float64, n)
	for i := 0; i < 10; i++ {
		multAtAv(u, v, tmp)
		multAtAv(v, u, tmp)
	}

	var vBv, vv float64
	for i := range v {
		vBv += u[i] * v[i]
		vv += v[i] * v[i]
	}
	_, err := fmt.Fprintf(w, "%0.9f\n", math.Sqrt(vBv/vv))
	return err
}
