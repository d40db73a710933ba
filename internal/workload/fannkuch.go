package workload

import (
	"fmt"
	"io"
)

// RunFannkuch prints the checksum and maximum flip count over all
// permutations of n elements.
func RunFannkuch(w io.Writer, n int) error {
	if n < 1 || n > 12 {
		return fmt.Errorf("%w: fannkuch n=%d", ErrInvalidParam, n)
	}
	checksum, maxFlips := fannkuch(n)
	_, err := fmt.Fprintf(w, "%d\nPfannkuchen(%d) = %d\n", checksum, n, maxFlips)
	return err
}

func fannkuch(n int) (checksum, maxFlips int) {
	perm1 := make([]int, n)
	for i := range perm1 {
		perm1[i] = i
	}
	perm := make([]int, n)
	count := make([]int, n)

	r := n
	for permCount := 0; ; permCount++ {
		for ; r != 1; r-- {
			count[r-1] = r
		}
		copy(perm, perm1)

		flips := 0
		for k := perm[0]; k != 0; k = perm[0] {
			for i, j := 0, k; i < j; i, j = i+1, j-1 {
				perm[i], perm[j] = perm[j], perm[i]
			}
			flips++
		}
		if flips > maxFlips {
			maxFlips = flips
		}
		if permCount%2 == 0 {
			checksum += flips
		} else {
			checksum -= flips
		}

		for {
			if r == n {
				return checksum, maxFlips
			}
			perm0 := perm1[0]
			copy(perm1[:r], perm1[1:r+1])
			perm1[r] = perm0
			count[r]--
			if count[r] > 0 {
				break
			}
			r++
		}
	}
}
