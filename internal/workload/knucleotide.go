package workload

import (
	"fmt"
	"io"
	"sort"

	"benchscore/internal/stringio"
)

var knucleotideQueries = []string{"GGT", "GGTA", "GGTATT", "GGTATTTTAATT", "GGTATTTTAATTTATAGT"}

func countFragments(seq []byte, k int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+k <= len(seq); i++ {
		counts[string(seq[i:i+k])]++
	}
	return counts
}

func writeFrequencies(w io.Writer, seq []byte, k int) error {
	counts := countFragments(seq, k)
	keys := make([]string, 0, len(counts))
	total := 0
	for key, n := range counts {
		keys = append(keys, key)
		total += n
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s %.3f\n", key, 100*float64(counts[key])/float64(total)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// RunKnucleotide reads the ">THREE" sequence from in and prints its 1- and
// 2-mer frequencies followed by counts of a fixed set of fragments.
func RunKnucleotide(w io.Writer, in *stringio.ReadStream) error {
	seq, err := section(in, ">THREE")
	if err != nil {
		return err
	}
	for k := 1; k <= 2; k++ {
		if err := writeFrequencies(w, seq, k); err != nil {
			return err
		}
	}
	for _, q := range knucleotideQueries {
		n := countFragments(seq, len(q))[q]
		if _, err := fmt.Fprintf(w, "%d\t%s\n", n, q); err != nil {
			return err
		}
	}
	return nil
}
