package harness

import (
	"fmt"
	"strings"

	"benchscore/internal/benchmark"
	"benchscore/internal/workload"
)

// Entry is one row of a suite table.
type Entry struct {
	Name        string
	Param       int
	ReferenceUs int64
}

// Suite is a named, ordered list of workloads sharing one run model.
type Suite struct {
	Name    string
	Model   benchmark.RunModel
	Entries []Entry
}

// Reference times are shared by both suites.
var referenceUs = map[string]int64{
	workload.Fannkuchredux: 64052288,
	workload.Nbody:         73000000,
	workload.Spectralnorm:  150020779,
	workload.Fasta:         51667385,
	workload.Revcomp:       23542857,
	workload.Binarytrees:   383306452,
	workload.Knucleotide:   433893130,
	workload.Pidigits:      406976744,
}

func suite(name string, model benchmark.RunModel, params [8]int) Suite {
	names := [8]string{
		workload.Fannkuchredux,
		workload.Nbody,
		workload.Spectralnorm,
		workload.Fasta,
		workload.Revcomp,
		workload.Binarytrees,
		workload.Knucleotide,
		workload.Pidigits,
	}
	s := Suite{Name: name, Model: model, Entries: make([]Entry, len(names))}
	for i, n := range names {
		s.Entries[i] = Entry{Name: n, Param: params[i], ReferenceUs: referenceUs[n]}
	}
	return s
}

var (
	// Small repeats each workload until the minimum runtime is reached.
	Small = suite("small", benchmark.RunModelRepeated, [8]int{10, 1000000, 350, 10000, 0, 15, 0, 1000})
	// Large times a single, much bigger invocation of each workload.
	Large = suite("large", benchmark.RunModelOnce, [8]int{11, 10000000, 5500, 3000000, 0, 18, 0, 5000})
)

// Suites lists the built-in suites.
func Suites() []Suite {
	return []Suite{Small, Large}
}

// Lookup finds a suite by case-insensitive name.
func Lookup(name string) (Suite, error) {
	for _, s := range Suites() {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}
