// Package workload contains the reference CPU workloads run by the standard
// suites. Each workload satisfies benchmark.Benchmark and performs all of its
// I/O through an Env so that output can be captured in memory.
package workload

import (
	"errors"
	"fmt"
	"io"

	"benchscore/internal/benchmark"
	"benchscore/internal/stringio"
)

// Names of the reference workloads, in suite order.
const (
	Fannkuchredux = "Fannkuchredux"
	Nbody         = "Nbody"
	Spectralnorm  = "Spectralnorm"
	Fasta         = "Fasta"
	Revcomp       = "Revcomp"
	Binarytrees   = "Binarytrees"
	Knucleotide   = "Knucleotide"
	Pidigits      = "Pidigits"
)

// InputSize is the Fasta size used to build the shared input stream.
const InputSize = 10000

var (
	ErrNoInput      = errors.New("workload has no input stream")
	ErrInvalidParam = errors.New("invalid workload parameter")
)

// Env is the I/O environment shared by all workloads of one suite run.
type Env struct {
	Out io.Writer
	In  *stringio.ReadStream
}

func (e Env) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

// Catalog returns every reference workload bound to env, keyed by name.
func Catalog(env Env) map[string]benchmark.Benchmark {
	return map[string]benchmark.Benchmark{
		Fannkuchredux: benchmark.Func(func(n int) error { return RunFannkuch(env.out(), n) }),
		Nbody:         benchmark.Func(func(n int) error { return RunNbody(env.out(), n) }),
		Spectralnorm:  benchmark.Func(func(n int) error { return RunSpectralnorm(env.out(), n) }),
		Fasta:         benchmark.Func(func(n int) error { return RunFasta(env.out(), n) }),
		Revcomp:       &inputBench{env: env, run: RunRevcomp},
		Binarytrees:   benchmark.Func(func(n int) error { return RunBinarytrees(env.out(), n) }),
		Knucleotide:   &inputBench{env: env, run: RunKnucleotide},
		Pidigits:      benchmark.Func(func(n int) error { return RunPidigits(env.out(), n) }),
	}
}

// inputBench rewinds the shared input before every run.
type inputBench struct {
	env Env
	run func(w io.Writer, in *stringio.ReadStream) error
}

func (b *inputBench) Setup(int) error {
	if b.env.In == nil {
		return ErrNoInput
	}
	return nil
}

func (b *inputBench) Run(int) error {
	if b.env.In == nil {
		return ErrNoInput
	}
	if _, err := b.env.In.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}
	return b.run(b.env.out(), b.env.In)
}

// GenerateInput renders Fasta output of size n into memory for use as the
// shared input stream.
func GenerateInput(n int) ([]byte, error) {
	log := stringio.NewWriteLog("fasta-input")
	log.SetKeepOutput(true)
	if err := RunFasta(log, n); err != nil {
		return nil, err
	}
	if err := log.Close(); err != nil {
		return nil, err
	}
	return log.Join(), nil
}
