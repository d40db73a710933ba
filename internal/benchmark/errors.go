package benchmark

import (
	"errors"
	"fmt"
)

var (
	ErrRegistryFull       = errors.New("benchmark registry is full")
	ErrNilBenchmark       = errors.New("benchmark is nil")
	ErrInvalidMeasurement = errors.New("invalid measurement")
	ErrEmptySuite         = errors.New("no benchmarks registered")
	ErrSessionUsed        = errors.New("session has already run")
)

// Phase names the part of a benchmark invocation that failed.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseWarmup   Phase = "warmup"
	PhaseRun      Phase = "run"
	PhaseTeardown Phase = "teardown"
)

// RegistrationError reports a benchmark that could not be registered.
type RegistrationError struct {
	Name     string
	Capacity int
	Err      error
}

func (e *RegistrationError) Error() string {
	if errors.Is(e.Err, ErrRegistryFull) {
		return fmt.Sprintf("cannot register %q: %v (capacity %d)", e.Name, e.Err, e.Capacity)
	}
	return fmt.Sprintf("cannot register %q: %v", e.Name, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// WorkloadError reports a benchmark invocation that did not succeed.
// It is always fatal to the suite.
type WorkloadError struct {
	Name  string
	Phase Phase
	Run   int
	Err   error
}

func (e *WorkloadError) Error() string {
	if e.Phase == PhaseRun {
		return fmt.Sprintf("benchmark %s failed in %s %d: %v", e.Name, e.Phase, e.Run, e.Err)
	}
	return fmt.Sprintf("benchmark %s failed in %s: %v", e.Name, e.Phase, e.Err)
}

func (e *WorkloadError) Unwrap() error { return e.Err }
