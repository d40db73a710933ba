package benchmark

import (
	"fmt"
	"strings"
	"time"
)

// RunModel selects how every benchmark in a suite is timed.
type RunModel int

const (
	// RunModelRepeated warms up once and then runs until both the minimum
	// runtime and the minimum run count are reached.
	RunModelRepeated RunModel = iota
	// RunModelOnce times a single invocation.
	RunModelOnce
)

func (m RunModel) String() string {
	switch m {
	case RunModelRepeated:
		return "repeated"
	case RunModelOnce:
		return "once"
	}
	return fmt.Sprintf("RunModel(%d)", int(m))
}

// ParseRunModel converts "repeated" or "once" to a RunModel.
func ParseRunModel(s string) (RunModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "repeated":
		return RunModelRepeated, nil
	case "once":
		return RunModelOnce, nil
	}
	return 0, fmt.Errorf("unknown run model %q", s)
}

const (
	// MinRuntimeUs is the minimum measured time in the repeated model.
	MinRuntimeUs = 1_000_000
	// MinRuns is the minimum number of timed runs in the repeated model.
	MinRuns = 16
)

// Clock is the wall-clock source used for timing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// Timer runs descriptors under one run model.
// Note: Timer is not thread-safe; a suite runs one benchmark at a time.
type Timer struct {
	Model RunModel
	Clock Clock
}

// NewTimer creates a timer for model using the system clock.
func NewTimer(model RunModel) *Timer {
	return &Timer{Model: model, Clock: SystemClock}
}

// RunOne times d and returns its elapsed microseconds and run count.
// Score is left for the caller to fill in.
func (t *Timer) RunOne(d Descriptor) (Result, error) {
	clock := t.Clock
	if clock == nil {
		clock = SystemClock
	}
	res := Result{Name: d.name}

	if s, ok := d.bench.(Setupper); ok {
		if err := s.Setup(d.param); err != nil {
			return res, &WorkloadError{Name: d.name, Phase: PhaseSetup, Err: err}
		}
	}

	var err error
	switch t.Model {
	case RunModelOnce:
		err = t.runOnce(clock, d, &res)
	default:
		err = t.runRepeated(clock, d, &res)
	}
	if err != nil {
		return res, err
	}

	if td, ok := d.bench.(TearDowner); ok {
		if err := td.TearDown(d.param); err != nil {
			return res, &WorkloadError{Name: d.name, Phase: PhaseTeardown, Err: err}
		}
	}
	return res, nil
}

func (t *Timer) runRepeated(clock Clock, d Descriptor, res *Result) error {
	// One untimed invocation so caches and allocations settle before the clock starts.
	if err := d.bench.Run(d.param); err != nil {
		return &WorkloadError{Name: d.name, Phase: PhaseWarmup, Err: err}
	}

	start := clock.Now()
	for res.Runs = 0; res.ElapsedUs < MinRuntimeUs || res.Runs < MinRuns; {
		if err := d.bench.Run(d.param); err != nil {
			return &WorkloadError{Name: d.name, Phase: PhaseRun, Run: res.Runs + 1, Err: err}
		}
		res.Runs++
		res.ElapsedUs = clock.Now().Sub(start).Microseconds()
	}
	return nil
}

func (t *Timer) runOnce(clock Clock, d Descriptor, res *Result) error {
	start := clock.Now()
	if err := d.bench.Run(d.param); err != nil {
		return &WorkloadError{Name: d.name, Phase: PhaseRun, Run: 1, Err: err}
	}
	res.ElapsedUs = clock.Now().Sub(start).Microseconds()
	res.Runs = 1
	return nil
}
