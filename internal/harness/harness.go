// Package harness wires the reference workloads, the default streams and a
// benchmark session into a complete suite run.
package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"benchscore/internal/benchmark"
	"benchscore/internal/stringio"
	"benchscore/internal/workload"
)

var (
	ErrUnknownSuite    = errors.New("unknown suite")
	ErrUnknownWorkload = errors.New("unknown workload")
)

// mu serialises suite runs: the default streams are per-run state and
// timings must not overlap.
var mu sync.Mutex

// Options configures Run.
type Options struct {
	Suite      string
	Capture    bool
	KeepOutput bool
	// Capacity bounds the registry; zero selects the default.
	Capacity int
	// Console receives progress lines and, when not capturing, workload output.
	Console   io.Writer
	Status    benchmark.StatusSink
	Observer  benchmark.Observer
	Logger    *slog.Logger
	Clock     benchmark.Clock
	SessionID string
	// InputSize overrides the size of the generated input; zero selects
	// workload.InputSize.
	InputSize int
	// Catalog overrides the workload set, mainly for tests.
	Catalog func(workload.Env) map[string]benchmark.Benchmark
}

// Capture is the output one workload produced on its final timed run.
type Capture struct {
	Name   string `json:"name"`
	Output []byte `json:"output"`
}

// Outcome is the result of a completed suite run.
type Outcome struct {
	Report *benchmark.Report
	// Captured is filled only when both capture and keep-output are set.
	Captured []Capture
}

// CapturedOutput concatenates all captured output in suite order.
func (o *Outcome) CapturedOutput() []byte {
	var out []byte
	for _, c := range o.Captured {
		out = append(out, c.Output...)
	}
	return out
}

// Run executes a whole suite. Any registration, workload or scoring
// failure aborts the run and no report is returned.
func Run(opts Options) (*Outcome, error) {
	mu.Lock()
	defer mu.Unlock()

	suite, err := Lookup(opts.Suite)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	inputSize := opts.InputSize
	if inputSize <= 0 {
		inputSize = workload.InputSize
	}
	streams, err := OpenStreams(opts.Capture, opts.KeepOutput, opts.Console, inputSize)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := streams.Close(); cerr != nil {
			logger.Warn("Failed to close streams", "error", cerr)
		}
	}()

	catalog := workload.Catalog
	if opts.Catalog != nil {
		catalog = opts.Catalog
	}
	benches := catalog(workload.Env{Out: streams.Stdout, In: streams.Stdin})

	session := benchmark.NewSession(benchmark.Options{
		ID:       opts.SessionID,
		Suite:    suite.Name,
		Model:    suite.Model,
		Capacity: opts.Capacity,
		Clock:    opts.Clock,
		Status:   opts.Status,
		Observer: opts.Observer,
		Console:  opts.Console,
		Logger:   logger,
	})
	defer session.Close()

	outcome := &Outcome{}
	for _, e := range suite.Entries {
		b, ok := benches[e.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorkload, e.Name)
		}
		if streams.Log != nil {
			b = &captured{Benchmark: b, name: e.Name, log: streams.Log, keep: opts.KeepOutput, outcome: outcome}
		}
		if err := session.Register(e.Name, b, e.Param, e.ReferenceUs); err != nil {
			return nil, err
		}
	}

	report, err := session.Run()
	if err != nil {
		return nil, err
	}
	outcome.Report = report
	return outcome, nil
}

// captured clears the log before every run so it only ever holds one run's
// output, and snapshots it after teardown when keep-output is set.
type captured struct {
	benchmark.Benchmark
	name    string
	log     *stringio.WriteLog
	keep    bool
	outcome *Outcome
}

func (c *captured) Setup(param int) error {
	if s, ok := c.Benchmark.(benchmark.Setupper); ok {
		return s.Setup(param)
	}
	return nil
}

func (c *captured) Run(param int) error {
	c.log.Rewind()
	return c.Benchmark.Run(param)
}

func (c *captured) TearDown(param int) error {
	if td, ok := c.Benchmark.(benchmark.TearDowner); ok {
		if err := td.TearDown(param); err != nil {
			return err
		}
	}
	if c.keep {
		c.outcome.Captured = append(c.outcome.Captured, Capture{Name: c.name, Output: c.log.Join()})
	}
	return nil
}
