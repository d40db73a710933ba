package benchmark

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Options configures a Session.
type Options struct {
	// ID identifies the session; empty generates a random UUID.
	ID string
	// Suite is recorded on the report only.
	Suite string
	Model RunModel
	// Capacity bounds the registry; zero selects DefaultCapacity.
	Capacity int
	Clock    Clock
	Status   StatusSink
	Observer Observer
	// Console receives the "registered" and "Running" lines.
	Console io.Writer
	Logger  *slog.Logger
}

// Session owns the registry and results of one suite invocation.
// A Session runs at most once and must not be shared between goroutines.
type Session struct {
	id       string
	suite    string
	registry *Registry
	timer    *Timer
	status   StatusSink
	observer Observer
	console  io.Writer
	logger   *slog.Logger
	ran      bool
}

// NewSession creates a session with an empty registry.
func NewSession(opts Options) *Session {
	s := &Session{
		id:       opts.ID,
		suite:    opts.Suite,
		registry: NewRegistry(opts.Capacity),
		timer:    &Timer{Model: opts.Model, Clock: opts.Clock},
		status:   opts.Status,
		observer: opts.Observer,
		console:  opts.Console,
		logger:   opts.Logger,
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.timer.Clock == nil {
		s.timer.Clock = SystemClock
	}
	if s.status == nil {
		s.status = nopStatus{}
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	if s.console == nil {
		s.console = io.Discard
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Model returns the suite-wide run model.
func (s *Session) Model() RunModel { return s.timer.Model }

// Registry exposes the session's registry.
func (s *Session) Registry() *Registry { return s.registry }

// Register adds a benchmark to the session. Overflow is reported through
// the status sink and returned; callers treat it as fatal.
func (s *Session) Register(name string, b Benchmark, param int, referenceUs int64) error {
	if _, err := s.registry.Register(name, b, param, referenceUs); err != nil {
		s.status.Status("Registration failed: %v", err)
		s.logger.Error("Benchmark registration failed", "benchmark", name, "error", err)
		return err
	}
	return nil
}

// Run times every registered benchmark in order and returns the report.
// The first failure aborts the run and no report is produced.
func (s *Session) Run() (*Report, error) {
	if s.ran {
		return nil, ErrSessionUsed
	}
	s.ran = true

	total := s.registry.Len()
	if total == 0 {
		return nil, ErrEmptySuite
	}

	report := &Report{
		SessionID: s.id,
		Suite:     s.suite,
		RunModel:  s.timer.Model.String(),
		StartTime: time.Now(),
		Results:   make([]Result, total),
	}

	fmt.Fprintf(s.console, "%d benchmarks registered\n", total)
	s.logger.Info("Suite started", "suite", s.suite, "benchmarks", total, "run_model", s.timer.Model.String())

	for i := 0; i < total; i++ {
		d := s.registry.At(i)
		fmt.Fprintf(s.console, "Running %s\n", d.Name())
		s.status.Status("Running %s (%d/%d)", d.Name(), i+1, total)

		res, err := s.timer.RunOne(d)
		if err == nil {
			res.Score, err = ScoreResult(d, res)
		}
		if err != nil {
			s.logger.Error("Suite aborted", "benchmark", d.Name(), "error", err)
			return nil, err
		}

		report.Results[i] = res
		s.status.Status("%s: %.2f", d.Name(), res.Score)
		s.logger.Debug("Benchmark finished",
			"benchmark", d.Name(),
			"elapsed_us", res.ElapsedUs,
			"runs", res.Runs,
			"score", res.Score,
		)
		s.observer.ObserveResult(res)
	}

	agg, err := AggregateResults(report.Results)
	if err != nil {
		s.logger.Error("Aggregate score undefined", "error", err)
		return nil, err
	}
	report.Aggregate = agg
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	s.observer.ObserveAggregate(agg)
	s.logger.Info("Suite finished", "aggregate", agg, "duration", report.Duration)

	return report, nil
}

// Close releases the registry. It is safe to call more than once.
func (s *Session) Close() {
	s.registry.Clear()
}

// IsFatal reports whether err is one of the harness's fatal error kinds.
func IsFatal(err error) bool {
	var we *WorkloadError
	var re *RegistrationError
	return errors.As(err, &we) ||
		errors.As(err, &re) ||
		errors.Is(err, ErrInvalidMeasurement) ||
		errors.Is(err, ErrEmptySuite)
}
