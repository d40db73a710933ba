package harness

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchscore/internal/benchmark"
	"benchscore/internal/workload"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingStatus struct {
	messages []string
}

func (r *recordingStatus) Status(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

// fakeCatalog returns workloads that write one line and cost 100ms each.
func fakeCatalog(clock *fakeClock, fail string) func(workload.Env) map[string]benchmark.Benchmark {
	return func(env workload.Env) map[string]benchmark.Benchmark {
		out := make(map[string]benchmark.Benchmark)
		for _, e := range Small.Entries {
			name := e.Name
			out[name] = benchmark.Func(func(param int) error {
				clock.Advance(100 * time.Millisecond)
				if name == fail {
					return errors.New("checksum mismatch")
				}
				_, err := fmt.Fprintf(env.Out, "%s %d\n", name, param)
				return err
			})
		}
		return out
	}
}

func TestRun_SmallSuiteCaptured(t *testing.T) {
	clock := &fakeClock{}
	status := &recordingStatus{}
	var console bytes.Buffer

	outcome, err := Run(Options{
		Suite:      "small",
		Capture:    true,
		KeepOutput: true,
		Console:    &console,
		Status:     status,
		Clock:      clock,
		SessionID:  "test-session",
		InputSize:  10,
		Catalog:    fakeCatalog(clock, ""),
	})
	require.NoError(t, err)
	require.NotNil(t, outcome.Report)

	report := outcome.Report
	assert.Equal(t, "test-session", report.SessionID)
	assert.Equal(t, "small", report.Suite)
	assert.Equal(t, "repeated", report.RunModel)
	require.Len(t, report.Results, 8)

	first := report.Results[0]
	assert.Equal(t, workload.Fannkuchredux, first.Name)
	assert.Equal(t, 16, first.Runs)
	assert.Equal(t, int64(1_600_000), first.ElapsedUs)
	assert.InDelta(t, 64052.288, first.Score, 1e-6)

	var logSum float64
	for _, e := range Small.Entries {
		logSum += math.Log(float64(e.ReferenceUs) / 1000)
	}
	assert.InDelta(t, math.Exp(logSum/8), report.Aggregate, 1e-6)

	require.Len(t, outcome.Captured, 8)
	assert.Equal(t, "Fannkuchredux 10\n", string(outcome.Captured[0].Output), "only the final run is kept")
	assert.Equal(t, "Pidigits 1000\n", string(outcome.Captured[7].Output))
	assert.True(t, strings.HasPrefix(string(outcome.CapturedOutput()), "Fannkuchredux 10\nNbody 1000000\n"))

	assert.True(t, strings.HasPrefix(console.String(), "8 benchmarks registered\nRunning Fannkuchredux\n"))
	assert.NotContains(t, console.String(), "Fannkuchredux 10", "captured output stays off the console")
	assert.Contains(t, status.messages, "Running Nbody (2/8)")
}

func TestRun_CaptureWithoutKeep(t *testing.T) {
	clock := &fakeClock{}
	outcome, err := Run(Options{
		Suite:     "small",
		Capture:   true,
		Clock:     clock,
		InputSize: 10,
		Catalog:   fakeCatalog(clock, ""),
	})
	require.NoError(t, err)
	assert.Empty(t, outcome.Captured)
	assert.Empty(t, outcome.CapturedOutput())
}

func TestRun_LargeSuiteOnce(t *testing.T) {
	clock := &fakeClock{}
	var console bytes.Buffer

	outcome, err := Run(Options{
		Suite:     "LARGE",
		Console:   &console,
		Clock:     clock,
		InputSize: 10,
		Catalog:   fakeCatalog(clock, ""),
	})
	require.NoError(t, err)

	for _, r := range outcome.Report.Results {
		assert.Equal(t, 1, r.Runs, r.Name)
		assert.Equal(t, int64(100_000), r.ElapsedUs, r.Name)
	}
	assert.Equal(t, "once", outcome.Report.RunModel)
	assert.Contains(t, console.String(), "Nbody 10000000\n", "uncaptured output goes to the console")
}

func TestRun_UnknownSuite(t *testing.T) {
	_, err := Run(Options{Suite: "medium"})
	assert.ErrorIs(t, err, ErrUnknownSuite)
}

func TestRun_MissingWorkload(t *testing.T) {
	clock := &fakeClock{}
	_, err := Run(Options{
		Suite:     "small",
		Clock:     clock,
		InputSize: 10,
		Catalog: func(workload.Env) map[string]benchmark.Benchmark {
			return map[string]benchmark.Benchmark{}
		},
	})
	assert.ErrorIs(t, err, ErrUnknownWorkload)
}

func TestRun_RegistryOverflowIsFatal(t *testing.T) {
	clock := &fakeClock{}
	status := &recordingStatus{}

	outcome, err := Run(Options{
		Suite:     "small",
		Capacity:  4,
		Status:    status,
		Clock:     clock,
		InputSize: 10,
		Catalog:   fakeCatalog(clock, ""),
	})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, benchmark.ErrRegistryFull)
	assert.True(t, benchmark.IsFatal(err))
	require.NotEmpty(t, status.messages)
	assert.True(t, strings.HasPrefix(status.messages[0], "Registration failed"))
}

func TestRun_WorkloadFailureAborts(t *testing.T) {
	clock := &fakeClock{}
	var console bytes.Buffer

	outcome, err := Run(Options{
		Suite:     "small",
		Console:   &console,
		Clock:     clock,
		InputSize: 10,
		Catalog:   fakeCatalog(clock, workload.Spectralnorm),
	})
	assert.Nil(t, outcome)

	var we *benchmark.WorkloadError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, workload.Spectralnorm, we.Name)
	assert.Equal(t, benchmark.PhaseWarmup, we.Phase)
	assert.NotContains(t, console.String(), "Running Fasta")
}

func TestRun_SerialisesConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clock := &fakeClock{}
			_, errs[i] = Run(Options{Suite: "large", Clock: clock, InputSize: 10, Catalog: fakeCatalog(clock, "")})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
