package main

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"benchscore/internal/benchmark"
	"benchscore/internal/harness"
	"benchscore/internal/workload"
)

// executeCommand runs root with args and returns everything written to
// stdout and stderr. Calls to exit with a non-zero code are recovered.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	resetFlags(root)
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()

	b := new(bytes.Buffer)
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				output = b.String()
				return
			}
			panic(r)
		}
	}()
	root.SetArgs(args)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err = root.Execute()
	return b.String(), err
}

// executeSplit is executeCommand with separate stdout and stderr buffers.
func executeSplit(root *cobra.Command, args ...string) (string, string, error) {
	resetFlags(root)
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	root.SetArgs(args)
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	err := root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// useFakeHarness swaps in workloads that cost a fixed 100ms of fake time
// and print their name and parameter. It returns the options the command
// passed in.
func useFakeHarness(t *testing.T, fail string) *harness.Options {
	t.Helper()
	seen := &harness.Options{}
	old := runHarness
	runHarness = func(opts harness.Options) (*harness.Outcome, error) {
		*seen = opts
		clock := &fakeClock{}
		opts.Clock = clock
		opts.InputSize = 10
		opts.Catalog = func(env workload.Env) map[string]benchmark.Benchmark {
			out := make(map[string]benchmark.Benchmark)
			for _, e := range harness.Small.Entries {
				name := e.Name
				out[name] = benchmark.Func(func(param int) error {
					clock.advance(100 * time.Millisecond)
					if name == fail {
						return fmt.Errorf("bad output")
					}
					_, err := fmt.Fprintf(env.Out, "%s %d\n", name, param)
					return err
				})
			}
			return out
		}
		return harness.Run(opts)
	}
	t.Cleanup(func() { runHarness = old })
	return seen
}
