package benchmark

import (
	"fmt"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// costBench advances a fake clock by a fixed cost on every Run.
type costBench struct {
	clock     *fakeClock
	cost      time.Duration
	calls     int
	setups    int
	teardowns int
	failAt    int
	params    []int
}

func (b *costBench) Run(param int) error {
	b.calls++
	b.params = append(b.params, param)
	b.clock.Advance(b.cost)
	if b.failAt > 0 && b.calls == b.failAt {
		return fmt.Errorf("status %d", 1)
	}
	return nil
}

func (b *costBench) Setup(param int) error {
	b.setups++
	return nil
}

func (b *costBench) TearDown(param int) error {
	b.teardowns++
	return nil
}

type recordingStatus struct {
	messages []string
}

func (r *recordingStatus) Status(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

type recordingObserver struct {
	results   []Result
	aggregate float64
}

func (o *recordingObserver) ObserveResult(r Result)         { o.results = append(o.results, r) }
func (o *recordingObserver) ObserveAggregate(score float64) { o.aggregate = score }
