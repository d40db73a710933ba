package benchmark

// StatusSink receives human-readable progress messages while a suite runs.
// Implementations must not fail; a sink that cannot deliver drops the message.
type StatusSink interface {
	Status(format string, args ...any)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(format string, args ...any)

func (f StatusFunc) Status(format string, args ...any) { f(format, args...) }

type nopStatus struct{}

func (nopStatus) Status(string, ...any) {}

// Observer is notified of each scored result and of the final aggregate.
type Observer interface {
	ObserveResult(r Result)
	ObserveAggregate(score float64)
}

type nopObserver struct{}

func (nopObserver) ObserveResult(Result)     {}
func (nopObserver) ObserveAggregate(float64) {}
