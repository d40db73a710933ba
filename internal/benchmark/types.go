package benchmark

// Benchmark is a workload the harness can time. Run is called with the
// descriptor's parameter; a non-nil error aborts the whole suite.
type Benchmark interface {
	Run(param int) error
}

// Setupper is implemented by benchmarks that need untimed preparation.
type Setupper interface {
	Setup(param int) error
}

// TearDowner is implemented by benchmarks that need untimed cleanup.
type TearDowner interface {
	TearDown(param int) error
}

// Func adapts a plain function to the Benchmark interface.
type Func func(param int) error

func (f Func) Run(param int) error { return f(param) }

type hooked struct {
	run      Func
	setup    Func
	teardown Func
}

func (h hooked) Run(param int) error { return h.run(param) }

func (h hooked) Setup(param int) error {
	if h.setup == nil {
		return nil
	}
	return h.setup(param)
}

func (h hooked) TearDown(param int) error {
	if h.teardown == nil {
		return nil
	}
	return h.teardown(param)
}

// WithHooks builds a Benchmark from a run function and optional setup and
// teardown functions. Either hook may be nil.
func WithHooks(run, setup, teardown Func) Benchmark {
	return hooked{run: run, setup: setup, teardown: teardown}
}

// Descriptor is one registered benchmark. It is immutable once registered.
type Descriptor struct {
	name        string
	bench       Benchmark
	param       int
	referenceUs int64
}

func (d Descriptor) Name() string         { return d.name }
func (d Descriptor) Benchmark() Benchmark { return d.bench }
func (d Descriptor) Param() int           { return d.param }
func (d Descriptor) ReferenceUs() int64   { return d.referenceUs }

// Result is the outcome of timing one descriptor.
type Result struct {
	Name      string  `json:"name" yaml:"name"`
	ElapsedUs int64   `json:"elapsed_us" yaml:"elapsed_us"`
	Runs      int     `json:"runs" yaml:"runs"`
	Score     float64 `json:"score" yaml:"score"`
}

// UsecPerRun returns the truncated per-run elapsed time.
func (r Result) UsecPerRun() int64 {
	if r.Runs <= 0 {
		return 0
	}
	return r.ElapsedUs / int64(r.Runs)
}
