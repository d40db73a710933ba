package benchmark

import "fmt"

// DefaultCapacity is the registry size used when none is configured.
const DefaultCapacity = 32

// Registry is the ordered, fixed-capacity list of benchmarks in a suite.
// It is owned by a single Session and is not safe for concurrent use.
type Registry struct {
	capacity int
	entries  []Descriptor
}

// NewRegistry returns an empty registry. A non-positive capacity selects
// DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		capacity: capacity,
		entries:  make([]Descriptor, 0, capacity),
	}
}

// Register appends a benchmark and returns its index. When the registry is
// full it returns a *RegistrationError wrapping ErrRegistryFull and leaves
// the existing entries untouched.
func (r *Registry) Register(name string, b Benchmark, param int, referenceUs int64) (int, error) {
	if b == nil {
		return -1, &RegistrationError{Name: name, Err: ErrNilBenchmark}
	}
	if len(r.entries) >= r.capacity {
		return -1, &RegistrationError{Name: name, Capacity: r.capacity, Err: ErrRegistryFull}
	}
	r.entries = append(r.entries, Descriptor{
		name:        name,
		bench:       b,
		param:       param,
		referenceUs: referenceUs,
	})
	return len(r.entries) - 1, nil
}

// MustRegister is like Register but panics on failure. Use it for suites
// assembled at startup where overflow is a configuration bug.
func (r *Registry) MustRegister(name string, b Benchmark, param int, referenceUs int64) int {
	idx, err := r.Register(name, b, param, referenceUs)
	if err != nil {
		panic(fmt.Sprintf("benchmark: %v", err))
	}
	return idx
}

// Clear drops every descriptor. Clearing an empty registry is a no-op.
func (r *Registry) Clear() {
	if len(r.entries) == 0 {
		return
	}
	clear(r.entries)
	r.entries = r.entries[:0]
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int { return len(r.entries) }

// Cap returns the fixed capacity.
func (r *Registry) Cap() int { return r.capacity }

// At returns the descriptor registered at index i.
func (r *Registry) At(i int) Descriptor { return r.entries[i] }

// Descriptors returns a copy of the registered descriptors in order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}
