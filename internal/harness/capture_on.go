//go:build benchcapture

package harness

// CaptureByDefault reports whether workload output is captured in memory
// unless configuration says otherwise.
const CaptureByDefault = true
