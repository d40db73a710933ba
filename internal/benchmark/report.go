package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is the outcome of a complete suite run.
type Report struct {
	SessionID string        `json:"session_id" yaml:"session_id"`
	Suite     string        `json:"suite,omitempty" yaml:"suite,omitempty"`
	RunModel  string        `json:"run_model" yaml:"run_model"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Results   []Result      `json:"results" yaml:"results"`
	Aggregate float64       `json:"aggregate" yaml:"aggregate"`
}

// AggregateRounded returns the aggregate score rounded to the nearest integer.
func (r *Report) AggregateRounded() int {
	return int(math.Round(r.Aggregate))
}

// FormatLine renders the diagnostic line for one result.
func FormatLine(res Result) string {
	return fmt.Sprintf("Benchmark %s: usec %d, iters %d, usec/run %d score %.2f",
		res.Name, res.ElapsedUs, res.Runs, res.UsecPerRun(), res.Score)
}

// WriteText writes one line per benchmark followed by the aggregate line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, FormatLine(res)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Aggregate score: %d\n", r.AggregateRounded())
	return err
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return enc.Close()
}
