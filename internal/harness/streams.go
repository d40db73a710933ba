package harness

import (
	"errors"
	"fmt"
	"io"

	"benchscore/internal/stringio"
	"benchscore/internal/workload"
)

// Streams are the default read and write targets of one suite run.
type Streams struct {
	// Stdout is where workloads write: Log when capturing, otherwise the
	// console writer.
	Stdout io.Writer
	// Log is nil unless output is captured.
	Log *stringio.WriteLog
	// Stdin holds the generated FASTA input.
	Stdin *stringio.ReadStream
}

// OpenStreams builds the default targets. inputSize controls the size of
// the generated input; console receives workload output when not capturing.
func OpenStreams(capture, keep bool, console io.Writer, inputSize int) (*Streams, error) {
	input, err := workload.GenerateInput(inputSize)
	if err != nil {
		return nil, fmt.Errorf("generate input: %w", err)
	}

	s := &Streams{Stdin: stringio.NewReader(input)}
	if capture {
		s.Log = stringio.NewWriteLog("stdout")
		s.Log.SetKeepOutput(keep)
		s.Stdout = s.Log
	} else {
		if console == nil {
			console = io.Discard
		}
		s.Stdout = console
	}
	return s, nil
}

// Close closes both targets. A captured log keeps its content only if
// keep-output was requested.
func (s *Streams) Close() error {
	var errs []error
	if err := s.Stdin.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close input: %w", err))
	}
	if s.Log != nil {
		if err := s.Log.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close output: %w", err))
		}
	}
	return errors.Join(errs...)
}
