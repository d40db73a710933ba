package telemetry

import (
	"fmt"
	"log/slog"
)

// SlogStatus forwards benchmark progress messages to a structured logger.
type SlogStatus struct {
	Logger *slog.Logger
}

// NewSlogStatus returns a status sink logging to l, or to the default
// logger when l is nil.
func NewSlogStatus(l *slog.Logger) *SlogStatus {
	return &SlogStatus{Logger: l}
}

func (s *SlogStatus) Status(format string, args ...any) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Info(fmt.Sprintf(format, args...), "component", "status")
}
