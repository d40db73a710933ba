package stringio

// WriteLog records every write call as a separate unit and joins the units
// on demand. Output produced line by line therefore joins to exactly the
// bytes a collect-then-join writer would have produced.
type WriteLog struct {
	name   string
	units  [][]byte
	size   int
	keep   bool
	closed bool
}

// NewWriteLog returns an empty, open log.
func NewWriteLog(name string) *WriteLog {
	return &WriteLog{name: name}
}

// Name returns the name the log was opened with.
func (w *WriteLog) Name() string { return w.name }

// SetKeepOutput controls whether Close keeps the accumulated units.
func (w *WriteLog) SetKeepOutput(keep bool) {
	w.keep = keep
}

// Write appends a copy of p as one unit. Empty writes are not recorded.
func (w *WriteLog) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	unit := make([]byte, len(p))
	copy(unit, p)
	w.units = append(w.units, unit)
	w.size += len(unit)
	return len(p), nil
}

// WriteString appends s as one unit.
func (w *WriteLog) WriteString(s string) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if s == "" {
		return 0, nil
	}
	w.units = append(w.units, []byte(s))
	w.size += len(s)
	return len(s), nil
}

// WriteByte appends a single-byte unit.
func (w *WriteLog) WriteByte(c byte) error {
	if w.closed {
		return ErrClosed
	}
	w.units = append(w.units, []byte{c})
	w.size++
	return nil
}

// Join concatenates all units in append order into a new buffer.
// The units are left in place.
func (w *WriteLog) Join() []byte {
	out := make([]byte, 0, w.size)
	for _, u := range w.units {
		out = append(out, u...)
	}
	return out
}

// Units returns the number of recorded write units.
func (w *WriteLog) Units() int { return len(w.units) }

// Len returns the total number of bytes recorded.
func (w *WriteLog) Len() int { return w.size }

// Rewind discards every unit so the log can be filled again.
func (w *WriteLog) Rewind() {
	w.units = nil
	w.size = 0
}

// Read always fails: a WriteLog is only read back through Join.
func (w *WriteLog) Read(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return 0, ErrWriteOnly
}

// Seek always fails: units are append-only.
func (w *WriteLog) Seek(offset int64, whence int) (int64, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return 0, ErrNotSeekable
}

// Close stops further writes. Unit storage is released unless keep-output
// was set, in which case Join keeps returning the content. Closing an
// already closed log returns ErrClosed and changes nothing.
func (w *WriteLog) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	if !w.keep {
		w.Rewind()
	}
	return nil
}

// Closed reports whether Close has been called.
func (w *WriteLog) Closed() bool { return w.closed }
