package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// StatusPrinter renders benchmark progress messages as styled lines.
// Colour is only emitted when the destination is a terminal.
type StatusPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	styles styles
}

// NewStatusPrinter returns a printer writing to w.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &StatusPrinter{w: w, styles: newStyles(r)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Status implements benchmark.StatusSink.
func (p *StatusPrinter) Status(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	style := p.styles.info
	switch {
	case strings.HasPrefix(msg, "Running "):
		style = p.styles.running
	case strings.HasPrefix(msg, "Registration failed"):
		style = p.styles.failure
	case strings.Contains(msg, ": "):
		style = p.styles.score
	}
	p.println(style.Render(msg))
}

// Header prints a highlighted title line.
func (p *StatusPrinter) Header(title string) {
	p.println(p.styles.header.Render(title))
}

// Error prints an error line.
func (p *StatusPrinter) Error(err error) {
	p.println(p.styles.failure.Render("Error: " + err.Error()))
}

func (p *StatusPrinter) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}
