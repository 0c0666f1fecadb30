// Package report prints the status lines of a generator run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/droidgen-labs/droidgen/internal/scaffold"
	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

var kindColors = map[scaffold.EventKind]string{
	scaffold.EventCreate:    Green,
	scaffold.EventUpdate:    Blue,
	scaffold.EventIdentical: Cyan,
	scaffold.EventWarn:      Yellow,
	scaffold.EventError:     Red,
}

// Printer writes one right-aligned status word and path per event.
type Printer struct {
	w       io.Writer
	color   bool
	verbose bool
}

// New returns a Printer. Colors are used only when color is set and w is a
// terminal. Identical events are printed only when verbose is set.
func New(w io.Writer, color, verbose bool) *Printer {
	return &Printer{w: w, color: color && IsTerminal(w), verbose: verbose}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Event prints e.
func (p *Printer) Event(e scaffold.Event) {
	if e.Kind == scaffold.EventIdentical && !p.verbose {
		return
	}
	status := fmt.Sprintf("%9s", e.Kind)
	if p.color {
		status = kindColors[e.Kind] + status + Reset
	}
	line := status + " " + e.Path
	if e.Message != "" {
		line += " (" + e.Message + ")"
	}
	fmt.Fprintln(p.w, line)
}

// Events prints every event in order.
func (p *Printer) Events(events []scaffold.Event) {
	for _, e := range events {
		p.Event(e)
	}
}

// Success prints a green success message.
func (p *Printer) Success(msg string) {
	p.mark(Green, "✓", msg)
}

// Error prints a red error message.
func (p *Printer) Error(msg string) {
	p.mark(Red, "✗", msg)
}

// Warning prints a yellow warning message.
func (p *Printer) Warning(msg string) {
	p.mark(Yellow, "!", msg)
}

// Info prints a blue info message.
func (p *Printer) Info(msg string) {
	p.mark(Blue, "i", msg)
}

func (p *Printer) mark(color, symbol, msg string) {
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s%s %s\n", Bold, color, symbol, Reset, msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", symbol, msg)
}
