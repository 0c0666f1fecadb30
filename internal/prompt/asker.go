// Package prompt asks the activity questions on a line-based terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrNoAnswer is returned when input ends before a valid answer is given.
var ErrNoAnswer = errors.New("no valid answer before end of input")

// Asker reads answers from r and writes questions to w.
type Asker struct {
	reader *bufio.Reader
	w      io.Writer
	eof    bool
}

// NewAsker returns an Asker over r and w.
func NewAsker(r io.Reader, w io.Writer) *Asker {
	return &Asker{reader: bufio.NewReader(r), w: w}
}

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLine returns the next trimmed line. End of input counts as an empty
// answer so that defaults apply.
func (a *Asker) readLine() (string, error) {
	if a.eof {
		return "", nil
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		a.eof = true
	}
	return strings.TrimSpace(line), nil
}

// Select shows items as a numbered list and returns the chosen index. An
// empty answer picks def.
func (a *Asker) Select(question string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%s: nothing to choose from", question)
	}
	if def < 0 || def >= len(items) {
		def = 0
	}

	fmt.Fprintf(a.w, "\n%s\n", question)
	for i, item := range items {
		fmt.Fprintf(a.w, "  %d) %s\n", i+1, item)
	}
	for {
		fmt.Fprintf(a.w, "Enter number [1-%d] (%d): ", len(items), def+1)
		line, err := a.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(a.w, "invalid selection %q: choose 1-%d\n", line, len(items))
		if a.eof {
			return 0, ErrNoAnswer
		}
	}
}

// Input asks a free-text question. An empty answer picks def. When validate
// is non-nil the question repeats until it accepts the answer.
func (a *Asker) Input(question, def string, validate func(string) error) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(a.w, "%s (%s): ", question, def)
		} else {
			fmt.Fprintf(a.w, "%s: ", question)
		}
		answer, err := a.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		if validate == nil {
			return answer, nil
		}
		verr := validate(answer)
		if verr == nil {
			return answer, nil
		}
		fmt.Fprintf(a.w, "%v\n", verr)
		if a.eof {
			return "", fmt.Errorf("%w: %w", ErrNoAnswer, verr)
		}
	}
}

// Confirm asks a yes/no question. An empty answer picks def.
func (a *Asker) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(a.w, "%s [%s]: ", question, hint)
		answer, err := a.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(a.w, "please answer y or n\n")
		if a.eof {
			return false, ErrNoAnswer
		}
	}
}
