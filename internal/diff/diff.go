// Package diff renders staged file changes as line diffs for dry runs.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Type    string
	Text    string
	OldLine int
	NewLine int
}

const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
)

// ContextLines is how many unchanged lines Render keeps around each change.
const ContextLines = 2

// TextDiff returns the line diff of before and after.
func TextDiff(before, after string) []Line {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	oldLine := 1
	newLine := 1
	for _, d := range diffs {
		chunkLines := strings.Split(d.Text, "\n")
		if len(chunkLines) > 0 && chunkLines[len(chunkLines)-1] == "" {
			chunkLines = chunkLines[:len(chunkLines)-1]
		}
		for _, line := range chunkLines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{Type: LineContext, Text: line, OldLine: oldLine, NewLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{Type: LineRemoved, Text: line, OldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{Type: LineAdded, Text: line, NewLine: newLine})
				newLine++
			}
		}
	}
	return lines
}

// Stats counts added and removed lines.
func Stats(lines []Line) (added, removed int) {
	for _, l := range lines {
		switch l.Type {
		case LineAdded:
			added++
		case LineRemoved:
			removed++
		}
	}
	return added, removed
}

// Render writes a diff of one file to w. New files are shown in full;
// modified files keep ContextLines of context around each change, with
// skipped runs marked by "@@ line N @@".
func Render(w io.Writer, path, before, after string, created bool) error {
	header := "--- " + path + "\n+++ " + path + "\n"
	if created {
		header = "--- /dev/null\n+++ " + path + "\n"
	}
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	lines := TextDiff(before, after)
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Type == LineContext {
			continue
		}
		lo, hi := max(0, i-ContextLines), min(len(lines)-1, i+ContextLines)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	skipping := true
	for i, l := range lines {
		if !keep[i] {
			skipping = true
			continue
		}
		if skipping {
			if _, err := fmt.Fprintf(w, "@@ line %d @@\n", lineNumber(l)); err != nil {
				return err
			}
			skipping = false
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix(l.Type), l.Text); err != nil {
			return err
		}
	}
	return nil
}

func prefix(kind string) string {
	switch kind {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// lineNumber prefers the new-file line; removed lines only have an old one.
func lineNumber(l Line) int {
	if l.NewLine > 0 {
		return l.NewLine
	}
	return l.OldLine
}
