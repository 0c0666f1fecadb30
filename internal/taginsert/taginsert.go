// Package taginsert splices text fragments into a named XML element without
// parsing the document, so the rest of the file stays byte-for-byte intact.
package taginsert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTagNotFound is matched by every *TagError.
var ErrTagNotFound = errors.New("tag not found")

// TagError reports that the enclosing element is missing or unterminated.
type TagError struct {
	Tag    string
	Reason string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("<%s>: %s", e.Tag, e.Reason)
}

// Is makes errors.Is(err, ErrTagNotFound) hold for TagError values.
func (e *TagError) Is(target error) bool {
	return target == ErrTagNotFound
}

// Position selects where inside the element a fragment goes.
type Position int

const (
	// BeforeClose places the fragment just before the closing tag.
	BeforeClose Position = iota
	// AfterOpen places the fragment just after the opening tag.
	AfterOpen
)

func (p Position) String() string {
	switch p {
	case BeforeClose:
		return "before-close"
	case AfterOpen:
		return "after-open"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition accepts "before-close" or "after-open".
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before-close":
		return BeforeClose, nil
	case "after-open":
		return AfterOpen, nil
	}
	return 0, fmt.Errorf("invalid position %q: must be before-close or after-open", s)
}

// Insert returns text with fragment placed inside the first <tag> element.
// Elements of the same name are assumed not to nest. The fragment is used
// verbatim and should carry its own indentation and trailing newline.
func Insert(text, tag, fragment string, pos Position) (string, error) {
	open, openEnd, selfClosing, err := findOpen(text, tag)
	if err != nil {
		return "", err
	}

	if selfClosing {
		// <tag .../> becomes <tag ...>fragment</tag>
		head := strings.TrimRight(text[:openEnd-2], " \t")
		return head + ">\n" + fragment + "</" + tag + ">" + text[openEnd:], nil
	}

	switch pos {
	case AfterOpen:
		at := skipLineBreak(text, openEnd)
		return text[:at] + fragment + text[at:], nil
	case BeforeClose:
		closeAt := findClose(text[openEnd:], tag)
		if closeAt < 0 {
			return "", &TagError{Tag: tag, Reason: fmt.Sprintf("no closing </%s> after offset %d", tag, open)}
		}
		closeAt += openEnd
		at := lineStartIfIndented(text, closeAt)
		if at < openEnd {
			at = closeAt
		}
		return text[:at] + fragment + text[at:], nil
	default:
		return "", fmt.Errorf("unknown insert position %v", pos)
	}
}

// findOpen locates the first "<tag" start tag. It returns the offset of "<",
// the offset just past the closing ">" and whether the tag is self-closing.
func findOpen(text, tag string) (int, int, bool, error) {
	needle := "<" + tag
	from := 0
	for {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return 0, 0, false, &TagError{Tag: tag, Reason: "no opening tag"}
		}
		start := from + i
		next := start + len(needle)
		if next < len(text) && isNameEnd(text[next]) {
			end := tagEnd(text, next)
			if end < 0 {
				return 0, 0, false, &TagError{Tag: tag, Reason: "unterminated opening tag"}
			}
			end++
			return start, end, text[end-2] == '/', nil
		}
		from = next
	}
}

// tagEnd returns the offset of the ">" closing the start tag whose
// attributes begin at from, skipping quoted attribute values, or -1.
func tagEnd(text string, from int) int {
	var quote byte
	for i := from; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}

// findClose returns the offset of the first "</tag>" (whitespace allowed
// before ">") in text, or -1.
func findClose(text, tag string) int {
	needle := "</" + tag
	from := 0
	for {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return -1
		}
		start := from + i
		rest := strings.TrimLeft(text[start+len(needle):], " \t\r\n")
		if strings.HasPrefix(rest, ">") {
			return start
		}
		from = start + len(needle)
	}
}

func isNameEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '>', '/':
		return true
	}
	return false
}

func skipLineBreak(text string, at int) int {
	if strings.HasPrefix(text[at:], "\r\n") {
		return at + 2
	}
	if strings.HasPrefix(text[at:], "\n") {
		return at + 1
	}
	return at
}

// lineStartIfIndented returns the start of the line holding offset at when
// only spaces or tabs precede it on that line; otherwise at itself.
func lineStartIfIndented(text string, at int) int {
	i := at
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i == 0 || text[i-1] == '\n' {
		return i
	}
	return at
}
