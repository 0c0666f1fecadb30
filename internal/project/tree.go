package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/droidgen-labs/droidgen/internal/logging"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// File and directory permissions used for generated content.
const (
	FilePerm os.FileMode = 0644
	DirPerm  os.FileMode = 0755
)

// Change describes one staged file write.
type Change struct {
	Path    string
	Before  string
	After   string
	Created bool
}

// Tree is a staged view over a billy filesystem. Reads see staged content
// first; writes stay in memory until Commit. A Tree is used by a single run
// and is not safe for concurrent use.
type Tree struct {
	fs     billy.Filesystem
	logger *slog.Logger

	staged  map[string]*Change
	disk    map[string]string // content read from fs, at most once per path
	order   []string
	dirs    []string
	hasDir  map[string]bool
	written bool
}

// NewTree returns a Tree over fs. A nil logger discards debug output.
func NewTree(fs billy.Filesystem, logger *slog.Logger) *Tree {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Tree{
		fs:     fs,
		logger: logger,
		staged: make(map[string]*Change),
		disk:   make(map[string]string),
		hasDir: make(map[string]bool),
	}
}

// Exists reports whether path is a regular file, staged or on disk.
// Directories and missing paths both report false.
func (t *Tree) Exists(path string) bool {
	path = filepath.Clean(path)
	if _, ok := t.staged[path]; ok {
		return true
	}
	info, err := t.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the current content of path, staged content first.
func (t *Tree) ReadFile(path string) (string, error) {
	path = filepath.Clean(path)
	if c, ok := t.staged[path]; ok {
		return c.After, nil
	}
	return t.readDisk(path)
}

// readDisk returns the on-disk content of path, reading it only once.
func (t *Tree) readDisk(path string) (string, error) {
	if content, ok := t.disk[path]; ok {
		return content, nil
	}
	data, err := util.ReadFile(t.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	t.disk[path] = string(data)
	return string(data), nil
}

// WriteFile stages content for path. Writing the same path twice in a run
// keeps the original Before so the change still diffs against disk.
func (t *Tree) WriteFile(path, content string) error {
	if t.written {
		return errors.New("tree already committed")
	}
	path = filepath.Clean(path)
	if c, ok := t.staged[path]; ok {
		c.After = content
		t.logger.Debug("restaged file", "path", path, "bytes", len(content))
		return nil
	}

	c := &Change{Path: path, After: content, Created: true}
	before, err := t.readDisk(path)
	switch {
	case err == nil:
		c.Before = before
		c.Created = false
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	t.staged[path] = c
	t.order = append(t.order, path)
	t.logger.Debug("staged file", "path", path, "created", c.Created, "bytes", len(content))
	return nil
}

// MkdirAll stages creation of dir and its parents.
func (t *Tree) MkdirAll(dir string) {
	dir = filepath.Clean(dir)
	if t.hasDir[dir] {
		return
	}
	t.hasDir[dir] = true
	t.dirs = append(t.dirs, dir)
}

// Changes returns the staged file writes in the order they were first staged.
func (t *Tree) Changes() []Change {
	out := make([]Change, 0, len(t.order))
	for _, p := range t.order {
		out = append(out, *t.staged[p])
	}
	return out
}

// Commit writes staged directories and then staged files to the underlying
// filesystem. A Tree can be committed once.
func (t *Tree) Commit() error {
	if t.written {
		return errors.New("tree already committed")
	}
	t.written = true

	for _, dir := range t.dirs {
		if err := t.fs.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	for _, p := range t.order {
		c := t.staged[p]
		if err := t.fs.MkdirAll(filepath.Dir(p), DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", filepath.Dir(p), err)
		}
		if err := util.WriteFile(t.fs, p, []byte(c.After), FilePerm); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
		t.logger.Debug("wrote file", "path", p)
	}
	return nil
}
