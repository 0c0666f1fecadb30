package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/logging"
	"github.com/droidgen-labs/droidgen/internal/manifest"
	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/resources"
	"github.com/droidgen-labs/droidgen/internal/taginsert"
	"github.com/go-git/go-billy/v5"
)

// ErrConflict is matched by every *ConflictError.
var ErrConflict = errors.New("target file already exists")

// ConflictError lists generated files that already exist. When it is
// returned nothing has been written.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConflict, strings.Join(e.Paths, ", "))
}

// Is makes errors.Is(err, ErrConflict) hold for ConflictError values.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// EventKind is the status word printed for an event.
type EventKind string

const (
	EventCreate    EventKind = "create"
	EventUpdate    EventKind = "update"
	EventIdentical EventKind = "identical"
	EventWarn      EventKind = "warn"
	EventError     EventKind = "error"
)

// Event is one line of the run report, in the order things happened.
type Event struct {
	Kind    EventKind
	Path    string
	Message string
}

// Result holds the outcome of a generator run.
type Result struct {
	Events    []Event
	Changes   []project.Change
	Committed bool
}

func (r *Result) add(kind EventKind, path, msg string) {
	r.Events = append(r.Events, Event{Kind: kind, Path: path, Message: msg})
}

// Options configures a Generator.
type Options struct {
	Layout project.Layout
	// AppPackage is the application package; when empty it is read from
	// the manifest's package attribute.
	AppPackage string
	// ManifestPosition overrides the variant's insertion position.
	ManifestPosition *taginsert.Position
	// DryRun stages every change but never commits.
	DryRun bool
}

// Generator writes one activity into the project rooted at its filesystem.
type Generator struct {
	fs        billy.Filesystem
	opts      Options
	templates Templates
	logger    *slog.Logger
}

// New returns a Generator over fsys, which must be rooted at the project
// directory.
func New(fsys billy.Filesystem, opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Layout.Module == "" || opts.Layout.SourceSet == "" {
		opts.Layout = project.NewLayout(opts.Layout.Module, opts.Layout.SourceSet)
	}
	return &Generator{fs: fsys, opts: opts, logger: logger}
}

// run carries the state of one Generate call between steps.
type run struct {
	req        activity.Request
	variant    activity.Variant
	appPackage string
	tree       *project.Tree
	result     *Result
}

// Run generates req. A *ConflictError is returned, together with a result
// holding one error event per conflicting path, when the class or layout
// already exists. Any other error is fatal; in both cases nothing is written.
func (g *Generator) Run(req activity.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	variant, err := req.Variant()
	if err != nil {
		return nil, err
	}

	r := &run{
		req:     req,
		variant: variant,
		tree:    project.NewTree(g.fs, g.logger),
		result:  &Result{},
	}
	r.appPackage = g.opts.AppPackage
	if r.appPackage == "" {
		r.appPackage = DetectAppPackage(r.tree, g.opts.Layout)
	}

	steps := []struct {
		name string
		fn   func(*run) error
	}{
		{"check conflicts", g.checkConflicts},
		{"create directories", g.makeDirs},
		{"render class", g.renderClass},
		{"render layout", g.renderLayout},
		{"merge resources", g.mergeResources},
		{"register manifest", g.registerManifest},
		{"commit", g.commit},
	}
	for _, step := range steps {
		g.logger.Debug("scaffold step", "step", step.name)
		if err := step.fn(r); err != nil {
			return r.result, err
		}
	}
	return r.result, nil
}

// DetectAppPackage returns the manifest's package attribute, or "" when
// the manifest is missing or declares none. The content stays cached in
// tree, so a later Register on the same tree does not read the file again.
func DetectAppPackage(tree *project.Tree, l project.Layout) string {
	text, err := tree.ReadFile(l.Manifest())
	if err != nil {
		return ""
	}
	return manifest.AppPackage(text)
}

func (g *Generator) classPath(r *run) string {
	return g.opts.Layout.ClassFile(r.req.Package, r.req.Name)
}

func (g *Generator) layoutPath(r *run) string {
	return g.opts.Layout.LayoutFile(r.req.Layout)
}

func (g *Generator) obligations(r *run) ([]resources.Obligation, error) {
	return resources.ObligationsFor(g.opts.Layout, r.req.Type, resources.Params{
		LayoutName: r.req.Layout,
		Title:      r.req.Title(),
	})
}

func (g *Generator) checkConflicts(r *run) error {
	var conflicts []string
	for _, p := range []string{g.classPath(r), g.layoutPath(r)} {
		if r.tree.Exists(p) {
			conflicts = append(conflicts, p)
			r.result.add(EventError, p, "already exists")
		}
	}
	if len(conflicts) > 0 {
		return &ConflictError{Paths: conflicts}
	}
	return nil
}

func (g *Generator) makeDirs(r *run) error {
	r.tree.MkdirAll(g.opts.Layout.JavaDir(r.req.Package))
	r.tree.MkdirAll(g.opts.Layout.ResDir("layout"))

	obs, err := g.obligations(r)
	if err != nil {
		return err
	}
	for _, ob := range obs {
		r.tree.MkdirAll(filepath.Dir(ob.File))
	}
	return nil
}

func (g *Generator) templateData(r *run) *TemplateData {
	return NewTemplateData(r.req.Name, r.req.Package, r.req.Layout, r.appPackage)
}

func (g *Generator) renderClass(r *run) error {
	return g.render(r, "activity", r.variant.ClassTemplate, g.classPath(r))
}

func (g *Generator) renderLayout(r *run) error {
	return g.render(r, "layout", r.variant.LayoutTemplate, g.layoutPath(r))
}

func (g *Generator) render(r *run, dir, name, dest string) error {
	data, err := g.templates.Render(dir, name, g.templateData(r))
	if err != nil {
		return err
	}
	if err := r.tree.WriteFile(dest, string(data)); err != nil {
		return err
	}
	r.result.add(EventCreate, dest, "")
	return nil
}

func (g *Generator) mergeResources(r *run) error {
	obs, err := g.obligations(r)
	if err != nil {
		return err
	}

	planner := resources.NewPlanner(r.tree, g.templates, g.logger)
	outcomes, err := planner.ApplyAll(obs)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		switch {
		case o.Created:
			r.result.add(EventCreate, o.File, "")
		case o.Modified:
			r.result.add(EventUpdate, o.File, fmt.Sprintf("%d %s added", o.Inserted, plural(o.Inserted, "entry", "entries")))
		default:
			r.result.add(EventIdentical, o.File, "")
		}
	}
	return nil
}

func (g *Generator) registerManifest(r *run) error {
	pos := r.variant.ManifestPosition
	if g.opts.ManifestPosition != nil {
		pos = *g.opts.ManifestPosition
	}

	entry := manifest.Entry{
		QualifiedName: manifest.QualifiedName(r.appPackage, r.req.Package, r.req.Name),
		LabelRef:      "@string/title_" + r.req.Layout,
		Launcher:      r.req.Launcher,
	}
	path := g.opts.Layout.Manifest()
	res, err := manifest.Register(r.tree, path, entry, pos)
	if err != nil {
		return err
	}

	switch {
	case res.AlreadyRegistered:
		r.result.add(EventIdentical, path, entry.QualifiedName+" already registered")
	case res.Downgraded:
		r.result.add(EventUpdate, path, "")
		r.result.add(EventWarn, path, fmt.Sprintf("another launcher activity exists; %s registered without an intent filter", r.req.Name))
	default:
		r.result.add(EventUpdate, path, "")
	}
	return nil
}

func (g *Generator) commit(r *run) error {
	r.result.Changes = r.tree.Changes()
	if g.opts.DryRun {
		g.logger.Debug("dry run, skipping commit", "changes", len(r.result.Changes))
		return nil
	}
	if err := r.tree.Commit(); err != nil {
		return err
	}
	r.result.Committed = true
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
