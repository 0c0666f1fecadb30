package resources

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/droidgen-labs/droidgen/internal/logging"
	"github.com/droidgen-labs/droidgen/internal/naming"
	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/taginsert"
)

// ErrMissingResource means a file that should exist after the ensure step
// could not be read.
var ErrMissingResource = errors.New("resource file missing")

// StockSource supplies the stock content copied for absent resource files.
type StockSource interface {
	Stock(name string) ([]byte, error)
}

// Outcome reports what applying one obligation did to its file.
type Outcome struct {
	File     string
	Created  bool // copied from stock in this run
	Modified bool // at least one entry inserted
	Inserted int
}

// Planner applies obligations against a project tree.
type Planner struct {
	tree   *project.Tree
	stock  StockSource
	logger *slog.Logger
}

// NewPlanner returns a Planner writing through tree.
func NewPlanner(tree *project.Tree, stock StockSource, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Planner{tree: tree, stock: stock, logger: logger}
}

// Apply ensures ob.File exists, then inserts every entry whose probe is not
// found. The file is written at most once.
func (p *Planner) Apply(ob Obligation) (Outcome, error) {
	out := Outcome{File: ob.File}

	if !p.tree.Exists(ob.File) {
		data, err := p.stock.Stock(ob.Stock)
		if err != nil {
			return out, fmt.Errorf("loading stock %s: %w", ob.Stock, err)
		}
		if err := p.tree.WriteFile(ob.File, string(data)); err != nil {
			return out, err
		}
		out.Created = true
		p.logger.Debug("ensured resource file from stock", "file", ob.File, "stock", ob.Stock)
	}

	text, err := p.tree.ReadFile(ob.File)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrMissingResource, err)
	}

	for _, e := range ob.Entries {
		if naming.Contains(text, e.Probe) {
			p.logger.Debug("probe satisfied", "file", ob.File, "probe", e.Probe)
			continue
		}
		text, err = taginsert.Insert(text, ob.Tag, e.Fragment, taginsert.BeforeClose)
		if err != nil {
			return out, fmt.Errorf("merging into %s: %w", ob.File, err)
		}
		out.Inserted++
		p.logger.Debug("inserted entry", "file", ob.File, "probe", e.Probe)
	}

	if out.Inserted > 0 {
		if err := p.tree.WriteFile(ob.File, text); err != nil {
			return out, err
		}
		out.Modified = true
	}
	return out, nil
}

// ApplyAll applies obligations in order and stops at the first error.
func (p *Planner) ApplyAll(obs []Obligation) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(obs))
	for _, ob := range obs {
		out, err := p.Apply(ob)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
