package resources

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/project"
)

// ResourcesTag is the enclosing element of every value-resource file.
const ResourcesTag = "resources"

// Entry is one required resource declaration.
type Entry struct {
	// Probe is searched for verbatim; when found the entry counts as present.
	Probe string
	// Fragment is inserted as-is, indentation and newline included.
	Fragment string
}

// Obligation is a file the activity depends on plus the entries it needs.
type Obligation struct {
	File    string // project-relative path
	Stock   string // stock template copied when File is absent
	Tag     string
	Entries []Entry
}

// Params carries the request fields that entries are derived from.
type Params struct {
	LayoutName string
	Title      string
}

type entryRule func(Params) Entry

type fileRule struct {
	dir     string
	file    string
	entries []entryRule
}

func literal(probe, fragment string) entryRule {
	return func(Params) Entry { return Entry{Probe: probe, Fragment: fragment} }
}

func titleString(p Params) Entry {
	name := "title_" + p.LayoutName
	return Entry{
		Probe:    name,
		Fragment: fmt.Sprintf("    <string name=\"%s\">%s</string>\n", name, escape(p.Title)),
	}
}

const (
	horizontalMargin = "    <dimen name=\"activity_horizontal_margin\">16dp</dimen>\n"
	verticalMargin   = "    <dimen name=\"activity_vertical_margin\">16dp</dimen>\n"
	dummyContent     = "    <string name=\"dummy_content\">DUMMY\\nCONTENT</string>\n"
	dummyButton      = "    <string name=\"dummy_button\">Dummy Button</string>\n"
	blackOverlay     = "    <color name=\"black_overlay\">#66000000</color>\n"
)

// The empty type probes margins by bare name while blank probes the full
// opening tag. Both are kept: unifying them would change which existing
// projects a re-run touches.
var catalog = map[activity.Type][]fileRule{
	activity.TypeEmpty: {
		{dir: "values", file: "strings.xml", entries: []entryRule{titleString}},
		{dir: "values", file: "dimens.xml", entries: []entryRule{
			literal("activity_horizontal_margin", horizontalMargin),
			literal("activity_vertical_margin", verticalMargin),
		}},
		{dir: "values-w820dp", file: "dimens.xml"},
	},
	activity.TypeBlank: {
		{dir: "values", file: "strings.xml", entries: []entryRule{titleString}},
		{dir: "values", file: "dimens.xml", entries: []entryRule{
			literal(`<dimen name="activity_horizontal_margin">`, horizontalMargin),
			literal(`<dimen name="activity_vertical_margin">`, verticalMargin),
		}},
		{dir: "values-w820dp", file: "dimens.xml"},
	},
	activity.TypeFullscreen: {
		{dir: "values", file: "strings.xml", entries: []entryRule{
			titleString,
			literal(`<string name="dummy_content">`, dummyContent),
			literal(`<string name="dummy_button">`, dummyButton),
		}},
		{dir: "values", file: "colors.xml", entries: []entryRule{
			literal(`<color name="black_overlay">`, blackOverlay),
		}},
	},
}

// ObligationsFor returns the obligations of activity type t in the order
// they must be applied.
func ObligationsFor(l project.Layout, t activity.Type, p Params) ([]Obligation, error) {
	rules, ok := catalog[t]
	if !ok {
		return nil, fmt.Errorf("no resource catalog for activity type %q", t)
	}

	obs := make([]Obligation, 0, len(rules))
	for _, r := range rules {
		ob := Obligation{
			File:  l.ValuesFile(r.dir, r.file),
			Stock: path.Join(r.dir, r.file),
			Tag:   ResourcesTag,
		}
		for _, rule := range r.entries {
			ob.Entries = append(ob.Entries, rule(p))
		}
		obs = append(obs, ob)
	}
	return obs, nil
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
