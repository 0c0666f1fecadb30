package activity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/droidgen-labs/droidgen/internal/naming"
	"github.com/droidgen-labs/droidgen/internal/taginsert"
)

// Type is an activity template family.
type Type string

const (
	TypeEmpty      Type = "empty"
	TypeBlank      Type = "blank"
	TypeFullscreen Type = "fullscreen"
)

// Variant is one row of the activity table.
type Variant struct {
	Type        Type
	Description string
	// ClassTemplate and LayoutTemplate name embedded scaffold templates.
	ClassTemplate  string
	LayoutTemplate string
	// Launcher is the default for the launcher question.
	Launcher bool
	// ManifestPosition is where the <activity> entry lands inside <application>.
	ManifestPosition taginsert.Position
}

var variants = []Variant{
	{
		Type:             TypeEmpty,
		Description:      "empty activity",
		ClassTemplate:    "EmptyActivity.java.tmpl",
		LayoutTemplate:   "activity_empty.xml.tmpl",
		Launcher:         false,
		ManifestPosition: taginsert.BeforeClose,
	},
	{
		Type:             TypeBlank,
		Description:      "blank activity with action bar menu",
		ClassTemplate:    "BlankActivity.java.tmpl",
		LayoutTemplate:   "activity_blank.xml.tmpl",
		Launcher:         false,
		ManifestPosition: taginsert.BeforeClose,
	},
	{
		Type:             TypeFullscreen,
		Description:      "fullscreen activity that hides the system UI",
		ClassTemplate:    "FullscreenActivity.java.tmpl",
		LayoutTemplate:   "activity_fullscreen.xml.tmpl",
		Launcher:         true,
		ManifestPosition: taginsert.AfterOpen,
	},
}

// Variants returns the activity table in prompt order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant for t.
func Lookup(t Type) (Variant, error) {
	for _, v := range variants {
		if v.Type == t {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown activity type %q: must be one of %s", t, strings.Join(TypeNames(), ", "))
}

// ParseType validates and returns the Type named s.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(t); err != nil {
		return "", err
	}
	return t, nil
}

// TypeNames lists the known type names in table order.
func TypeNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = string(v.Type)
	}
	return names
}

// Request is the fully resolved input of one generator run. It is built once
// after prompting and never mutated.
type Request struct {
	Type     Type
	Name     string // class name, e.g. "SettingsActivity"
	Package  string // dot-delimited, e.g. "com.app.view.activities"
	Layout   string // layout resource name, e.g. "activity_settings"
	Launcher bool
}

// Validate checks every field before anything touches the project.
func (r Request) Validate() error {
	var errs []error
	if _, err := Lookup(r.Type); err != nil {
		errs = append(errs, err)
	}
	if !naming.IsJavaIdentifier(r.Name) {
		errs = append(errs, fmt.Errorf("invalid activity name %q: must be a Java class name", r.Name))
	}
	if !naming.IsPackageName(r.Package) {
		errs = append(errs, fmt.Errorf("invalid package %q: must be a dot-delimited Java package", r.Package))
	}
	if !naming.IsResourceName(r.Layout) {
		errs = append(errs, fmt.Errorf("invalid layout name %q: must match [a-z][a-z0-9_]*", r.Layout))
	}
	return errors.Join(errs...)
}

// Variant returns the table row for the request's type.
func (r Request) Variant() (Variant, error) {
	return Lookup(r.Type)
}

// Title is the value of the generated title_<layout> string resource.
func (r Request) Title() string {
	return r.Name
}

// DefaultName is "<Type>Activity", e.g. "BlankActivity".
func DefaultName(t Type) string {
	return naming.CapitalizeFirst(string(t)) + "Activity"
}

// DefaultPackage is "<appPackage>.view.activities". Without an application
// package only the suffix is returned.
func DefaultPackage(appPackage string) string {
	if appPackage == "" {
		return "view.activities"
	}
	return appPackage + ".view.activities"
}

// DefaultLayout derives "activity_settings" from "SettingsActivity".
func DefaultLayout(name string) string {
	return "activity_" + naming.CamelToSnake(naming.TrimActivity(name))
}
