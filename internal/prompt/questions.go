package prompt

import (
	"fmt"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/naming"
	"github.com/droidgen-labs/droidgen/internal/settings"
)

// Questions is the number of questions in a full interactive run.
const Questions = 5

// Given holds the values fixed by arguments or flags. Zero fields are
// resolved by asking, or from defaults when no Asker is supplied.
type Given struct {
	Type     string
	Name     string
	Package  string
	Layout   string
	Launcher *bool
}

// Resolve fills in every missing field of g and returns the request. With a
// nil Asker the defaults are taken without asking. saved supplies the
// remembered type, package and launcher answers; it may be nil.
func Resolve(a *Asker, g Given, appPackage string, saved *settings.Settings) (activity.Request, error) {
	if saved == nil {
		saved = &settings.Settings{}
	}
	var req activity.Request

	t, err := resolveType(a, g.Type, saved.ActivityType)
	if err != nil {
		return req, err
	}
	req.Type = t
	variant, err := activity.Lookup(t)
	if err != nil {
		return req, err
	}

	req.Name, err = resolveText(a, g.Name, 2, "What are you calling your activity?",
		activity.DefaultName(t), validateName)
	if err != nil {
		return req, err
	}

	pkgDefault := saved.ActivityPackage
	if pkgDefault == "" {
		pkgDefault = activity.DefaultPackage(appPackage)
	}
	req.Package, err = resolveText(a, g.Package, 3, "Under which package do you want to create the activity?",
		pkgDefault, validatePackage)
	if err != nil {
		return req, err
	}

	req.Layout, err = resolveText(a, g.Layout, 4, "What are you calling the corresponding layout?",
		activity.DefaultLayout(req.Name), validateLayout)
	if err != nil {
		return req, err
	}

	launcherDefault := variant.Launcher
	if saved.ActivityType == string(t) {
		launcherDefault = saved.LauncherOr(launcherDefault)
	}
	switch {
	case g.Launcher != nil:
		req.Launcher = *g.Launcher
	case a == nil:
		req.Launcher = launcherDefault
	default:
		req.Launcher, err = a.Confirm(question(5, "Should it be the launcher activity?"), launcherDefault)
		if err != nil {
			return req, err
		}
	}

	return req, nil
}

func question(n int, text string) string {
	return fmt.Sprintf("(%d/%d) %s", n, Questions, text)
}

func resolveType(a *Asker, given, remembered string) (activity.Type, error) {
	if given != "" {
		return activity.ParseType(given)
	}

	variants := activity.Variants()
	def := 0
	for i, v := range variants {
		if string(v.Type) == remembered {
			def = i
		}
	}
	if a == nil {
		return variants[def].Type, nil
	}

	items := make([]string, len(variants))
	for i, v := range variants {
		items[i] = fmt.Sprintf("%s (%s)", v.Type, v.Description)
	}
	idx, err := a.Select(question(1, "Which type of activity would you like to create?"), items, def)
	if err != nil {
		return "", err
	}
	return variants[idx].Type, nil
}

func resolveText(a *Asker, given string, n int, text, def string, validate func(string) error) (string, error) {
	if given != "" {
		return given, nil
	}
	if a == nil {
		return def, nil
	}
	return a.Input(question(n, text), def, validate)
}

func validateName(s string) error {
	if !naming.IsJavaIdentifier(s) {
		return fmt.Errorf("%q is not a valid Java class name", s)
	}
	return nil
}

func validatePackage(s string) error {
	if !naming.IsPackageName(s) {
		return fmt.Errorf("%q is not a valid Java package", s)
	}
	return nil
}

func validateLayout(s string) error {
	if !naming.IsResourceName(s) {
		return fmt.Errorf("%q is not a valid resource name", s)
	}
	return nil
}
