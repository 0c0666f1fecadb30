package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/taginsert"
)

const (
	// ApplicationTag is the element activities are registered in.
	ApplicationTag = "application"
	// LauncherMarker marks an existing launcher activity anywhere in the file.
	LauncherMarker = "LAUNCHER"
)

// ErrManifestNotFound is returned when the module has no manifest file.
var ErrManifestNotFound = errors.New("AndroidManifest.xml not found")

// Entry is the <activity> declaration to add.
type Entry struct {
	QualifiedName string // ".view.activities.SettingsActivity" or a full class name
	LabelRef      string // "@string/title_activity_settings"
	Launcher      bool   // requested launcher registration
}

// Result describes what Register did.
type Result struct {
	File string
	// Launcher is true when the intent filter was written.
	Launcher bool
	// Downgraded is true when a launcher was requested but another launcher
	// activity already exists, so a plain entry was written instead.
	Downgraded bool
	// AlreadyRegistered is true when the activity was found and nothing was written.
	AlreadyRegistered bool
}

// Register reads the manifest at path once and inserts e inside
// <application> at pos. A missing manifest or <application> element is an
// error and nothing is staged.
func Register(tree *project.Tree, path string, e Entry, pos taginsert.Position) (Result, error) {
	res := Result{File: path}

	if !tree.Exists(path) {
		return res, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	text, err := tree.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrManifestNotFound, err)
	}

	if IsRegistered(text, e.QualifiedName) {
		res.AlreadyRegistered = true
		return res, nil
	}

	launcher := e.Launcher
	if launcher && strings.Contains(text, LauncherMarker) {
		launcher = false
		res.Downgraded = true
	}
	res.Launcher = launcher

	updated, err := taginsert.Insert(text, ApplicationTag, Fragment(e, launcher), pos)
	if err != nil {
		return res, fmt.Errorf("registering %s in %s: %w", e.QualifiedName, path, err)
	}
	if err := tree.WriteFile(path, updated); err != nil {
		return res, err
	}
	return res, nil
}

// Fragment renders the <activity> element, with an intent filter when
// launcher is true.
func Fragment(e Entry, launcher bool) string {
	var b strings.Builder
	b.WriteString("        <activity\n")
	fmt.Fprintf(&b, "            android:name=\"%s\"\n", e.QualifiedName)
	if !launcher {
		fmt.Fprintf(&b, "            android:label=\"%s\" />\n", e.LabelRef)
		return b.String()
	}
	fmt.Fprintf(&b, "            android:label=\"%s\" >\n", e.LabelRef)
	b.WriteString("            <intent-filter>\n")
	b.WriteString("                <action android:name=\"android.intent.action.MAIN\" />\n\n")
	b.WriteString("                <category android:name=\"android.intent.category.LAUNCHER\" />\n")
	b.WriteString("            </intent-filter>\n")
	b.WriteString("        </activity>\n")
	return b.String()
}

// IsRegistered reports whether an activity named qualifiedName is declared.
func IsRegistered(text, qualifiedName string) bool {
	return strings.Contains(text, `android:name="`+qualifiedName+`"`)
}

var packageAttr = regexp.MustCompile(`<manifest\b[^>]*?\spackage\s*=\s*"([^"]+)"`)

// AppPackage returns the package attribute of the <manifest> element, or ""
// when the manifest does not declare one (namespace-only Gradle setups).
func AppPackage(text string) string {
	m := packageAttr.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// QualifiedName returns the android:name value for class name in pkg. Classes
// under appPackage use the short ".sub.Name" form.
func QualifiedName(appPackage, pkg, name string) string {
	switch {
	case appPackage == "":
		return pkg + "." + name
	case pkg == appPackage:
		return "." + name
	case strings.HasPrefix(pkg, appPackage+"."):
		return strings.TrimPrefix(pkg, appPackage) + "." + name
	default:
		return pkg + "." + name
	}
}
