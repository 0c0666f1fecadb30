//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/project"
	"github.com/droidgen-labs/droidgen/internal/prompt"
	"github.com/droidgen-labs/droidgen/internal/scaffold"
	"github.com/droidgen-labs/droidgen/internal/settings"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	manifestPath = "app/src/main/AndroidManifest.xml"
	stringsPath  = "app/src/main/res/values/strings.xml"
	dimensPath   = "app/src/main/res/values/dimens.xml"
	wideDimens   = "app/src/main/res/values-w820dp/dimens.xml"
	colorsPath   = "app/src/main/res/values/colors.xml"
)

// TestFullFlowThreeActivities adds one activity of every type to the same
// project and checks that shared resources are merged exactly once.
func TestFullFlowThreeActivities(t *testing.T) {
	env := setupTestEnv(t)
	setupAndroidProject(t, env.ProjectDir)
	p := func(rel string) string { return filepath.Join(env.ProjectDir, filepath.FromSlash(rel)) }

	gen := scaffold.New(osfs.New(env.ProjectDir), scaffold.Options{}, nil)

	requests := []activity.Request{
		{Type: activity.TypeEmpty, Name: "SettingsActivity", Package: "com.example.notes.view.activities", Layout: "activity_settings"},
		{Type: activity.TypeBlank, Name: "AboutActivity", Package: "com.example.notes.view.activities", Layout: "activity_about"},
		{Type: activity.TypeFullscreen, Name: "SplashActivity", Package: "com.example.notes", Layout: "activity_splash", Launcher: true},
	}

	var last *scaffold.Result
	for _, req := range requests {
		result, err := gen.Run(req)
		if err != nil {
			t.Fatalf("Run(%s): %v", req.Name, err)
		}
		last = result
	}

	assertFileExists(t, p("app/src/main/java/com/example/notes/view/activities/SettingsActivity.java"))
	assertFileExists(t, p("app/src/main/java/com/example/notes/view/activities/AboutActivity.java"))
	assertFileExists(t, p("app/src/main/java/com/example/notes/SplashActivity.java"))
	assertFileExists(t, p("app/src/main/res/layout/activity_splash.xml"))

	assertCount(t, p(dimensPath), "activity_horizontal_margin", 1)
	assertCount(t, p(dimensPath), "activity_vertical_margin", 1)
	assertFileContains(t, p(wideDimens), "64dp")
	assertFileContains(t, p(stringsPath), `<string name="title_activity_settings">SettingsActivity</string>`)
	assertFileContains(t, p(stringsPath), `<string name="title_activity_about">AboutActivity</string>`)
	assertFileContains(t, p(stringsPath), `<string name="title_activity_splash">SplashActivity</string>`)
	assertCount(t, p(stringsPath), "dummy_button", 1)
	assertFileContains(t, p(colorsPath), "black_overlay")

	assertFileContains(t, p(manifestPath), `android:name=".view.activities.SettingsActivity"`)
	assertFileContains(t, p(manifestPath), `android:name=".view.activities.AboutActivity"`)
	assertFileContains(t, p(manifestPath), `android:name=".SplashActivity"`)
	assertCount(t, p(manifestPath), "<intent-filter>", 1)

	warned := false
	for _, e := range last.Events {
		if e.Kind == scaffold.EventWarn {
			warned = true
		}
	}
	if !warned {
		t.Error("launcher request on a project with a launcher should warn")
	}
}

// TestConflictKeepsUserEdits edits a generated class and re-runs the same
// request: the run must stop and leave every file as it was.
func TestConflictKeepsUserEdits(t *testing.T) {
	env := setupTestEnv(t)
	setupAndroidProject(t, env.ProjectDir)
	p := func(rel string) string { return filepath.Join(env.ProjectDir, filepath.FromSlash(rel)) }

	gen := scaffold.New(osfs.New(env.ProjectDir), scaffold.Options{}, nil)
	req := activity.Request{Type: activity.TypeEmpty, Name: "EditorActivity", Package: "com.example.notes", Layout: "activity_editor"}

	if _, err := gen.Run(req); err != nil {
		t.Fatal(err)
	}
	classPath := p("app/src/main/java/com/example/notes/EditorActivity.java")
	writeFile(t, classPath, "// edited by hand\n")
	manifestBefore := readFile(t, p(manifestPath))

	_, err := gen.Run(req)
	if !errors.Is(err, scaffold.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if got := readFile(t, classPath); got != "// edited by hand\n" {
		t.Errorf("class overwritten: %q", got)
	}
	if got := readFile(t, p(manifestPath)); got != manifestBefore {
		t.Error("manifest changed on a conflicting run")
	}
	assertCount(t, p(stringsPath), "title_activity_editor", 1)
}

// TestCustomModuleLayout generates into a non-default module and source set.
func TestCustomModuleLayout(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, "wear/src/debug/AndroidManifest.xml"),
		"<manifest package=\"com.example.wear\">\n    <application>\n    </application>\n</manifest>\n")

	opts := scaffold.Options{Layout: project.NewLayout("wear", "debug")}
	req := activity.Request{Type: activity.TypeBlank, Name: "WatchActivity", Package: "com.example.wear", Layout: "activity_watch"}
	if _, err := scaffold.New(osfs.New(env.ProjectDir), opts, nil).Run(req); err != nil {
		t.Fatal(err)
	}

	assertFileExists(t, filepath.Join(env.ProjectDir, "wear/src/debug/java/com/example/wear/WatchActivity.java"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "wear/src/debug/res/values/dimens.xml"))
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "app"))
	assertFileContains(t, filepath.Join(env.ProjectDir, "wear/src/debug/AndroidManifest.xml"), `android:name=".WatchActivity"`)
}

// TestRememberedAnswersDriveDefaults saves settings after one run and checks
// that the next non-interactive run starts from them.
func TestRememberedAnswersDriveDefaults(t *testing.T) {
	env := setupTestEnv(t)
	setupAndroidProject(t, env.ProjectDir)
	fsys := osfs.New(env.ProjectDir)

	no := false
	if err := settings.Save(fsys, &settings.Settings{
		Version:         "1.0.0",
		AppPackage:      "com.example.notes",
		ActivityType:    "blank",
		ActivityPackage: "com.example.notes.ui",
		Launcher:        &no,
	}); err != nil {
		t.Fatal(err)
	}

	saved, err := settings.Load(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if w := settings.CheckVersion(saved.Version, "1.2.0"); w != "" {
		t.Errorf("older settings should not warn: %s", w)
	}

	req, err := prompt.Resolve(nil, prompt.Given{Name: "ListActivity"}, saved.AppPackage, saved)
	if err != nil {
		t.Fatal(err)
	}
	if req.Type != activity.TypeBlank || req.Package != "com.example.notes.ui" || req.Layout != "activity_list" {
		t.Errorf("unexpected request: %+v", req)
	}

	if _, err := scaffold.New(fsys, scaffold.Options{AppPackage: saved.AppPackage}, nil).Run(req); err != nil {
		t.Fatal(err)
	}
	assertFileContains(t, filepath.Join(env.ProjectDir, "app/src/main/java/com/example/notes/ui/ListActivity.java"), "import com.example.notes.R;")
}
