//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // $HOME, holds .droidgen/config.yaml
	ProjectDir string // an Android project root
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so user config never leaks into a test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// setupAndroidProject writes a minimal Studio-style project: a launcher
// MainActivity in the manifest and the stock values files.
func setupAndroidProject(t *testing.T, projectDir string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, "settings.gradle"), "include ':app'\n")
	writeFile(t, filepath.Join(projectDir, "app/src/main/AndroidManifest.xml"), `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="com.example.notes">

    <application
        android:allowBackup="true"
        android:icon="@mipmap/ic_launcher"
        android:label="@string/app_name"
        android:theme="@style/AppTheme">
        <activity
            android:name=".MainActivity"
            android:label="@string/app_name" >
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />

                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>

</manifest>
`)
	writeFile(t, filepath.Join(projectDir, "app/src/main/res/values/strings.xml"), `<resources>
    <string name="app_name">Notes</string>
</resources>
`)
	writeFile(t, filepath.Join(projectDir, "app/src/main/res/values/dimens.xml"), `<resources>
    <!-- Default screen margins, per the Android Design guidelines. -->
    <dimen name="activity_horizontal_margin">16dp</dimen>
    <dimen name="activity_vertical_margin">16dp</dimen>
</resources>
`)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	path = filepath.FromSlash(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(filepath.FromSlash(path)); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(filepath.FromSlash(path)); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	content := readFile(t, path)
	if !strings.Contains(content, substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, content)
	}
}

// assertCount fails unless substr occurs exactly n times in the file.
func assertCount(t *testing.T, path, substr string, n int) {
	t.Helper()
	if got := strings.Count(readFile(t, path), substr); got != n {
		t.Errorf("file %s contains %q %d times, want %d", path, substr, got, n)
	}
}
