package settings

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(memfs.New())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *s != (Settings{}) {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	fs := memfs.New()
	launcher := true
	in := &Settings{
		Version:         "0.3.0",
		AppPackage:      "com.app",
		ActivityType:    "blank",
		ActivityPackage: "com.app.view.activities",
		Launcher:        &launcher,
	}
	if err := Save(fs, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, _ := util.ReadFile(fs, FileName)
	if !strings.Contains(string(data), "activityType: blank") {
		t.Errorf("unexpected file content:\n%s", data)
	}

	out, err := Load(fs)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if out.ActivityPackage != "com.app.view.activities" || out.AppPackage != "com.app" || !out.LauncherOr(false) {
		t.Errorf("round trip lost values: %+v", out)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"bad type", "activityType: tabbed\n", "/activityType"},
		{"bad package", "activityPackage: com..app\n", "/activityPackage"},
		{"bad launcher", "launcher: sometimes\n", "/launcher"},
		{"unknown key", "colour: red\n", ""},
		{"activity name not stored", "activityName: SettingsActivity\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memfs.New()
			if err := util.WriteFile(fs, FileName, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(fs)
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidError, got %v", err)
			}
			found := false
			for _, issue := range invalid.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q in %v", tt.path, invalid.Issues)
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, FileName, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs); err != nil {
		t.Fatalf("empty file should load, got %v", err)
	}
}

func TestLoadNotYAML(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, FileName, []byte("key: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLauncherOr(t *testing.T) {
	var s Settings
	if !s.LauncherOr(true) || s.LauncherOr(false) {
		t.Error("unset launcher should fall back to default")
	}
	no := false
	s.Launcher = &no
	if s.LauncherOr(true) {
		t.Error("stored false must win over default")
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		saved, running string
		warn           bool
	}{
		{"0.2.0", "0.3.0", false},
		{"0.3.0", "0.3.0", false},
		{"v0.4.0", "0.3.0", true},
		{"0.4.0", "dev", false},
		{"", "0.3.0", false},
	}
	for _, tt := range tests {
		got := CheckVersion(tt.saved, tt.running)
		if (got != "") != tt.warn {
			t.Errorf("CheckVersion(%q, %q) = %q, want warning=%v", tt.saved, tt.running, got, tt.warn)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	if c, err := CompareVersions("v1.2.0", "1.10.0"); err != nil || c != -1 {
		t.Errorf("CompareVersions() = %d, %v; want -1", c, err)
	}
	if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
		t.Error("expected parse error")
	}
}
