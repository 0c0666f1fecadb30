package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/droidgen-labs/droidgen/internal/activity"
	"github.com/droidgen-labs/droidgen/internal/settings"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"explicit", "2\n", 1},
		{"default on empty", "\n", 2},
		{"default on eof", "", 2},
		{"retry after invalid", "9\nx\n1\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewAsker(strings.NewReader(tt.input), &out).Select("Pick:", []string{"a", "b", "c"}, 2)
			if err != nil {
				t.Fatalf("Select() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), "  3) c") {
				t.Errorf("list not printed: %q", out.String())
			}
		})
	}
}

func TestSelectInvalidAtEOF(t *testing.T) {
	_, err := NewAsker(strings.NewReader("7"), &bytes.Buffer{}).Select("Pick:", []string{"a"}, 0)
	if !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}
}

func TestInputValidation(t *testing.T) {
	var out bytes.Buffer
	a := NewAsker(strings.NewReader("Bad Name\nGood\n"), &out)
	got, err := a.Input("Name?", "Default", validateName)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Good" {
		t.Errorf("Input() = %q, want Good", got)
	}
	if !strings.Contains(out.String(), "not a valid Java class name") {
		t.Errorf("validation message missing: %q", out.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"NO\n", true, false},
		{"\n", true, true},
		{"maybe\nyes\n", false, true},
	}
	for _, tt := range tests {
		got, err := NewAsker(strings.NewReader(tt.input), &bytes.Buffer{}).Confirm("Launcher?", tt.def)
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	req, err := Resolve(nil, Given{}, "com.app", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := activity.Request{
		Type:    activity.TypeEmpty,
		Name:    "EmptyActivity",
		Package: "com.app.view.activities",
		Layout:  "activity_empty",
	}
	if req != want {
		t.Errorf("Resolve() = %+v, want %+v", req, want)
	}
}

func TestResolveDerivesLayoutFromGivenName(t *testing.T) {
	req, err := Resolve(nil, Given{Type: "fullscreen", Name: "SettingsActivity"}, "com.app", nil)
	if err != nil {
		t.Fatal(err)
	}
	if req.Layout != "activity_settings" {
		t.Errorf("Layout = %q", req.Layout)
	}
	if !req.Launcher {
		t.Error("fullscreen defaults to launcher")
	}
}

func TestResolveRemembered(t *testing.T) {
	no := false
	saved := &settings.Settings{ActivityType: "fullscreen", ActivityPackage: "com.app.ui", Launcher: &no}
	req, err := Resolve(nil, Given{}, "com.app", saved)
	if err != nil {
		t.Fatal(err)
	}
	if req.Type != activity.TypeFullscreen || req.Package != "com.app.ui" || req.Launcher {
		t.Errorf("remembered answers not used: %+v", req)
	}
}

func TestResolveInteractive(t *testing.T) {
	var out bytes.Buffer
	a := NewAsker(strings.NewReader("1\nSettingsActivity\n\n\ny\n"), &out)
	req, err := Resolve(a, Given{}, "com.app", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := activity.Request{
		Type:     activity.TypeEmpty,
		Name:     "SettingsActivity",
		Package:  "com.app.view.activities",
		Layout:   "activity_settings",
		Launcher: true,
	}
	if req != want {
		t.Errorf("Resolve() = %+v, want %+v", req, want)
	}
	for _, q := range []string{"(1/5)", "(2/5)", "(3/5)", "(4/5)", "(5/5)"} {
		if !strings.Contains(out.String(), q) {
			t.Errorf("question %s not asked", q)
		}
	}
}

func TestResolveSkipsGivenQuestions(t *testing.T) {
	var out bytes.Buffer
	yes := true
	a := NewAsker(strings.NewReader(""), &out)
	g := Given{Type: "blank", Name: "MainActivity", Package: "com.app", Layout: "main", Launcher: &yes}
	if _, err := Resolve(a, g, "com.app", nil); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be asked, got %q", out.String())
	}
}

func TestResolveUnknownType(t *testing.T) {
	if _, err := Resolve(nil, Given{Type: "tabbed"}, "com.app", nil); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
