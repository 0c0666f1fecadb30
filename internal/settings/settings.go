package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.yaml.in/yaml/v3"
)

// FileName is the settings file at the project root.
const FileName = ".droidgen.yaml"

// Settings are the remembered answers of a previous run. Activity and layout
// names are not kept: they name files that now exist.
type Settings struct {
	Version         string `yaml:"version,omitempty"`
	AppPackage      string `yaml:"appPackage,omitempty"`
	ActivityType    string `yaml:"activityType,omitempty"`
	ActivityPackage string `yaml:"activityPackage,omitempty"`
	Launcher        *bool  `yaml:"launcher,omitempty"`
}

// InvalidError lists the schema violations of a settings file.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s: %s", FileName, strings.Join(msgs, "; "))
}

// Load reads FileName from the root of fsys. A missing file yields empty
// settings and no error.
func Load(fsys billy.Filesystem) (*Settings, error) {
	data, err := util.ReadFile(fsys, FileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", FileName, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &s, nil
}

// Save writes s to FileName at the root of fsys.
func Save(fsys billy.Filesystem, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", FileName, err)
	}
	if err := util.WriteFile(fsys, FileName, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}

// LauncherOr returns the stored launcher answer or def when none is stored.
func (s *Settings) LauncherOr(def bool) bool {
	if s.Launcher == nil {
		return def
	}
	return *s.Launcher
}
