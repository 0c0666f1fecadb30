package settings

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is ignored.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckVersion returns a warning when the settings were written by a newer
// release than running. Unparseable versions (e.g. "dev" builds) never warn.
func CheckVersion(saved, running string) string {
	if saved == "" {
		return ""
	}
	cmp, err := CompareVersions(saved, running)
	if err != nil || cmp <= 0 {
		return ""
	}
	return fmt.Sprintf("%s was written by version %s, newer than this build (%s); unknown keys may be dropped", FileName, saved, running)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
