// Package settings persists the answers of the last run in .droidgen.yaml at
// the project root so the next run can offer them as defaults. The file is
// validated against an embedded JSON Schema on load.
package settings
