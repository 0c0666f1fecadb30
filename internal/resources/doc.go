// Package resources merges required entries into the shared value-resource
// files of an Android module (strings.xml, dimens.xml, colors.xml).
//
// Each activity type maps to a list of obligations: a file that must exist
// and the entries that must appear inside its <resources> element. Applying
// an obligation copies a stock file when the target is absent, probes each
// entry by substring and inserts only what is missing, so re-running the
// generator never duplicates entries or clobbers user edits.
package resources
