// Package scaffold generates an Android activity into an existing project. It
// powers the "droidgen activity" command: it refuses to overwrite an existing
// class or layout, renders both from embedded templates, merges the shared
// value resources and registers the activity in AndroidManifest.xml. Every
// write is staged and committed only when all steps succeed.
package scaffold
