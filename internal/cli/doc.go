// Package cli defines the Cobra command tree for the droidgen CLI. Each file
// in this package registers one top-level command (activity, types, config,
// version) with the root command. Command implementations delegate to internal
// packages for the generation logic and only handle flag parsing, prompting,
// and report output.
package cli
