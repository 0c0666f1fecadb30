// Package activity describes what the user asked for: the activity Type, the
// immutable Request gathered from arguments or prompts, and the Variant table
// that maps each type to its templates and manifest behaviour.
package activity
