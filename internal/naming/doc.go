// Package naming holds the string transforms used to derive default activity,
// layout and resource names from what the user typed.
package naming
