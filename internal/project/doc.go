// Package project gives the generator a view of the target Android project:
// where each generated file lives (Layout) and a staged, billy-backed file
// tree (Tree) that answers existence checks and buffers every write until the
// run commits.
package project
