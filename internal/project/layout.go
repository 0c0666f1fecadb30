package project

import (
	"path/filepath"
	"strings"
)

// Default module and source set of a Gradle Android project.
const (
	DefaultModule    = "app"
	DefaultSourceSet = "main"
)

// Layout resolves paths inside one module/source set. All paths are relative
// to the project root and use the host separator.
type Layout struct {
	Module    string
	SourceSet string
}

// NewLayout returns a Layout, falling back to app/main for empty values.
func NewLayout(module, sourceSet string) Layout {
	if module == "" {
		module = DefaultModule
	}
	if sourceSet == "" {
		sourceSet = DefaultSourceSet
	}
	return Layout{Module: module, SourceSet: sourceSet}
}

// Root is the source-set directory, e.g. "app/src/main".
func (l Layout) Root() string {
	return filepath.Join(l.Module, "src", l.SourceSet)
}

// JavaDir is the directory holding classes of the dot-delimited package pkg.
func (l Layout) JavaDir(pkg string) string {
	return filepath.Join(l.Root(), "java", filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")))
}

// ClassFile is the path of the activity class file.
func (l Layout) ClassFile(pkg, name string) string {
	return filepath.Join(l.JavaDir(pkg), name+".java")
}

// ResDir is the resource directory res/<kind>, e.g. "values" or "layout".
func (l Layout) ResDir(kind string) string {
	return filepath.Join(l.Root(), "res", kind)
}

// LayoutFile is the path of the layout resource named layoutName.
func (l Layout) LayoutFile(layoutName string) string {
	return filepath.Join(l.ResDir("layout"), layoutName+".xml")
}

// ValuesFile is the path of a value-resource file, e.g.
// ValuesFile("values-w820dp", "dimens.xml").
func (l Layout) ValuesFile(dir, file string) string {
	return filepath.Join(l.ResDir(dir), file)
}

// Manifest is the path of AndroidManifest.xml.
func (l Layout) Manifest() string {
	return filepath.Join(l.Root(), "AndroidManifest.xml")
}
