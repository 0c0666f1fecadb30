package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var upperRun = regexp.MustCompile(`\.?([A-Z]+)`)

// CamelToSnake converts "FooBarActivity" to "foo_bar_activity". Each run of
// uppercase letters becomes one lower-cased segment, so "HTMLView" yields
// "htmlview". A dot directly before a run is dropped.
func CamelToSnake(s string) string {
	out := upperRun.ReplaceAllStringFunc(s, func(m string) string {
		return "_" + strings.ToLower(strings.TrimPrefix(m, "."))
	})
	return strings.TrimPrefix(out, "_")
}

// CapitalizeFirst uppercases the first rune and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TrimActivity strips a single trailing "Activity".
func TrimActivity(s string) string {
	return strings.TrimSuffix(s, "Activity")
}

// Contains reports whether needle occurs in haystack. The comparison is
// ordinal; no case folding or whitespace normalization happens.
func Contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

var (
	javaIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	resourceName   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// javaKeywords lists reserved words that cannot name a class or package segment.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

// IsJavaIdentifier reports whether s can be used as a Java class name.
func IsJavaIdentifier(s string) bool {
	return javaIdentifier.MatchString(s) && !javaKeywords[s]
}

// IsPackageName reports whether s is a dot-delimited Java package name such
// as "com.example.app.view".
func IsPackageName(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if !IsJavaIdentifier(seg) {
			return false
		}
	}
	return true
}

// IsResourceName reports whether s is a valid Android file-based resource
// name (lowercase letters, digits and underscores).
func IsResourceName(s string) bool {
	return resourceName.MatchString(s)
}
