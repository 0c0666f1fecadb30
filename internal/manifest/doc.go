// Package manifest registers generated activities in AndroidManifest.xml.
// It decides between a launcher entry (with a MAIN/LAUNCHER intent filter)
// and a plain entry, and splices the result into the <application> element
// without disturbing the rest of the file.
package manifest
