// Package paths resolves database save-file locations: the default
// "<label>.tinydb" naming and file-stem extraction for load-or-create.
package paths

import (
	"path/filepath"
	"strings"
)

// Ext is the default save-file extension for dumped databases.
const Ext = ".tinydb"

// DefaultFile returns the label-derived save path, "<label>.tinydb",
// relative to the process working directory.
func DefaultFile(label string) string {
	return label + Ext
}

// Resolve returns the effective save path for a database: the explicit
// savePath when set, otherwise the label-derived default.
func Resolve(savePath, label string) string {
	if savePath != "" {
		return savePath
	}
	return DefaultFile(label)
}

// Stem extracts the final path component with its last extension
// stripped, e.g. "data/users.tinydb" yields "users" and "a.b.c" yields
// "a.b". A leading dot does not count as an extension separator, so
// ".hidden" yields ".hidden". Returns "" when the path has no usable
// file name ("", ".", "..", or a bare separator).
func Stem(path string) string {
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
