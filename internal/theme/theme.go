package theme

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// Layout of an Eclipse icon CSS tree.
const (
	// DefaultBaseDir is the tree root, relative to the working directory.
	DefaultBaseDir = "eclipse-css"

	// StylesDir holds the stylesheets of a group, and the master stylesheets at the root.
	StylesDir = "styles"

	// StockTheme is the theme every new theme is cloned from.
	StockTheme = "stock"

	// StylesheetExt marks the files the import rewriter touches.
	StylesheetExt = ".scss"
)

// Fixed substitutions applied to generated files.
const (
	// StockImport is the only import form rewritten in cloned stylesheets.
	StockImport = `@import "stock"`

	// StockDescription is the sentence replaced in the master stylesheet.
	StockDescription = "Stock.scss provides the original Eclipse icon styles."

	// descriptionPlaceholder follows the theme file name in the new master stylesheet.
	descriptionPlaceholder = " <enter description here>"
)

// importRegex matches @import "file"; or @import 'file'; or @import url("file");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// ImportFor returns the import declaration that references the named theme.
func ImportFor(name string) string {
	return `@import "` + name + `"`
}

// Description returns the master stylesheet description for the named theme.
func Description(name string) string {
	return name + StylesheetExt + descriptionPlaceholder
}

// StockDir returns <baseDir>/<group>/styles/stock.
func StockDir(baseDir, group string) string {
	return filepath.Join(baseDir, group, StylesDir, StockTheme)
}

// ThemeDir returns <baseDir>/<group>/styles/<name>.
func ThemeDir(baseDir, group, name string) string {
	return filepath.Join(baseDir, group, StylesDir, name)
}

// MasterPath returns <baseDir>/styles/<name>.scss.
func MasterPath(baseDir, name string) string {
	return filepath.Join(baseDir, StylesDir, name+StylesheetExt)
}

// IsThemeGroup reports whether a base directory entry is processed as a theme group.
// Only a plain file named styles is excluded; a styles directory is still a candidate.
func IsThemeGroup(entry fs.DirEntry) bool {
	return entry.IsDir() || entry.Name() != StylesDir
}

// IsStylesheet reports whether the file name carries the .scss suffix.
func IsStylesheet(name string) bool {
	return strings.HasSuffix(name, StylesheetExt)
}

// Imports returns the targets of every @import statement in a stylesheet, in order.
func Imports(css string) []string {
	matches := importRegex.FindAllStringSubmatch(css, -1)
	imports := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		imports = append(imports, m[1])
	}
	return imports
}
