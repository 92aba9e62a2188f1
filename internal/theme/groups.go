package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// GroupInfo describes one theme group directory.
type GroupInfo struct {
	Name     string   `json:"name" yaml:"name"`
	HasStock bool     `json:"has_stock" yaml:"has_stock"`
	Themes   []string `json:"themes" yaml:"themes"` // Theme directories under styles/, stock included
	Stale    []string `json:"stale,omitempty" yaml:"stale,omitempty"`
}

// Inventory lists what a CSS tree currently contains.
type Inventory struct {
	BaseDir string      `json:"base_dir" yaml:"base_dir"`
	Groups  []GroupInfo `json:"groups" yaml:"groups"`
	Masters []string    `json:"masters" yaml:"masters"` // Theme names with a master stylesheet
}

// ListGroups inspects baseDir without modifying it. The root styles directory
// holds the master stylesheets and is not reported as a group.
func ListGroups(baseDir string) (*Inventory, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBaseDirNotFound, baseDir)
		}
		return nil, err
	}

	inv := &Inventory{BaseDir: baseDir}

	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == StylesDir {
			continue
		}
		inv.Groups = append(inv.Groups, inspectGroup(baseDir, entry.Name()))
	}

	masters, err := os.ReadDir(filepath.Join(baseDir, StylesDir))
	if err == nil {
		for _, m := range masters {
			if m.IsDir() || !IsStylesheet(m.Name()) {
				continue
			}
			inv.Masters = append(inv.Masters, strings.TrimSuffix(m.Name(), StylesheetExt))
		}
	}

	slices.SortFunc(inv.Groups, func(a, b GroupInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	slices.Sort(inv.Masters)

	return inv, nil
}

func inspectGroup(baseDir, group string) GroupInfo {
	info := GroupInfo{Name: group}

	if fi, err := os.Stat(StockDir(baseDir, group)); err == nil && fi.IsDir() {
		info.HasStock = true
	}

	entries, err := os.ReadDir(filepath.Join(baseDir, group, StylesDir))
	if err != nil {
		return info
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		info.Themes = append(info.Themes, name)
		if name != StockTheme && importsStock(ThemeDir(baseDir, group, name)) {
			info.Stale = append(info.Stale, name)
		}
	}
	slices.Sort(info.Themes)
	return info
}

// importsStock reports whether any stylesheet under dir still imports the stock theme.
func importsStock(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || found {
			return nil
		}
		if d.IsDir() || !IsStylesheet(d.Name()) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if slices.Contains(Imports(string(data)), StockTheme) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
