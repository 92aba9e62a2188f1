package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/themegen/internal/model"
)

// RewriteImports walks dir and replaces every @import "stock" with an import
// of the named theme in each .scss file. Other files are left untouched.
// A failure on one file or directory is logged and recorded, and the walk
// carries on with the remaining entries.
func RewriteImports(dir, name string, logger *slog.Logger) []model.Outcome {
	if logger == nil {
		logger = slog.Default()
	}
	return rewriteDir(dir, "", name, logger)
}

func rewriteDir(dir, group, name string, logger *slog.Logger) []model.Outcome {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("error reading theme directory", "path", dir, "error", err)
		return []model.Outcome{model.NewFailure(model.KindFile, group, dir, err)}
	}

	var outcomes []model.Outcome
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			outcomes = append(outcomes, rewriteDir(path, group, name, logger)...)
			continue
		}

		if !IsStylesheet(entry.Name()) {
			continue
		}

		if err := rewriteFile(path, StockImport, ImportFor(name)); err != nil {
			logger.Error("error creating theme icon style", "path", path, "error", err)
			outcomes = append(outcomes, model.NewFailure(model.KindFile, group, path, err))
			continue
		}

		logger.Debug("rewrote imports", "path", path)
		outcomes = append(outcomes, model.Outcome{
			Kind:   model.KindFile,
			Group:  group,
			Path:   path,
			Status: model.StatusOK,
		})
	}
	return outcomes
}

// rewriteFile replaces all occurrences of old with replacement in place.
func rewriteFile(path, old, replacement string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out := strings.ReplaceAll(string(data), old, replacement)
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RewriteMaster writes <baseDir>/styles/<name>.scss from <baseDir>/styles/stock.scss
// with the stock description sentence replaced. An existing file is overwritten.
func RewriteMaster(baseDir, name string) error {
	src := MasterPath(baseDir, StockTheme)
	dst := MasterPath(baseDir, name)

	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	out := strings.ReplaceAll(string(data), StockDescription, Description(name))
	if err := os.WriteFile(dst, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
