package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmylchreest/themegen/internal/model"
)

// Fatal precondition errors. Any other failure is recorded in the report.
var (
	ErrUndefinedThemeName = errors.New("undefined theme name")
	ErrBaseDirNotFound    = errors.New("source directory does not exist")
)

// Options configures a generation run.
type Options struct {
	BaseDir   string       // Root of the CSS tree (default: eclipse-css)
	ThemeName string       // Name of the theme to create, used verbatim
	Logger    *slog.Logger // Diagnostics sink (default: slog.Default())
}

// Generate creates the theme named by opts.ThemeName in every theme group
// under opts.BaseDir.
//
// Only a missing theme name or base directory aborts the run; both are
// checked before anything is written. Per-group and per-file failures are
// logged, recorded in the returned report, and do not produce an error.
func Generate(opts Options) (*model.Report, error) {
	if opts.ThemeName == "" {
		return nil, ErrUndefinedThemeName
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}

	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBaseDirNotFound, baseDir)
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", baseDir, err)
	}

	report, err := model.NewReport(opts.ThemeName, baseDir)
	if err != nil {
		return nil, err
	}

	logger.Debug("generating theme", "name", opts.ThemeName, "base_dir", baseDir, "entries", len(entries))

	for _, entry := range entries {
		if !IsThemeGroup(entry) {
			continue
		}
		report.Add(generateGroup(baseDir, entry.Name(), opts.ThemeName, logger)...)
	}

	report.Finish()
	return report, nil
}

// generateGroup clones and rewrites one theme group. The group outcome is
// always the first element of the returned slice.
func generateGroup(baseDir, group, name string, logger *slog.Logger) []model.Outcome {
	stockDir := StockDir(baseDir, group)
	newThemeDir := ThemeDir(baseDir, group, name)

	if _, err := os.Stat(stockDir); err != nil {
		logger.Error("source dir doesn't exist", "path", absPath(stockDir), "error", err)
		return []model.Outcome{{
			Kind:   model.KindGroup,
			Group:  group,
			Path:   stockDir,
			Status: model.StatusSkipped,
			Error:  err.Error(),
		}}
	}

	// Only an empty directory (or a plain file) can be removed here, so an
	// earlier populated theme is never overwritten
	if _, err := os.Lstat(newThemeDir); err == nil {
		if err := os.Remove(newThemeDir); err != nil {
			logger.Error("error deleting existing theme directory", "path", newThemeDir, "error", err)
			return []model.Outcome{model.NewFailure(model.KindGroup, group, newThemeDir, err)}
		}
	}

	n, err := CopyDir(stockDir, newThemeDir)
	if err != nil {
		logger.Error("error creating new theme directory", "path", newThemeDir, "error", err)
		o := model.NewFailure(model.KindGroup, group, newThemeDir, err)
		o.Bytes = n
		return []model.Outcome{o}
	}

	outcomes := []model.Outcome{{
		Kind:   model.KindGroup,
		Group:  group,
		Path:   newThemeDir,
		Status: model.StatusOK,
		Bytes:  n,
	}}

	outcomes = append(outcomes, rewriteDir(newThemeDir, group, name, logger)...)

	master := MasterPath(baseDir, name)
	if err := RewriteMaster(baseDir, name); err != nil {
		logger.Error("error creating master stylesheet", "path", master, "error", err)
		outcomes = append(outcomes, model.NewFailure(model.KindMaster, group, master, err))
	} else {
		outcomes = append(outcomes, model.Outcome{
			Kind:   model.KindMaster,
			Group:  group,
			Path:   master,
			Status: model.StatusOK,
		})
	}

	logger.Info("generated theme", "group", group, "path", newThemeDir, "bytes", n)
	return outcomes
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
