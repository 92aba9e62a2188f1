package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themegen/internal/config"
	"github.com/jmylchreest/themegen/internal/core"
	"github.com/jmylchreest/themegen/internal/model"
	"github.com/jmylchreest/themegen/internal/theme"
)

// execute runs the command tree with fresh flag values and isolated XDG dirs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var reset func(cmd *cobra.Command)
	reset = func(cmd *cobra.Command) {
		visit := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		cmd.Flags().VisitAll(visit)
		cmd.PersistentFlags().VisitAll(visit)
		for _, sub := range cmd.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(config.ThemeNameEnv, "")

	base := t.TempDir()
	writeFile(t, theme.MasterPath(base, theme.StockTheme), theme.StockDescription+"\n")
	writeFile(t, filepath.Join(theme.StockDir(base, "org.eclipse.ui"), "a.scss"), `@import "stock";`)
	return base
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGenerateCommand(t *testing.T) {
	base := setupEnv(t)

	out, err := execute(t, "generate", "--name", "Dark", "--base-dir", base)
	require.NoError(t, err)
	assert.Contains(t, out, `Theme "Dark"`)
	// The root styles directory is a candidate without stock styles
	assert.Contains(t, out, "Generated 1 of 2 groups")

	data, err := os.ReadFile(filepath.Join(theme.ThemeDir(base, "org.eclipse.ui", "Dark"), "a.scss"))
	require.NoError(t, err)
	assert.Equal(t, `@import "Dark";`, string(data))
	assert.FileExists(t, theme.MasterPath(base, "Dark"))
}

func TestGenerateCommand_NameFromEnv(t *testing.T) {
	base := setupEnv(t)
	t.Setenv(config.ThemeNameEnv, "Light")

	_, err := execute(t, "generate", "--base-dir", base, "--no-history")
	require.NoError(t, err)
	assert.DirExists(t, theme.ThemeDir(base, "org.eclipse.ui", "Light"))
}

func TestGenerateCommand_MissingName(t *testing.T) {
	base := setupEnv(t)

	_, err := execute(t, "generate", "--base-dir", base)
	assert.ErrorIs(t, err, theme.ErrUndefinedThemeName)
}

func TestGenerateCommand_MissingBaseDir(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "generate", "-n", "Dark", "--base-dir", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, theme.ErrBaseDirNotFound)
}

func TestGenerateCommand_InvalidFormat(t *testing.T) {
	base := setupEnv(t)

	_, err := execute(t, "generate", "-n", "Dark", "--base-dir", base, "--format", "xml")
	assert.Error(t, err)
	assert.NoDirExists(t, theme.ThemeDir(base, "org.eclipse.ui", "Dark"))
}

func TestGenerateCommand_JSONReport(t *testing.T) {
	base := setupEnv(t)

	out, err := execute(t, "generate", "-n", "Dark", "--base-dir", base, "--format", "json", "--no-history")
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Dark", report.ThemeName)
	assert.Equal(t, 1, report.Count(model.KindGroup, model.StatusOK))
}

func TestHistoryCommand(t *testing.T) {
	base := setupEnv(t)

	_, err := execute(t, "generate", "-n", "Dark", "--base-dir", base)
	require.NoError(t, err)
	_, err = execute(t, "generate", "-n", "Light", "--base-dir", base)
	require.NoError(t, err)
	_, err = execute(t, "generate", "-n", "Muted", "--base-dir", base, "--no-history")
	require.NoError(t, err)

	out, err := execute(t, "history", "--format", "json")
	require.NoError(t, err)

	var reports []model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	out, err = execute(t, "history", "--theme", "Light", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "Light", reports[0].ThemeName)

	out, err = execute(t, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared history")

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No generation runs recorded\n", out)
}

func TestHistoryCommand_InvalidSince(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "history", "--since", "soon")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	base := setupEnv(t)

	_, err := execute(t, "generate", "-n", "Dark", "--base-dir", base, "--no-history")
	require.NoError(t, err)

	out, err := execute(t, "list", "--base-dir", base, "--format", "json")
	require.NoError(t, err)

	var inv theme.Inventory
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	require.Len(t, inv.Groups, 1)
	assert.Equal(t, []string{"Dark", "stock"}, inv.Groups[0].Themes)
	assert.Equal(t, []string{"Dark", "stock"}, inv.Masters)
}

func TestConfigFileDefaults(t *testing.T) {
	base := setupEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	c := config.DefaultConfig()
	c.Generate.BaseDir = base
	c.Generate.Format = "json"
	c.History.Enabled = false
	require.NoError(t, c.Save(cfgPath))

	out, err := execute(t, "--config", cfgPath, "generate", "-n", "Dark")
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, base, report.BaseDir)

	out, err = execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestGenerateCommand_HelpMentionsStylesDirectory(t *testing.T) {
	assert.Contains(t, generateCmd.Long, "root styles")
	assert.Contains(t, generateCmd.Long, "source dir doesn't exist")
}

// memoryHistory is an in-memory store.Persistence.
type memoryHistory struct {
	reports []model.Report
	err     error
}

func (m *memoryHistory) Load() ([]model.Report, error) { return m.reports, m.err }
func (m *memoryHistory) Append(r model.Report) error {
	m.reports = append(m.reports, r)
	return nil
}
func (m *memoryHistory) Clear() error {
	m.reports = nil
	return nil
}
func (m *memoryHistory) Close() error { return nil }

func TestQueryHistory_DefaultsToNewestFirst(t *testing.T) {
	h := &memoryHistory{}
	for i, name := range []string{"Dark", "Light", "Muted"} {
		require.NoError(t, h.Append(model.Report{ID: name, ThemeName: name, StartedAt: int64(100 + i)}))
	}

	reports, err := queryHistory(h, core.FilterOptions{Limit: 2}, core.DefaultSortOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Muted", reports[0].ThemeName)
	assert.Equal(t, "Light", reports[1].ThemeName)
}

func TestQueryHistory_LoadError(t *testing.T) {
	loadErr := errors.New("disk gone")
	_, err := queryHistory(&memoryHistory{err: loadErr}, core.FilterOptions{}, core.DefaultSortOptions())
	assert.ErrorIs(t, err, loadErr)
}

func TestHistoryCommand_Order(t *testing.T) {
	setupEnv(t)

	var err error
	cfg, err = config.LoadConfig("")
	require.NoError(t, err)
	p, err := openHistory()
	require.NoError(t, err)
	require.NoError(t, p.Append(model.Report{ID: "01A", ThemeName: "Old", StartedAt: 100}))
	require.NoError(t, p.Append(model.Report{ID: "01B", ThemeName: "New", StartedAt: 200}))
	require.NoError(t, p.Close())

	var reports []model.Report

	out, err := execute(t, "history", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "New", reports[0].ThemeName)

	out, err = execute(t, "history", "--format", "json", "--order", "asc")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "Old", reports[0].ThemeName)
}
