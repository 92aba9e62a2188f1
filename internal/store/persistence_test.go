package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themegen/internal/model"
)

func testReport(t *testing.T, name string) model.Report {
	t.Helper()
	r, err := model.NewReport(name, "eclipse-css")
	require.NoError(t, err)
	r.Add(
		model.Outcome{Kind: model.KindGroup, Group: "org.eclipse.ui", Path: "p", Status: model.StatusOK, Bytes: 42},
		model.Outcome{Kind: model.KindGroup, Group: "org.eclipse.jdt.ui", Path: "q", Status: model.StatusSkipped, Error: "missing"},
	)
	r.Finish()
	return *r
}

func TestNewJSONLPersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, path, p.Path())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "themegen_schema_version")
}

func TestNewJSONLPersistence_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "nested", "test.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	assert.DirExists(t, filepath.Dir(path))
}

func TestJSONLPersistence_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)

	r1 := testReport(t, "Dark")
	r2 := testReport(t, "Light")

	require.NoError(t, p.Append(r1))
	require.NoError(t, p.Append(r2))

	reports, err := p.Load()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, r1.ID, reports[0].ID)
	assert.Equal(t, "Light", reports[1].ThemeName)
	assert.Equal(t, r1.Outcomes, reports[0].Outcomes)

	require.NoError(t, p.Close())

	// Reopen and append, existing reports survive
	p, err = NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Append(testReport(t, "HighContrast")))
	reports, err = p.Load()
	require.NoError(t, err)
	assert.Len(t, reports, 3)
}

func TestJSONLPersistence_AppendRejectsInvalid(t *testing.T) {
	p, err := NewJSONLPersistence(filepath.Join(t.TempDir(), "test.jsonl"))
	require.NoError(t, err)
	defer p.Close()

	err = p.Append(model.Report{ThemeName: "Dark", StartedAt: 1})
	assert.ErrorIs(t, err, model.ErrEmptyReportID)
}

func TestJSONLPersistence_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)
	require.NoError(t, p.Append(testReport(t, "Dark")))
	require.NoError(t, p.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("{not json\n\n{\"theme_name\":\"no id\"}\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	p, err = NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	reports, err := p.Load()
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestJSONLPersistence_UnsupportedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"themegen_schema_version":99,"created_at":1}`+"\n"), 0600))

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Load()
	assert.Error(t, err)
}

func TestJSONLPersistence_Clear(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Append(testReport(t, "Dark")))
	require.NoError(t, p.Clear())

	reports, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NoFileExists(t, path+".bak")

	// Still usable after clearing
	require.NoError(t, p.Append(testReport(t, "Light")))
	reports, err = p.Load()
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestJSONLPersistence_Closed(t *testing.T) {
	p, err := NewJSONLPersistence(filepath.Join(t.TempDir(), "test.jsonl"))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.Load()
	assert.ErrorIs(t, err, ErrPersistenceClosed)
	assert.ErrorIs(t, p.Append(testReport(t, "Dark")), ErrPersistenceClosed)
	assert.ErrorIs(t, p.Clear(), ErrPersistenceClosed)
}
