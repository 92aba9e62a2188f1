package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	r, err := NewReport("Dark", "eclipse-css")
	require.NoError(t, err)

	assert.Len(t, r.ID, 26)
	assert.Equal(t, "Dark", r.ThemeName)
	assert.Equal(t, "eclipse-css", r.BaseDir)
	assert.Greater(t, r.StartedAt, int64(0))
	assert.Empty(t, r.Outcomes)
	assert.Zero(t, r.Duration())
}

func TestNewReport_UniqueIDs(t *testing.T) {
	a, err := NewReport("Dark", "x")
	require.NoError(t, err)
	b, err := NewReport("Dark", "x")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestReport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Report)
		wantErr error
	}{
		{
			name:    "valid report",
			modify:  func(r *Report) {},
			wantErr: nil,
		},
		{
			name: "empty id",
			modify: func(r *Report) {
				r.ID = ""
			},
			wantErr: ErrEmptyReportID,
		},
		{
			name: "empty theme name",
			modify: func(r *Report) {
				r.ThemeName = ""
			},
			wantErr: ErrEmptyThemeName,
		},
		{
			name: "invalid start",
			modify: func(r *Report) {
				r.StartedAt = 0
			},
			wantErr: ErrInvalidStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReport("Dark", "eclipse-css")
			require.NoError(t, err)
			tt.modify(r)
			assert.Equal(t, tt.wantErr, r.Validate())
		})
	}
}

func TestReport_Counts(t *testing.T) {
	r, err := NewReport("Dark", "eclipse-css")
	require.NoError(t, err)

	r.Add(
		Outcome{Kind: KindGroup, Group: "a", Status: StatusOK, Bytes: 100},
		Outcome{Kind: KindFile, Group: "a", Path: "a/x.scss", Status: StatusOK},
		Outcome{Kind: KindMaster, Status: StatusOK},
		Outcome{Kind: KindGroup, Group: "b", Status: StatusSkipped},
		NewFailure(KindGroup, "c", "c/styles/Dark", errors.New("directory not empty")),
		Outcome{Kind: KindGroup, Group: "d", Status: StatusOK, Bytes: 23},
	)

	assert.Equal(t, 2, r.Count(KindGroup, StatusOK))
	assert.Equal(t, 1, r.Count(KindGroup, StatusSkipped))
	assert.Equal(t, 1, r.Count(KindGroup, StatusFailed))
	assert.Equal(t, 1, r.Count(KindFile, StatusOK))
	assert.True(t, r.HasFailures())
	assert.Len(t, r.Failed(), 2)
	assert.Len(t, r.Groups(), 4)
	assert.Equal(t, int64(123), r.BytesCopied())

	c, ok := r.Group("c")
	require.True(t, ok)
	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, "directory not empty", c.Error)

	_, ok = r.Group("missing")
	assert.False(t, ok)
}

func TestReport_NoFailures(t *testing.T) {
	r, err := NewReport("Dark", "eclipse-css")
	require.NoError(t, err)
	r.Add(Outcome{Kind: KindGroup, Group: "a", Status: StatusOK})

	assert.False(t, r.HasFailures())
	assert.Empty(t, r.Failed())
}

func TestReport_Duration(t *testing.T) {
	r := &Report{StartedAt: 100, FinishedAt: 103}
	assert.Equal(t, 3*time.Second, r.Duration())
	assert.Equal(t, time.Unix(100, 0), r.StartedAtTime())
}

func TestNewFailure_NilError(t *testing.T) {
	o := NewFailure(KindFile, "g", "p", nil)
	assert.Equal(t, StatusFailed, o.Status)
	assert.Empty(t, o.Error)
}
