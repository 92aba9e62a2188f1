// Package model defines the core data structures for themegen.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind identifies what an outcome refers to.
type Kind string

const (
	KindGroup  Kind = "group"  // A theme group directory
	KindFile   Kind = "file"   // A rewritten .scss file inside a generated theme
	KindMaster Kind = "master" // The root-level master stylesheet
)

// Status is the result of a single generation step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records the result of one per-item operation.
type Outcome struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Group  string `json:"group,omitempty" yaml:"group,omitempty"`
	Path   string `json:"path" yaml:"path"`
	Status Status `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Bytes  int64  `json:"bytes,omitempty" yaml:"bytes,omitempty"` // Bytes copied (groups only)
}

// Report is the accumulated result of one generation run.
// Timestamps are unix seconds so reports round-trip through the history file.
type Report struct {
	ID         string    `json:"id" yaml:"id"`
	ThemeName  string    `json:"theme_name" yaml:"theme_name"`
	BaseDir    string    `json:"base_dir" yaml:"base_dir"`
	StartedAt  int64     `json:"started_at" yaml:"started_at"`
	FinishedAt int64     `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Outcomes   []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Validation errors.
var (
	ErrEmptyReportID  = errors.New("report id cannot be empty")
	ErrEmptyThemeName = errors.New("theme_name cannot be empty")
	ErrInvalidStart   = errors.New("started_at must be greater than 0")
)

// NewReport creates a new Report with a generated ULID.
func NewReport(themeName, baseDir string) (*Report, error) {
	now := time.Now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return &Report{
		ID:        id.String(),
		ThemeName: themeName,
		BaseDir:   baseDir,
		StartedAt: now.Unix(),
		Outcomes:  []Outcome{},
	}, nil
}

// Validate checks that the report has all required fields.
func (r *Report) Validate() error {
	if r.ID == "" {
		return ErrEmptyReportID
	}
	if r.ThemeName == "" {
		return ErrEmptyThemeName
	}
	if r.StartedAt <= 0 {
		return ErrInvalidStart
	}
	return nil
}

// Add appends outcomes to the report.
func (r *Report) Add(outcomes ...Outcome) {
	r.Outcomes = append(r.Outcomes, outcomes...)
}

// Finish stamps the completion time.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().Unix()
}

// Failed returns every outcome that did not succeed, skipped groups included.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status != StatusOK {
			failed = append(failed, o)
		}
	}
	return failed
}

// HasFailures reports whether any item was skipped or failed.
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Status != StatusOK {
			return true
		}
	}
	return false
}

// Count returns the number of outcomes with the given kind and status.
func (r *Report) Count(kind Kind, status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind && o.Status == status {
			n++
		}
	}
	return n
}

// Groups returns the group outcomes in processing order.
func (r *Report) Groups() []Outcome {
	var groups []Outcome
	for _, o := range r.Outcomes {
		if o.Kind == KindGroup {
			groups = append(groups, o)
		}
	}
	return groups
}

// Group returns the outcome for the named group.
func (r *Report) Group(name string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Kind == KindGroup && o.Group == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// BytesCopied returns the total bytes cloned across all groups.
func (r *Report) BytesCopied() int64 {
	var total int64
	for _, o := range r.Outcomes {
		if o.Kind == KindGroup {
			total += o.Bytes
		}
	}
	return total
}

// Duration returns how long the run took. Zero until Finish is called.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt == 0 {
		return 0
	}
	return time.Duration(r.FinishedAt-r.StartedAt) * time.Second
}

// StartedAtTime returns the start timestamp as a time.Time.
func (r *Report) StartedAtTime() time.Time {
	return time.Unix(r.StartedAt, 0)
}

// NewFailure builds a failed outcome from an error.
func NewFailure(kind Kind, group, path string, err error) Outcome {
	o := Outcome{Kind: kind, Group: group, Path: path, Status: StatusFailed}
	if err != nil {
		o.Error = err.Error()
	}
	return o
}
