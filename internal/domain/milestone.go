package domain

import "fmt"

// MilestoneStatus represents the delivery state of a milestone.
// This is a value object that enforces valid status values.
type MilestoneStatus string

// Valid milestone statuses
const (
	StatusNotStarted MilestoneStatus = "not_started"
	StatusInProgress MilestoneStatus = "in_progress"
	StatusCompleted  MilestoneStatus = "completed"
)

// NewMilestoneStatus creates a new MilestoneStatus value object with validation
func NewMilestoneStatus(value string) (MilestoneStatus, error) {
	s := MilestoneStatus(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks if the status is valid
func (s MilestoneStatus) Validate() error {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("invalid milestone status %q: must be not_started, in_progress, or completed", string(s))
	}
}

// IsValid returns true if the status is a known value
func (s MilestoneStatus) IsValid() bool {
	return s.Validate() == nil
}

// String returns the string representation
func (s MilestoneStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the milestone needs no further work
func (s MilestoneStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// Milestone is a single deliverable inside a project.
// TargetDate is an ISO-8601 date string; empty means no target date.
// Records are produced by the status-reading layer and are never mutated
// by the metrics engine.
type Milestone struct {
	Name       string          `json:"name" yaml:"name"`
	Status     MilestoneStatus `json:"status" yaml:"status"`
	TargetDate string          `json:"target_date,omitempty" yaml:"target_date,omitempty"`
}

// Project groups the milestones reported for one tracked project.
type Project struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Milestones []Milestone `json:"milestones" yaml:"milestones"`
}
