package domain

import "fmt"

// Severity represents the normalized severity level of a risk.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Weight returns the numeric weight for the severity (used in risk scoring).
// Weights are percentages of the maximum severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 100
	case SeverityHigh:
		return 75
	case SeverityMedium:
		return 50
	case SeverityLow:
		return 25
	default:
		return 0
	}
}

// Normalize maps unknown severities to medium. Records with unrecognized
// severities are scored conservatively rather than dropped.
func (s Severity) Normalize() Severity {
	if s.IsValid() {
		return s
	}
	return SeverityMedium
}

// RiskStatus represents whether a risk is still being tracked.
type RiskStatus string

const (
	RiskOpen   RiskStatus = "open"
	RiskClosed RiskStatus = "closed"
)

// NewRiskStatus creates a new RiskStatus value object with validation
func NewRiskStatus(value string) (RiskStatus, error) {
	s := RiskStatus(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks if the risk status is valid
func (s RiskStatus) Validate() error {
	switch s {
	case RiskOpen, RiskClosed:
		return nil
	default:
		return fmt.Errorf("invalid risk status %q: must be open or closed", string(s))
	}
}

// String returns the string representation
func (s RiskStatus) String() string {
	return string(s)
}

// Risk is a single tracked risk record. Status defaults to open when the
// reporting layer omits it.
type Risk struct {
	ID       string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Severity Severity   `json:"severity_normalized" yaml:"severity_normalized"`
	Status   RiskStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// EffectiveStatus returns the record's status, defaulting to open.
func (r Risk) EffectiveStatus() RiskStatus {
	if r.Status == "" {
		return RiskOpen
	}
	return r.Status
}
