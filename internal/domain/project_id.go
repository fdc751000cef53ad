package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ProjectID represents a unique identifier for a project.
// This is a value object that enforces valid ID formats.
type ProjectID string

var (
	// projectIDPattern validates that the ID contains only alphanumeric characters and hyphens
	// Must start with a letter, and can contain lowercase letters, numbers, and hyphens
	projectIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// maxProjectIDLength is the maximum allowed length for a project ID
	maxProjectIDLength = 100

	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// NewProjectID creates a new ProjectID value object with validation
func NewProjectID(value string) (ProjectID, error) {
	id := ProjectID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks if the project ID is valid
func (p ProjectID) Validate() error {
	s := string(p)

	if s == "" {
		return fmt.Errorf("project ID cannot be empty")
	}

	if len(s) > maxProjectIDLength {
		return fmt.Errorf("project ID %q exceeds maximum length of %d characters", s, maxProjectIDLength)
	}

	if !projectIDPattern.MatchString(s) {
		return fmt.Errorf("project ID %q must start with a letter and contain only lowercase letters, numbers, and hyphens", s)
	}

	// Check for consecutive hyphens
	if strings.Contains(s, "--") {
		return fmt.Errorf("project ID %q cannot contain consecutive hyphens", s)
	}

	// Check for trailing hyphen
	if strings.HasSuffix(s, "-") {
		return fmt.Errorf("project ID %q cannot end with a hyphen", s)
	}

	return nil
}

// String returns the string representation
func (p ProjectID) String() string {
	return string(p)
}

// Equals checks if this project ID equals another
func (p ProjectID) Equals(other ProjectID) bool {
	return p == other
}

// SlugifyProjectID derives a valid project ID from a display name, used when
// a status file names a project without assigning it an ID. Returns an error
// when the name contains no usable characters.
func SlugifyProjectID(name string) (ProjectID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	if s != "" && !projectIDPattern.MatchString(s) {
		// Leading digits are legal in names but not IDs
		s = "p-" + s
	}
	if len(s) > maxProjectIDLength {
		s = strings.Trim(s[:maxProjectIDLength], "-")
	}
	return NewProjectID(s)
}
