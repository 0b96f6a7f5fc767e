package submission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBusy signals that the exclusive write lock could not be acquired within
// its bound; the caller should retry later.
var ErrBusy = errors.New("server is busy")

// Issue is one field-level validation failure.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every issue found in a payload. The submission is
// not persisted when it is returned.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid submission"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Reason))
	}
	return strings.Join(parts, "; ")
}

type validator struct {
	issues []Issue
}

func (v *validator) add(field, reason string) {
	v.issues = append(v.issues, Issue{Field: field, Reason: reason})
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) err() error {
	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: v.issues}
}
