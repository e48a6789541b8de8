package validation

import (
	"strings"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct {
	maxNameLength int
}

// NewValidator creates a new validator instance with no name length limit
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithLimits creates a validator that also enforces a maximum
// task name length. A maxNameLength of zero or less disables the limit.
func NewValidatorWithLimits(maxNameLength int) *Validator {
	return &Validator{maxNameLength: maxNameLength}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the trimmed name against the configured maximum.
// Length is counted in runes so emoji and accented names are not penalised.
func (v *Validator) IsValidTaskNameLength(name string) bool {
	if v.maxNameLength <= 0 {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(name)) <= v.maxNameLength
}

// MaxNameLength returns the configured maximum, zero meaning unlimited
func (v *Validator) MaxNameLength() int {
	return v.maxNameLength
}

// IsValidPosition checks if a user-facing 1-based position can refer to a task
func (v *Validator) IsValidPosition(position int) bool {
	return position > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
