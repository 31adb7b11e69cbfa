package validator

import (
	"errors"
	"strings"
)

// ValidationError describes one schema violation.
type ValidationError struct {
	Field   string // path such as "variations[1]" or "values.count.one"
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in a candidate.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a violation.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// Has reports whether any violation concerns field.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no violation was recorded.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
