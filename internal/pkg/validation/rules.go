package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`

	// Student number pattern, e.g. S2024001
	StudentNumberPattern = `^[A-Za-z0-9\-]{1,20}$`

	// Course code pattern, e.g. CS101
	CourseCodePattern = `^[A-Za-z0-9\-_]{2,32}$`

	// Name validation max length
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	StudentNumber *regexp.Regexp
	CourseCode    *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
	CourseCode:    regexp.MustCompile(CourseCodePattern),
}

// StringValidation describes the checks applied to one required string field
type StringValidation struct {
	Field   string
	Value   string
	MaxLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field: field,
		Value: value,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate returns a description of the first failed rule, or nil.
func (v *StringValidation) Validate() error {
	value := strings.TrimSpace(v.Value)

	if value == "" {
		return fmt.Errorf("%s cannot be blank", v.Field)
	}

	if v.MaxLen > 0 && len(value) > v.MaxLen {
		return fmt.Errorf("%s must be at most %d characters", v.Field, v.MaxLen)
	}

	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Errorf("%s has an invalid format", v.Field)
	}

	return nil
}

// NumericValidation describes the checks applied to one integer field
type NumericValidation struct {
	Field string
	Value int
	Min   *int
	Max   *int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(field string, value int) *NumericValidation {
	return &NumericValidation{
		Field: field,
		Value: value,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = &min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = &max
	return v
}

// Validate returns a description of the first failed rule, or nil.
func (v *NumericValidation) Validate() error {
	if v.Min != nil && v.Value < *v.Min {
		return fmt.Errorf("%s must be at least %d", v.Field, *v.Min)
	}

	if v.Max != nil && v.Value > *v.Max {
		return fmt.Errorf("%s must be at most %d", v.Field, *v.Max)
	}

	return nil
}

// Rule is anything that can report a validation failure.
type Rule interface {
	Validate() error
}

// First runs rules in order and returns the first failure.
func First(rules ...Rule) error {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
