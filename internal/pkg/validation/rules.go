package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Academic term pattern, e.g. "113-1" (year, dash, semester digit)
	AcademicTermPattern = `^\d{2,4}-\d$`

	// Subject code pattern - letters followed by digits, e.g. "MATH101"
	SubjectCodePattern = `^[A-Z]{2,8}\d{2,4}$`

	// Student number pattern - optional letter prefix plus digits
	StudentNumberPattern = `^[A-Z]?\d{6,10}$`

	// Period label pattern - D1 through D9 or the night block DN
	PeriodPattern = `^(D[1-9]|DN)$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	AcademicTerm  *regexp.Regexp
	SubjectCode   *regexp.Regexp
	StudentNumber *regexp.Regexp
	Period        *regexp.Regexp
}{
	AcademicTerm:  regexp.MustCompile(AcademicTermPattern),
	SubjectCode:   regexp.MustCompile(SubjectCodePattern),
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
	Period:        regexp.MustCompile(PeriodPattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
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

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
