package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding tags used in dto binding rules.
const (
	AcademicTermTag = "academicterm"
	SubjectCodeTag  = "subjectcode"
	PeriodTag       = "period"
)

// RegisterBindingValidators installs the custom tags on gin's validator
// engine. Called once during router setup, before any routes bind.
func RegisterBindingValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation(AcademicTermTag, matchPattern(CompiledPatterns.AcademicTerm))
	_ = v.RegisterValidation(SubjectCodeTag, matchPattern(CompiledPatterns.SubjectCode))
	_ = v.RegisterValidation(PeriodTag, matchPattern(CompiledPatterns.Period))
}

func matchPattern(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
