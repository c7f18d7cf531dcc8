package validation

import "testing"

func TestCompiledPatterns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		match func(string) bool
		want  bool
	}{
		{"term short year", "113-1", CompiledPatterns.AcademicTerm.MatchString, true},
		{"term full year", "2024-2", CompiledPatterns.AcademicTerm.MatchString, true},
		{"term missing semester", "113-", CompiledPatterns.AcademicTerm.MatchString, false},
		{"term with name", "fall-1", CompiledPatterns.AcademicTerm.MatchString, false},
		{"subject", "MATH101", CompiledPatterns.SubjectCode.MatchString, true},
		{"subject long prefix", "COMPSCI2201", CompiledPatterns.SubjectCode.MatchString, true},
		{"subject lowercase", "math101", CompiledPatterns.SubjectCode.MatchString, false},
		{"subject no digits", "MATH", CompiledPatterns.SubjectCode.MatchString, false},
		{"student number with prefix", "B11109001", CompiledPatterns.StudentNumber.MatchString, true},
		{"student number digits only", "11109001", CompiledPatterns.StudentNumber.MatchString, true},
		{"student number too short", "B123", CompiledPatterns.StudentNumber.MatchString, false},
		{"period day", "D5", CompiledPatterns.Period.MatchString, true},
		{"period night", "DN", CompiledPatterns.Period.MatchString, true},
		{"period zero", "D0", CompiledPatterns.Period.MatchString, false},
		{"period unknown", "E1", CompiledPatterns.Period.MatchString, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match(tt.value); got != tt.want {
				t.Errorf("match(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() *StringValidation
		want  bool
	}{
		{
			name: "required empty",
			build: func() *StringValidation {
				return NewStringValidation("")
			},
			want: false,
		},
		{
			name: "optional empty",
			build: func() *StringValidation {
				return NewStringValidation("").WithRequired(false).WithMinLength(5)
			},
			want: true,
		},
		{
			name: "below min length",
			build: func() *StringValidation {
				return NewStringValidation("a").WithMinLength(NameMinLength)
			},
			want: false,
		},
		{
			name: "within bounds",
			build: func() *StringValidation {
				return NewStringValidation("Lin Yu-Chen").WithMinLength(NameMinLength).WithMaxLength(NameMaxLength)
			},
			want: true,
		},
		{
			name: "pattern mismatch",
			build: func() *StringValidation {
				return NewStringValidation("nope").WithPattern(CompiledPatterns.StudentNumber)
			},
			want: false,
		},
		{
			name: "pattern match",
			build: func() *StringValidation {
				return NewStringValidation("B11109001").WithPattern(CompiledPatterns.StudentNumber)
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
