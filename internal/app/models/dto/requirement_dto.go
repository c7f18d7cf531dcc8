package dto

import (
	"time"

	"github.com/derya/retakereg/internal/app/models"
)

// CreateRequirementRequest adds a subject to a student's required-course list.
type CreateRequirementRequest struct {
	StudentID    int64  `json:"studentId" binding:"required,gt=0" example:"7"`
	SubjectCode  string `json:"subjectCode" binding:"required,subjectcode" example:"MATH101"`
	SubjectName  string `json:"subjectName,omitempty" example:"Calculus I"`
	AcademicTerm string `json:"academicTerm" binding:"required,academicterm" example:"113-1"`
	Note         string `json:"note,omitempty"`
}

// RequirementResponse represents one required-course row. Satisfied is set on
// the student-facing listing and reports whether an active enrollment already
// covers the subject.
type RequirementResponse struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"studentId"`
	SubjectCode  string    `json:"subjectCode" example:"MATH101"`
	SubjectName  string    `json:"subjectName,omitempty"`
	AcademicTerm string    `json:"academicTerm" example:"113-1"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Satisfied    *bool     `json:"satisfied,omitempty"`
}

// RequirementListResponse represents a student's required-course list.
type RequirementListResponse struct {
	Requirements []RequirementResponse `json:"requirements"`
}

// FromRequiredCourse converts a model row to its response shape.
func FromRequiredCourse(r models.RequiredCourse) RequirementResponse {
	return RequirementResponse{
		ID:           r.ID,
		StudentID:    r.StudentID,
		SubjectCode:  r.SubjectCode,
		SubjectName:  r.SubjectName,
		AcademicTerm: r.AcademicTerm,
		Note:         r.Note,
		CreatedAt:    r.CreatedAt,
	}
}
