package dto

import (
	"time"

	"github.com/derya/retakereg/internal/app/models"
)

// EnrollmentResponse represents one registration record.
type EnrollmentResponse struct {
	ID               int64     `json:"id"`
	StudentID        int64     `json:"studentId"`
	CourseOfferingID int64     `json:"courseOfferingId"`
	SubjectCode      string    `json:"subjectCode" example:"MATH101"`
	AcademicTerm     string    `json:"academicTerm" example:"113-1"`
	Status           string    `json:"status" example:"ACTIVE"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Offering *OfferingResponse `json:"offering,omitempty"`
}

// EnrollmentListResponse represents a page of enrollments.
type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
	PaginationInfo
}

// EnrollmentFilterRequest represents enrollment list filter parameters.
type EnrollmentFilterRequest struct {
	AcademicTerm *string `form:"term,omitempty"`
	SubjectCode  *string `form:"subject,omitempty"`
	Status       *string `form:"status,omitempty" binding:"omitempty,oneof=PENDING ACTIVE CANCELLED REJECTED_CONFLICT"`
	StudentID    *int64  `form:"studentId,omitempty"`
	OfferingID   *int64  `form:"offeringId,omitempty"`
	Page         int     `form:"page,default=1" binding:"min=1"`
	PageSize     int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// FromEnrollment converts a model enrollment to its response shape.
func FromEnrollment(e models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:               e.ID,
		StudentID:        e.StudentID,
		CourseOfferingID: e.CourseOfferingID,
		SubjectCode:      e.SubjectCode,
		AcademicTerm:     e.AcademicTerm,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Offering != nil {
		offering := FromCourseOffering(e.Offering)
		resp.Offering = &offering
	}
	return resp
}
