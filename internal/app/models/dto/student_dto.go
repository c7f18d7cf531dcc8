package dto

import (
	"time"

	"github.com/derya/retakereg/internal/app/models"
)

// CreateStudentRequest represents student roster creation data.
type CreateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required" example:"B11109001"`
	FullName      string `json:"fullName" binding:"required" example:"Lin Yu-Chen"`
	Email         string `json:"email" binding:"omitempty,email" example:"b11109001@school.edu"`
}

// StudentResponse represents one roster entry.
type StudentResponse struct {
	ID            int64     `json:"id"`
	StudentNumber string    `json:"studentNumber" example:"B11109001"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StudentListResponse represents a page of roster entries.
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// StudentFilterRequest represents roster list filter parameters.
type StudentFilterRequest struct {
	Search   *string `form:"search,omitempty"`
	Page     int     `form:"page,default=1" binding:"min=1"`
	PageSize int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// FromStudent converts a model student to its response shape.
func FromStudent(s models.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID,
		StudentNumber: s.StudentNumber,
		FullName:      s.FullName,
		Email:         s.Email,
		CreatedAt:     s.CreatedAt,
	}
}
