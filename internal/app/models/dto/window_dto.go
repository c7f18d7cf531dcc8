package dto

import (
	"time"

	"github.com/derya/retakereg/internal/app/models"
)

// UpsertWindowRequest sets or replaces a term's registration window. A nil
// bound leaves that side open.
type UpsertWindowRequest struct {
	OpensAt  *time.Time `json:"opensAt,omitempty" example:"2025-02-10T09:00:00Z"`
	ClosesAt *time.Time `json:"closesAt,omitempty" example:"2025-02-21T17:00:00Z"`
	SetBy    string     `json:"setBy" binding:"required" example:"registrar"`
}

// WindowResponse represents a registration window.
type WindowResponse struct {
	AcademicTerm string     `json:"academicTerm" example:"113-1"`
	OpensAt      *time.Time `json:"opensAt,omitempty"`
	ClosesAt     *time.Time `json:"closesAt,omitempty"`
	SetBy        string     `json:"setBy,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	IsOpenNow    bool       `json:"isOpenNow"`
}

// WindowListResponse represents all configured windows.
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromRegistrationWindow converts a model window, evaluating openness at now.
func FromRegistrationWindow(w models.RegistrationWindow, now time.Time) WindowResponse {
	return WindowResponse{
		AcademicTerm: w.AcademicTerm,
		OpensAt:      w.OpensAt,
		ClosesAt:     w.ClosesAt,
		SetBy:        w.SetBy,
		UpdatedAt:    w.UpdatedAt,
		IsOpenNow:    w.Contains(now),
	}
}
