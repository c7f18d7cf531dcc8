package models

import "time"

// EnrollmentStatus represents the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	// EnrollmentPending is a registration parked for manual handling.
	EnrollmentPending EnrollmentStatus = "PENDING"
	// EnrollmentActive is a confirmed registration; only active records
	// count against the no-overlap and one-section-per-subject rules.
	EnrollmentActive EnrollmentStatus = "ACTIVE"
	// EnrollmentCancelled is a withdrawn registration.
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
	// EnrollmentRejectedConflict marks a registration voided because of a
	// schedule conflict discovered after the fact.
	EnrollmentRejectedConflict EnrollmentStatus = "REJECTED_CONFLICT"
)

// IsValid reports whether s is a known status value.
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentPending, EnrollmentActive, EnrollmentCancelled, EnrollmentRejectedConflict:
		return true
	}
	return false
}

// CanTransitionTo reports whether a record in status s may move to next.
// Cancelled and rejected records are terminal.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	switch s {
	case EnrollmentPending:
		return next == EnrollmentActive || next == EnrollmentCancelled
	case EnrollmentActive:
		return next == EnrollmentCancelled
	default:
		return false
	}
}

// Enrollment records one student's registration in a course offering.
// SubjectCode and AcademicTerm are denormalized from the offering at creation
// so the cross-section rule can be checked without joins.
type Enrollment struct {
	ID               int64            `json:"id" db:"id" example:"1"`
	StudentID        int64            `json:"studentId" db:"student_id" example:"7"`
	CourseOfferingID int64            `json:"courseOfferingId" db:"course_offering_id" example:"3"`
	SubjectCode      string           `json:"subjectCode" db:"subject_code" example:"MATH101"`
	AcademicTerm     string           `json:"academicTerm" db:"academic_term" example:"113-1"`
	Status           EnrollmentStatus `json:"status" db:"status" example:"ACTIVE"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Offering *CourseOffering `json:"offering,omitempty"`
	Student  *Student        `json:"student,omitempty"`
}
