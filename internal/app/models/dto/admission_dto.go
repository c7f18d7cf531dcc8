package dto

import "github.com/derya/retakereg/internal/app/models"

// AdmitRequest asks to enroll a student into a course offering.
type AdmitRequest struct {
	StudentID        int64 `json:"studentId" binding:"required,gt=0" example:"7"`
	CourseOfferingID int64 `json:"courseOfferingId" binding:"required,gt=0" example:"3"`
}

// AdmissionDecisionResponse is the API shape of an admission decision.
type AdmissionDecisionResponse struct {
	Status                 string `json:"status" example:"ACCEPTED"`
	Reason                 string `json:"reason,omitempty" example:"TIME_OVERLAP"`
	EnrollmentID           *int64 `json:"enrollmentId,omitempty"`
	ConflictWithOfferingID *int64 `json:"conflictWithOfferingId,omitempty"`
	Message                string `json:"message" example:"enrollment created"`
}

// FromAdmissionDecision converts the engine decision to the API shape.
func FromAdmissionDecision(d models.AdmissionDecision) AdmissionDecisionResponse {
	return AdmissionDecisionResponse{
		Status:                 string(d.Status),
		Reason:                 string(d.Reason),
		EnrollmentID:           d.EnrollmentID,
		ConflictWithOfferingID: d.ConflictWithOfferingID,
		Message:                admissionMessage(d),
	}
}

func admissionMessage(d models.AdmissionDecision) string {
	if d.Status == models.AdmissionAccepted {
		return "enrollment created"
	}
	switch d.Reason {
	case models.ReasonWindowClosed:
		return "the registration window for this term is closed"
	case models.ReasonAlreadyEnrolled:
		return "the student already holds an active enrollment in this offering"
	case models.ReasonTimeOverlap:
		return "the offering's schedule overlaps an existing enrollment"
	case models.ReasonSameSubjectSection:
		return "the student already holds another section of this subject"
	case models.ReasonCourseNotFound:
		return "the course offering does not exist or is closed"
	case models.ReasonLockTimeout:
		return "the student's enrollment lock could not be acquired in time"
	case models.ReasonStorageError:
		return "a storage failure prevented a decision; the request may be retried"
	default:
		return "admission " + string(d.Status)
	}
}
