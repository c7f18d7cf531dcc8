package models

// AdmissionStatus classifies the outcome of an admission request.
type AdmissionStatus string

const (
	// AdmissionAccepted means an active enrollment was created.
	AdmissionAccepted AdmissionStatus = "ACCEPTED"
	// AdmissionRejected is a final business-rule rejection for this call.
	AdmissionRejected AdmissionStatus = "REJECTED"
	// AdmissionFailed means the request could not be decided; no record was
	// written, so the whole call is safe to retry.
	AdmissionFailed AdmissionStatus = "FAILED"
)

// AdmissionReason explains a rejected or failed admission.
type AdmissionReason string

const (
	ReasonWindowClosed       AdmissionReason = "WINDOW_CLOSED"
	ReasonAlreadyEnrolled    AdmissionReason = "ALREADY_ENROLLED"
	ReasonTimeOverlap        AdmissionReason = "TIME_OVERLAP"
	ReasonSameSubjectSection AdmissionReason = "SAME_SUBJECT_DIFFERENT_SECTION"
	ReasonCourseNotFound     AdmissionReason = "COURSE_NOT_FOUND"
	ReasonLockTimeout        AdmissionReason = "LOCK_TIMEOUT"
	ReasonStorageError       AdmissionReason = "STORAGE_ERROR"
)

// AdmissionDecision is the structured outcome of one admit call. Rejections
// are normal decisions, not errors; only Failed outcomes correspond to
// infrastructure problems.
type AdmissionDecision struct {
	Status AdmissionStatus `json:"status" example:"ACCEPTED"`
	Reason AdmissionReason `json:"reason,omitempty" example:"TIME_OVERLAP"`
	// EnrollmentID is set when Status is AdmissionAccepted.
	EnrollmentID *int64 `json:"enrollmentId,omitempty"`
	// ConflictWithOfferingID names the held offering that blocked admission
	// for conflict rejections.
	ConflictWithOfferingID *int64 `json:"conflictWithOfferingId,omitempty"`
}

// AcceptedDecision builds the decision for a successful admission.
func AcceptedDecision(enrollmentID int64) AdmissionDecision {
	return AdmissionDecision{Status: AdmissionAccepted, EnrollmentID: &enrollmentID}
}

// RejectedDecision builds a rejection without a conflicting witness.
func RejectedDecision(reason AdmissionReason) AdmissionDecision {
	return AdmissionDecision{Status: AdmissionRejected, Reason: reason}
}

// ConflictDecision builds a rejection from a conflict detection result.
func ConflictDecision(result ConflictResult) AdmissionDecision {
	reason := ReasonTimeOverlap
	if result.Kind == ConflictSameSubjectSection {
		reason = ReasonSameSubjectSection
	}
	with := result.WithOfferingID
	return AdmissionDecision{
		Status:                 AdmissionRejected,
		Reason:                 reason,
		ConflictWithOfferingID: &with,
	}
}

// FailedDecision builds the decision for an undecidable request.
func FailedDecision(reason AdmissionReason) AdmissionDecision {
	return AdmissionDecision{Status: AdmissionFailed, Reason: reason}
}
