package models

// ConflictKind classifies the enrollment rule a candidate offering violates.
type ConflictKind string

const (
	// ConflictNone means the candidate violates neither rule.
	ConflictNone ConflictKind = "NONE"
	// ConflictTimeOverlap means a candidate slot overlaps a held offering's slot.
	ConflictTimeOverlap ConflictKind = "TIME_OVERLAP"
	// ConflictSameSubjectSection means the student already holds another
	// section of the candidate's subject in the same term.
	ConflictSameSubjectSection ConflictKind = "SAME_SUBJECT_DIFFERENT_SECTION"
)

// ConflictResult reports whether a candidate offering conflicts with a
// student's held offerings, and with which one.
type ConflictResult struct {
	Kind ConflictKind `json:"kind"`
	// WithOfferingID identifies the held offering that triggered the
	// conflict; zero when Kind is ConflictNone.
	WithOfferingID int64 `json:"withOfferingId,omitempty"`
}

// HasConflict reports whether the result names a rule violation.
func (r ConflictResult) HasConflict() bool {
	return r.Kind != ConflictNone
}

// DetectConflict decides whether admitting candidate alongside the held
// offerings would break either enrollment rule. For each held offering the
// same-subject rule is checked before its time slots, because holding any
// section of a subject excludes every other section of it in that term no
// matter when they meet. The held slice is expected in enrollment creation
// order; the first held offering that triggers either rule is reported and
// the scan stops there, so the witness is deterministic.
func DetectConflict(candidate CourseOffering, held []CourseOffering) ConflictResult {
	for _, h := range held {
		if h.SubjectCode == candidate.SubjectCode &&
			h.AcademicTerm == candidate.AcademicTerm &&
			h.SectionKey != candidate.SectionKey {
			return ConflictResult{Kind: ConflictSameSubjectSection, WithOfferingID: h.ID}
		}
		for _, cs := range candidate.TimeSlots {
			for _, hs := range h.TimeSlots {
				if cs.Overlaps(hs) {
					return ConflictResult{Kind: ConflictTimeOverlap, WithOfferingID: h.ID}
				}
			}
		}
	}
	return ConflictResult{Kind: ConflictNone}
}
