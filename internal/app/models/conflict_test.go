package models

import "testing"

// sampleOffering builds an offering in term 113-1 with the given slots.
func sampleOffering(id int64, subject, section string, slots ...TimeSlot) CourseOffering {
	return CourseOffering{
		ID:           id,
		AcademicTerm: "113-1",
		SubjectCode:  subject,
		SectionKey:   section,
		TimeSlots:    slots,
	}
}

func TestDetectConflictEmptyHeld(t *testing.T) {
	candidate := sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00"))
	got := DetectConflict(candidate, nil)
	if got.HasConflict() {
		t.Errorf("DetectConflict() = %+v, want no conflict", got)
	}
}

func TestDetectConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate CourseOffering
		held      []CourseOffering
		wantKind  ConflictKind
		wantWith  int64
	}{
		{
			name:      "no conflicts",
			candidate: sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(2, "09:00", "10:00")),
				sampleOffering(3, "CHEM101", "A", slotAt(1, "13:00", "14:00")),
			},
			wantKind: ConflictNone,
		},
		{
			name:      "same subject different section despite disjoint times",
			candidate: sampleOffering(1, "MATH101", "B", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "MATH101", "A", slotAt(4, "15:00", "16:00")),
			},
			wantKind: ConflictSameSubjectSection,
			wantWith: 2,
		},
		{
			name:      "subject rule checked before times for the same held offering",
			candidate: sampleOffering(1, "MATH101", "B", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			},
			wantKind: ConflictSameSubjectSection,
			wantWith: 2,
		},
		{
			name:      "same subject different term is not a section conflict",
			candidate: sampleOffering(1, "MATH101", "B", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				{ID: 2, AcademicTerm: "112-2", SubjectCode: "MATH101", SectionKey: "A",
					TimeSlots: []TimeSlot{slotAt(4, "15:00", "16:00")}},
			},
			wantKind: ConflictNone,
		},
		{
			name:      "time overlap with different subject",
			candidate: sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(1, "09:30", "10:30")),
			},
			wantKind: ConflictTimeOverlap,
			wantWith: 2,
		},
		{
			name:      "back to back slots do not conflict",
			candidate: sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(1, "10:00", "11:00")),
			},
			wantKind: ConflictNone,
		},
		{
			name: "any slot pair can trigger the overlap",
			candidate: sampleOffering(1, "MATH101", "A",
				slotAt(1, "09:00", "10:00"), slotAt(3, "13:00", "14:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A",
					slotAt(2, "09:00", "10:00"), slotAt(3, "13:30", "14:30")),
			},
			wantKind: ConflictTimeOverlap,
			wantWith: 2,
		},
		{
			name:      "first conflicting held offering wins",
			candidate: sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(1, "09:00", "10:00")),
				sampleOffering(3, "CHEM101", "A", slotAt(1, "09:00", "10:00")),
			},
			wantKind: ConflictTimeOverlap,
			wantWith: 2,
		},
		{
			name:      "held offerings are scanned in order",
			candidate: sampleOffering(1, "MATH101", "B", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(1, "09:00", "10:00")),
				sampleOffering(3, "MATH101", "A", slotAt(5, "09:00", "10:00")),
			},
			wantKind: ConflictTimeOverlap,
			wantWith: 2,
		},
		{
			name:      "later held offering conflicts",
			candidate: sampleOffering(1, "MATH101", "A", slotAt(1, "09:00", "10:00")),
			held: []CourseOffering{
				sampleOffering(2, "PHYS101", "A", slotAt(2, "09:00", "10:00")),
				sampleOffering(3, "CHEM101", "A", slotAt(1, "09:30", "10:00")),
			},
			wantKind: ConflictTimeOverlap,
			wantWith: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectConflict(tt.candidate, tt.held)
			if got.Kind != tt.wantKind {
				t.Errorf("DetectConflict() kind = %s, want %s", got.Kind, tt.wantKind)
			}
			if got.WithOfferingID != tt.wantWith {
				t.Errorf("DetectConflict() with = %d, want %d", got.WithOfferingID, tt.wantWith)
			}
		})
	}
}
