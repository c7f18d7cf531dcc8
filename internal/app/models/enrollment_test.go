package models

import "testing"

func TestEnrollmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from EnrollmentStatus
		to   EnrollmentStatus
		want bool
	}{
		{name: "pending to active", from: EnrollmentPending, to: EnrollmentActive, want: true},
		{name: "pending to cancelled", from: EnrollmentPending, to: EnrollmentCancelled, want: true},
		{name: "pending to rejected", from: EnrollmentPending, to: EnrollmentRejectedConflict, want: false},
		{name: "active to cancelled", from: EnrollmentActive, to: EnrollmentCancelled, want: true},
		{name: "active to rejected", from: EnrollmentActive, to: EnrollmentRejectedConflict, want: false},
		{name: "active to pending", from: EnrollmentActive, to: EnrollmentPending, want: false},
		{name: "active to active", from: EnrollmentActive, to: EnrollmentActive, want: false},
		{name: "cancelled is terminal", from: EnrollmentCancelled, to: EnrollmentActive, want: false},
		{name: "rejected is terminal", from: EnrollmentRejectedConflict, to: EnrollmentActive, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEnrollmentStatusIsValid(t *testing.T) {
	for _, s := range []EnrollmentStatus{
		EnrollmentPending, EnrollmentActive, EnrollmentCancelled, EnrollmentRejectedConflict,
	} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", s)
		}
	}
	if EnrollmentStatus("DROPPED").IsValid() {
		t.Error("IsValid(DROPPED) = true, want false")
	}
}
