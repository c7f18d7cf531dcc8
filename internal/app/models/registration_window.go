package models

import "time"

// RegistrationWindow defines when admission requests are accepted for an
// academic term. A nil bound leaves that side unbounded; a term with no
// window row at all is closed.
type RegistrationWindow struct {
	AcademicTerm string     `json:"academicTerm" db:"academic_term" example:"113-1"`
	OpensAt      *time.Time `json:"opensAt,omitempty" db:"opens_at"`
	ClosesAt     *time.Time `json:"closesAt,omitempty" db:"closes_at"`
	SetBy        string     `json:"setBy,omitempty" db:"set_by"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// Contains reports whether t falls inside [OpensAt, ClosesAt). The closing
// bound is exclusive, so a request arriving exactly at ClosesAt is outside
// the window.
func (w RegistrationWindow) Contains(t time.Time) bool {
	if w.OpensAt != nil && t.Before(*w.OpensAt) {
		return false
	}
	if w.ClosesAt != nil && !t.Before(*w.ClosesAt) {
		return false
	}
	return true
}
