package models

import "time"

// CourseOffering represents one scheduled section of a subject in an academic
// term. SubjectCode plus AcademicTerm identifies the logical subject; several
// SectionKey values may exist for the same subject and term as parallel
// sections.
type CourseOffering struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	AcademicTerm string    `json:"academicTerm" db:"academic_term" example:"113-1"`
	SubjectCode  string    `json:"subjectCode" db:"subject_code" example:"MATH101"`
	SectionKey   string    `json:"sectionKey" db:"section_key" example:"A"`
	Title        string    `json:"title" db:"title" example:"Calculus I"`
	Instructor   string    `json:"instructor,omitempty" db:"instructor"`
	Credits      int       `json:"credits" db:"credits" example:"3"`
	IsOpen       bool      `json:"isOpen" db:"is_open"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`
}
