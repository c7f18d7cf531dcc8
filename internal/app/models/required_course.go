package models

import "time"

// RequiredCourse is one eligibility row: a subject a student is required to
// retake in a given term. Staff maintain these lists; admission itself does
// not consult them.
type RequiredCourse struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	StudentID    int64     `json:"studentId" db:"student_id" example:"7"`
	SubjectCode  string    `json:"subjectCode" db:"subject_code" example:"MATH101"`
	SubjectName  string    `json:"subjectName" db:"subject_name" example:"Calculus I"`
	AcademicTerm string    `json:"academicTerm" db:"academic_term" example:"113-1"`
	Note         string    `json:"note,omitempty" db:"note"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
