package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id" example:"1"`                              // Unique identifier for the student record
	StudentNumber string    `json:"studentNumber" db:"student_number" example:"B11109001"` // School-issued student number
	FullName      string    `json:"fullName" db:"full_name" example:"Lin Yu-Chen"`
	Email         string    `json:"email" db:"email" example:"b11109001@school.edu"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
