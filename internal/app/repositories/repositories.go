package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	OfferingRepository    *OfferingRepository
	EnrollmentRepository  *EnrollmentRepository
	WindowRepository      *WindowRepository
	RequirementRepository *RequirementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		OfferingRepository:    NewOfferingRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		WindowRepository:      NewWindowRepository(db),
		RequirementRepository: NewRequirementRepository(db),
	}
}
