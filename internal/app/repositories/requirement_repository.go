package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/dberrors"
)

const (
	constraintRequirementStudentSubjectTerm = "uq_required_courses_student_subject_term"
	constraintRequirementsStudent           = "fk_required_courses_student"
)

// RequirementRepository handles database operations for required courses
type RequirementRepository struct {
	db *pgxpool.Pool
}

// NewRequirementRepository creates a new RequirementRepository
func NewRequirementRepository(db *pgxpool.Pool) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// Create records a subject a student must retake.
func (r *RequirementRepository) Create(ctx context.Context, requirement *models.RequiredCourse) error {
	query := `
		INSERT INTO required_courses (student_id, subject_code, subject_name, academic_term, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		requirement.StudentID,
		requirement.SubjectCode,
		requirement.SubjectName,
		requirement.AcademicTerm,
		requirement.Note,
	).Scan(&requirement.ID, &requirement.CreatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintRequirementStudentSubjectTerm):
			return apperrors.ErrRequirementAlreadyExists
		case dberrors.IsForeignKeyViolation(err, constraintRequirementsStudent):
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating required course: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's required courses, optionally filtered
// by term.
func (r *RequirementRepository) ListByStudent(ctx context.Context, studentID int64, term *string) ([]models.RequiredCourse, error) {
	query := `
		SELECT id, student_id, subject_code, subject_name, academic_term, note, created_at
		FROM required_courses
		WHERE student_id = $1
	`
	args := []interface{}{studentID}
	if term != nil {
		query += ` AND academic_term = $2`
		args = append(args, *term)
	}
	query += ` ORDER BY academic_term DESC, subject_code`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing required courses: %w", err)
	}
	defer rows.Close()

	var requirements []models.RequiredCourse
	for rows.Next() {
		var requirement models.RequiredCourse
		if err := rows.Scan(
			&requirement.ID,
			&requirement.StudentID,
			&requirement.SubjectCode,
			&requirement.SubjectName,
			&requirement.AcademicTerm,
			&requirement.Note,
			&requirement.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning required course: %w", err)
		}
		requirements = append(requirements, requirement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requirements, nil
}

// Delete removes a required course record.
func (r *RequirementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM required_courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting required course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRequirementNotFound
	}

	return nil
}
