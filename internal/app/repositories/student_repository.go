package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/dberrors"
	"github.com/derya/retakereg/internal/pkg/helpers"
)

const (
	constraintStudentNumber = "uq_students_student_number"
	constraintStudentEmail  = "uq_students_email"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_number, full_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, student.StudentNumber, student.FullName, student.Email).
		Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintStudentNumber) ||
			dberrors.IsDuplicateConstraintError(err, constraintStudentEmail) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID. Returns nil when the student does not
// exist.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, student_number, full_name, email, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.StudentNumber,
		&student.FullName,
		&student.Email,
		&student.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByStudentNumber retrieves a student by student number. Returns nil when
// the student does not exist.
func (r *StudentRepository) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	query := `
		SELECT id, student_number, full_name, email, created_at
		FROM students
		WHERE student_number = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, studentNumber).Scan(
		&student.ID,
		&student.StudentNumber,
		&student.FullName,
		&student.Email,
		&student.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves students with optional search and pagination. Search
// matches student number or full name.
func (r *StudentRepository) GetAll(ctx context.Context, search *string, page, pageSize int) ([]models.Student, int64, error) {
	query := squirrel.Select("id", "student_number", "full_name", "email", "created_at").
		From("students").
		OrderBy("student_number").
		PlaceholderFormat(squirrel.Dollar)

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query = query.Where("(student_number ILIKE ? OR full_name ILIKE ?)", pattern, pattern)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query = query.Limit(uint64(limit)).Offset(offset)

	countQuery := query.Column("COUNT(*) OVER()")
	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	var total int64
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentNumber,
			&student.FullName,
			&student.Email,
			&student.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
