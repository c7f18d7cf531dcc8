package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/dberrors"
	"github.com/derya/retakereg/internal/pkg/helpers"
)

const (
	constraintEnrollmentActiveOffering = "uq_enrollments_active_offering"
	constraintEnrollmentActiveSubject  = "uq_enrollments_active_subject"
	constraintEnrollmentsStudent       = "fk_enrollments_student"
)

// enrollmentJoinedColumns lists the enrollment row followed by its offering.
const enrollmentJoinedColumns = `
	e.id, e.student_id, e.course_offering_id, e.subject_code, e.academic_term, e.status, e.created_at, e.updated_at,
	o.id, o.academic_term, o.subject_code, o.section_key, o.title, o.instructor, o.credits, o.is_open, o.created_at, o.updated_at`

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// CreateActive inserts an enrollment in ACTIVE status. The insert is the
// single commit point of an admission: the partial unique indexes backstop
// the duplicate and cross-section rules even across processes.
func (r *EnrollmentRepository) CreateActive(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_offering_id, subject_code, academic_term, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	enrollment.Status = models.EnrollmentActive
	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseOfferingID,
		enrollment.SubjectCode,
		enrollment.AcademicTerm,
		string(enrollment.Status),
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintEnrollmentActiveOffering):
			return apperrors.ErrAlreadyEnrolled
		case dberrors.IsDuplicateConstraintError(err, constraintEnrollmentActiveSubject):
			return apperrors.ErrScheduleConflict
		case dberrors.IsForeignKeyViolation(err, constraintEnrollmentsStudent):
			return apperrors.ErrStudentNotFound
		case dberrors.IsForeignKeyViolation(err, constraintEnrollmentsOffering):
			return apperrors.ErrOfferingNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// ListActiveJoined retrieves a student's ACTIVE enrollments in a term with
// their offerings and time slots, ordered by enrollment creation. This is the
// held set the conflict detector scans.
func (r *EnrollmentRepository) ListActiveJoined(ctx context.Context, studentID int64, academicTerm string) ([]models.Enrollment, error) {
	query := `
		SELECT` + enrollmentJoinedColumns + `
		FROM enrollments e
		JOIN course_offerings o ON o.id = e.course_offering_id
		WHERE e.student_id = $1 AND e.academic_term = $2 AND e.status = $3
		ORDER BY e.id
	`

	rows, err := r.db.Query(ctx, query, studentID, academicTerm, string(models.EnrollmentActive))
	if err != nil {
		return nil, fmt.Errorf("error listing active enrollments: %w", err)
	}
	defer rows.Close()

	enrollments, err := collectJoinedEnrollments(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachTimeSlots(ctx, enrollments); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment with its offering. Returns nil when the
// enrollment does not exist.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT` + enrollmentJoinedColumns + `
		FROM enrollments e
		JOIN course_offerings o ON o.id = e.course_offering_id
		WHERE e.id = $1
	`

	enrollment, err := scanJoinedEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// UpdateStatus sets the status of an enrollment.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE enrollments SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id)
	if err != nil {
		return fmt.Errorf("error updating enrollment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// ListByStudent retrieves a student's enrollments with offerings and time
// slots, newest first. Status is an optional filter.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64, academicTerm *string, status *models.EnrollmentStatus) ([]models.Enrollment, error) {
	query := `
		SELECT` + enrollmentJoinedColumns + `
		FROM enrollments e
		JOIN course_offerings o ON o.id = e.course_offering_id
		WHERE e.student_id = $1
	`
	args := []interface{}{studentID}
	if academicTerm != nil {
		args = append(args, *academicTerm)
		query += fmt.Sprintf(" AND e.academic_term = $%d", len(args))
	}
	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}
	query += ` ORDER BY e.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrollments, err := collectJoinedEnrollments(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachTimeSlots(ctx, enrollments); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// List retrieves enrollments with filtering and pagination for staff views.
func (r *EnrollmentRepository) List(ctx context.Context, studentID, offeringID *int64, status *models.EnrollmentStatus, term, subjectCode *string, page, pageSize int) ([]models.Enrollment, int64, error) {
	query := squirrel.Select(
		"e.id", "e.student_id", "e.course_offering_id", "e.subject_code", "e.academic_term", "e.status", "e.created_at", "e.updated_at",
		"o.id", "o.academic_term", "o.subject_code", "o.section_key", "o.title", "o.instructor", "o.credits", "o.is_open", "o.created_at", "o.updated_at").
		From("enrollments e").
		Join("course_offerings o ON o.id = e.course_offering_id").
		OrderBy("e.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if studentID != nil {
		query = query.Where("e.student_id = ?", *studentID)
	}
	if offeringID != nil {
		query = query.Where("e.course_offering_id = ?", *offeringID)
	}
	if status != nil {
		query = query.Where("e.status = ?", string(*status))
	}
	if term != nil {
		query = query.Where("e.academic_term = ?", *term)
	}
	if subjectCode != nil {
		query = query.Where("e.subject_code = ?", *subjectCode)
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

	var enrollments []models.Enrollment
	var total int64

	for rows.Next() {
		var e models.Enrollment
		var o models.CourseOffering
		var status string
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseOfferingID, &e.SubjectCode, &e.AcademicTerm, &status, &e.CreatedAt, &e.UpdatedAt,
			&o.ID, &o.AcademicTerm, &o.SubjectCode, &o.SectionKey, &o.Title, &o.Instructor, &o.Credits, &o.IsOpen, &o.CreatedAt, &o.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		e.Status = models.EnrollmentStatus(status)
		e.Offering = &o
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// ExpirePending cancels PENDING enrollments created before the cutoff and
// returns how many rows were affected.
func (r *EnrollmentRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE enrollments SET status = $1, updated_at = NOW() WHERE status = $2 AND created_at < $3`,
		string(models.EnrollmentCancelled), string(models.EnrollmentPending), cutoff)
	if err != nil {
		return 0, fmt.Errorf("error expiring pending enrollments: %w", err)
	}

	return result.RowsAffected(), nil
}

// scanJoinedEnrollment scans one enrollment row joined with its offering.
func scanJoinedEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	var o models.CourseOffering
	var status string
	err := row.Scan(
		&e.ID, &e.StudentID, &e.CourseOfferingID, &e.SubjectCode, &e.AcademicTerm, &status, &e.CreatedAt, &e.UpdatedAt,
		&o.ID, &o.AcademicTerm, &o.SubjectCode, &o.SectionKey, &o.Title, &o.Instructor, &o.Credits, &o.IsOpen, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = models.EnrollmentStatus(status)
	e.Offering = &o
	return &e, nil
}

func collectJoinedEnrollments(rows pgx.Rows) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	for rows.Next() {
		enrollment, err := scanJoinedEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, *enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// attachTimeSlots loads the time slots of every offering referenced by the
// enrollments and attaches them in place.
func (r *EnrollmentRepository) attachTimeSlots(ctx context.Context, enrollments []models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(enrollments))
	seen := make(map[int64]struct{}, len(enrollments))
	for _, e := range enrollments {
		if _, ok := seen[e.CourseOfferingID]; ok {
			continue
		}
		seen[e.CourseOfferingID] = struct{}{}
		ids = append(ids, e.CourseOfferingID)
	}

	slotsByOffering, err := loadTimeSlotsByOffering(ctx, r.db, ids)
	if err != nil {
		return err
	}

	for i := range enrollments {
		if enrollments[i].Offering != nil {
			enrollments[i].Offering.TimeSlots = slotsByOffering[enrollments[i].CourseOfferingID]
		}
	}

	return nil
}
