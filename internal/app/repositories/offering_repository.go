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
	constraintOfferingTermSubjectSection = "uq_course_offerings_term_subject_section"
	constraintEnrollmentsOffering        = "fk_enrollments_offering"
)

var offeringColumns = []string{
	"id", "academic_term", "subject_code", "section_key",
	"title", "instructor", "credits", "is_open", "created_at", "updated_at",
}

// OfferingRepository handles database operations for course offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new OfferingRepository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{db: db}
}

// Create inserts an offering together with its time slots in one transaction.
// The generated IDs are written back into the offering.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.CourseOffering) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := squirrel.Insert("course_offerings").
		Columns("academic_term", "subject_code", "section_key", "title", "instructor", "credits", "is_open").
		Values(offering.AcademicTerm, offering.SubjectCode, offering.SectionKey,
			offering.Title, offering.Instructor, offering.Credits, offering.IsOpen).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&offering.ID, &offering.CreatedAt, &offering.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintOfferingTermSubjectSection) {
			return apperrors.ErrOfferingAlreadyExists
		}
		return fmt.Errorf("error creating offering: %w", err)
	}

	for i := range offering.TimeSlots {
		offering.TimeSlots[i].OfferingID = offering.ID
		if err := insertTimeSlot(ctx, tx, &offering.TimeSlots[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves an offering with its time slots. Returns nil when the
// offering does not exist.
func (r *OfferingRepository) GetByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	query := squirrel.Select(offeringColumns...).
		From("course_offerings").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var offering models.CourseOffering
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&offering.ID,
		&offering.AcademicTerm,
		&offering.SubjectCode,
		&offering.SectionKey,
		&offering.Title,
		&offering.Instructor,
		&offering.Credits,
		&offering.IsOpen,
		&offering.CreatedAt,
		&offering.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	slots, err := r.loadTimeSlots(ctx, offering.ID)
	if err != nil {
		return nil, err
	}
	offering.TimeSlots = slots

	return &offering, nil
}

// GetAll retrieves offerings with filtering and pagination. Time slots are
// loaded for every offering on the page.
func (r *OfferingRepository) GetAll(ctx context.Context, term, subjectCode *string, openOnly bool, page, pageSize int) ([]models.CourseOffering, int64, error) {
	query := squirrel.Select(offeringColumns...).
		From("course_offerings").
		OrderBy("academic_term DESC", "subject_code", "section_key").
		PlaceholderFormat(squirrel.Dollar)

	if term != nil {
		query = query.Where("academic_term = ?", *term)
	}
	if subjectCode != nil {
		query = query.Where("subject_code = ?", *subjectCode)
	}
	if openOnly {
		query = query.Where("is_open = TRUE")
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

	var offerings []models.CourseOffering
	var total int64

	for rows.Next() {
		var offering models.CourseOffering
		err := rows.Scan(
			&offering.ID,
			&offering.AcademicTerm,
			&offering.SubjectCode,
			&offering.SectionKey,
			&offering.Title,
			&offering.Instructor,
			&offering.Credits,
			&offering.IsOpen,
			&offering.CreatedAt,
			&offering.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		offerings = append(offerings, offering)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(offerings) > 0 {
		ids := make([]int64, len(offerings))
		for i, o := range offerings {
			ids[i] = o.ID
		}
		slotsByOffering, err := loadTimeSlotsByOffering(ctx, r.db, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range offerings {
			offerings[i].TimeSlots = slotsByOffering[offerings[i].ID]
		}
	}

	return offerings, total, nil
}

// Update updates the scalar fields of an offering.
func (r *OfferingRepository) Update(ctx context.Context, offering *models.CourseOffering) error {
	query := squirrel.Update("course_offerings").
		Set("title", offering.Title).
		Set("instructor", offering.Instructor).
		Set("credits", offering.Credits).
		Set("is_open", offering.IsOpen).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", offering.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating offering: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

// ReplaceTimeSlots deletes the offering's time slots and inserts the given
// set in one transaction.
func (r *OfferingRepository) ReplaceTimeSlots(ctx context.Context, offeringID int64, slots []models.TimeSlot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM course_time_slots WHERE course_offering_id = $1`, offeringID); err != nil {
		return fmt.Errorf("error deleting time slots: %w", err)
	}

	for i := range slots {
		slots[i].OfferingID = offeringID
		if err := insertTimeSlot(ctx, tx, &slots[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete removes an offering. Offerings referenced by enrollment records
// cannot be deleted.
func (r *OfferingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM course_offerings WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, constraintEnrollmentsOffering) {
			return apperrors.ErrOfferingHasEnrollments
		}
		return fmt.Errorf("error deleting offering: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

func insertTimeSlot(ctx context.Context, tx pgx.Tx, slot *models.TimeSlot) error {
	query := squirrel.Insert("course_time_slots").
		Columns("course_offering_id", "week_number", "day_of_week", "period", "start_time", "end_time", "location").
		Values(slot.OfferingID, slot.WeekNumber, slot.DayOfWeek, slot.Period,
			int(slot.StartTime), int(slot.EndTime), slot.Location).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := tx.QueryRow(ctx, sql, args...).Scan(&slot.ID); err != nil {
		return fmt.Errorf("error creating time slot: %w", err)
	}

	return nil
}

func (r *OfferingRepository) loadTimeSlots(ctx context.Context, offeringID int64) ([]models.TimeSlot, error) {
	slotsByOffering, err := loadTimeSlotsByOffering(ctx, r.db, []int64{offeringID})
	if err != nil {
		return nil, err
	}
	return slotsByOffering[offeringID], nil
}

// loadTimeSlotsByOffering fetches the time slots of the given offerings,
// grouped by offering ID. Shared with the enrollment repository for building
// joined schedules.
func loadTimeSlotsByOffering(ctx context.Context, db *pgxpool.Pool, offeringIDs []int64) (map[int64][]models.TimeSlot, error) {
	query := `
		SELECT id, course_offering_id, week_number, day_of_week, period, start_time, end_time, location
		FROM course_time_slots
		WHERE course_offering_id = ANY($1)
		ORDER BY day_of_week, start_time, id
	`

	rows, err := db.Query(ctx, query, offeringIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading time slots: %w", err)
	}
	defer rows.Close()

	slotsByOffering := make(map[int64][]models.TimeSlot)
	for rows.Next() {
		var slot models.TimeSlot
		var start, end int
		if err := rows.Scan(
			&slot.ID,
			&slot.OfferingID,
			&slot.WeekNumber,
			&slot.DayOfWeek,
			&slot.Period,
			&start,
			&end,
			&slot.Location,
		); err != nil {
			return nil, fmt.Errorf("error scanning time slot: %w", err)
		}
		slot.StartTime = models.MinuteOfDay(start)
		slot.EndTime = models.MinuteOfDay(end)
		slotsByOffering[slot.OfferingID] = append(slotsByOffering[slot.OfferingID], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slotsByOffering, nil
}
