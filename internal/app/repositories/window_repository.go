package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/retakereg/internal/app/models"
)

// WindowRepository handles database operations for registration windows
type WindowRepository struct {
	db *pgxpool.Pool
}

// NewWindowRepository creates a new WindowRepository
func NewWindowRepository(db *pgxpool.Pool) *WindowRepository {
	return &WindowRepository{db: db}
}

// GetByTerm retrieves the registration window of a term. Returns nil when no
// window has been configured, which admission treats as closed.
func (r *WindowRepository) GetByTerm(ctx context.Context, term string) (*models.RegistrationWindow, error) {
	query := `
		SELECT academic_term, opens_at, closes_at, set_by, updated_at
		FROM registration_windows
		WHERE academic_term = $1
	`

	var window models.RegistrationWindow
	err := r.db.QueryRow(ctx, query, term).Scan(
		&window.AcademicTerm,
		&window.OpensAt,
		&window.ClosesAt,
		&window.SetBy,
		&window.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving registration window: %w", err)
	}

	return &window, nil
}

// Upsert inserts or replaces the window of a term. The latest write wins.
func (r *WindowRepository) Upsert(ctx context.Context, window *models.RegistrationWindow) error {
	query := `
		INSERT INTO registration_windows (academic_term, opens_at, closes_at, set_by, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (academic_term) DO UPDATE
		SET opens_at = EXCLUDED.opens_at,
		    closes_at = EXCLUDED.closes_at,
		    set_by = EXCLUDED.set_by,
		    updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		window.AcademicTerm,
		window.OpensAt,
		window.ClosesAt,
		window.SetBy,
	).Scan(&window.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting registration window: %w", err)
	}

	return nil
}

// GetAll retrieves every configured registration window, newest term first.
func (r *WindowRepository) GetAll(ctx context.Context) ([]models.RegistrationWindow, error) {
	query := `
		SELECT academic_term, opens_at, closes_at, set_by, updated_at
		FROM registration_windows
		ORDER BY academic_term DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing registration windows: %w", err)
	}
	defer rows.Close()

	var windows []models.RegistrationWindow
	for rows.Next() {
		var window models.RegistrationWindow
		if err := rows.Scan(
			&window.AcademicTerm,
			&window.OpensAt,
			&window.ClosesAt,
			&window.SetBy,
			&window.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning registration window: %w", err)
		}
		windows = append(windows, window)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return windows, nil
}
