package services

import (
	"context"
	"fmt"
	"time"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/helpers"
)

// EnrollmentService defines the interface for enrollment record operations
type EnrollmentService interface {
	GetStudentEnrollments(ctx context.Context, studentID int64, academicTerm, status *string) ([]dto.EnrollmentResponse, error)
	ListEnrollments(ctx context.Context, filter *dto.EnrollmentFilterRequest) (*dto.EnrollmentListResponse, error)
	CancelEnrollment(ctx context.Context, id int64) (*dto.EnrollmentResponse, error)
	ExpirePendingOlderThan(ctx context.Context, ttl time.Duration) (int64, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, studentRepo *repositories.StudentRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
	}
}

// GetStudentEnrollments retrieves a student's enrollments with offering
// details, newest first.
func (s *enrollmentServiceImpl) GetStudentEnrollments(ctx context.Context, studentID int64, academicTerm, status *string) ([]dto.EnrollmentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID, academicTerm, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, dto.FromEnrollment(e))
	}
	return responses, nil
}

// ListEnrollments retrieves enrollments with filtering and pagination for
// staff views.
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, filter *dto.EnrollmentFilterRequest) (*dto.EnrollmentListResponse, error) {
	statusFilter, err := parseStatusFilter(filter.Status)
	if err != nil {
		return nil, err
	}

	enrollments, total, err := s.enrollmentRepo.List(ctx,
		filter.StudentID, filter.OfferingID, statusFilter,
		filter.AcademicTerm, filter.SubjectCode,
		filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	responses := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, dto.FromEnrollment(e))
	}

	return &dto.EnrollmentListResponse{
		Enrollments:    responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// CancelEnrollment transitions an ACTIVE or PENDING enrollment to CANCELLED.
// Cancelling frees the subject and the time slots for future admissions.
func (s *enrollmentServiceImpl) CancelEnrollment(ctx context.Context, id int64) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	if !enrollment.Status.CanTransitionTo(models.EnrollmentCancelled) {
		return nil, fmt.Errorf("%w: %s enrollment cannot be cancelled",
			apperrors.ErrInvalidStatusChange, enrollment.Status)
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, id, models.EnrollmentCancelled); err != nil {
		return nil, err
	}

	updated, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}

	resp := dto.FromEnrollment(*updated)
	return &resp, nil
}

// ExpirePendingOlderThan cancels PENDING enrollments older than ttl and
// returns how many were cancelled.
func (s *enrollmentServiceImpl) ExpirePendingOlderThan(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	return s.enrollmentRepo.ExpirePending(ctx, cutoff)
}

func parseStatusFilter(status *string) (*models.EnrollmentStatus, error) {
	if status == nil || *status == "" {
		return nil, nil
	}
	parsed := models.EnrollmentStatus(*status)
	if !parsed.IsValid() {
		return nil, fmt.Errorf("%w: unknown enrollment status %q", apperrors.ErrValidationFailed, *status)
	}
	return &parsed, nil
}
