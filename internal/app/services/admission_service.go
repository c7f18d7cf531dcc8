package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/keylock"
)

// Read and write ports of the admission engine. The repositories satisfy
// them; tests substitute in-memory fakes.
type (
	// OfferingReader resolves course offerings with their time slots.
	OfferingReader interface {
		GetByID(ctx context.Context, id int64) (*models.CourseOffering, error)
	}

	// EnrollmentReader loads the held set the conflict detector scans.
	EnrollmentReader interface {
		ListActiveJoined(ctx context.Context, studentID int64, academicTerm string) ([]models.Enrollment, error)
	}

	// WindowReader resolves the registration window of a term.
	WindowReader interface {
		GetByTerm(ctx context.Context, term string) (*models.RegistrationWindow, error)
	}

	// EnrollmentWriter persists accepted admissions.
	EnrollmentWriter interface {
		CreateActive(ctx context.Context, enrollment *models.Enrollment) error
	}
)

// AdmissionService decides registration requests for retake course offerings
type AdmissionService interface {
	Admit(ctx context.Context, studentID, offeringID int64) (models.AdmissionDecision, error)
}

// admissionServiceImpl implements AdmissionService
type admissionServiceImpl struct {
	offerings   OfferingReader
	enrollments EnrollmentReader
	windows     WindowReader
	writer      EnrollmentWriter
	locks       *keylock.KeyedMutex
	lockWait    time.Duration
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAdmissionService creates a new AdmissionService. lockWait bounds how
// long a request may wait for the student's admission lock.
func NewAdmissionService(
	offerings OfferingReader,
	enrollments EnrollmentReader,
	windows WindowReader,
	writer EnrollmentWriter,
	lockWait time.Duration,
	logger zerolog.Logger,
) AdmissionService {
	return &admissionServiceImpl{
		offerings:   offerings,
		enrollments: enrollments,
		windows:     windows,
		writer:      writer,
		locks:       keylock.New(),
		lockWait:    lockWait,
		now:         time.Now,
		logger:      logger,
	}
}

// Admit runs the admission protocol for one student and one offering.
//
// A rejection is a normal decision, returned with a nil error. The error is
// non-nil only when no decision could be made: unknown offering or student,
// lock timeout, or a storage fault. Until the enrollment insert nothing is
// written, so a failed call can be retried as a whole.
func (s *admissionServiceImpl) Admit(ctx context.Context, studentID, offeringID int64) (models.AdmissionDecision, error) {
	// Offering and window reads are served from the shared read path; only
	// the student's held set needs exclusion.
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		s.logger.Error().Err(err).Int64("offeringId", offeringID).Msg("Failed to resolve offering")
		return models.FailedDecision(models.ReasonStorageError), fmt.Errorf("error resolving offering: %w", err)
	}
	if offering == nil || !offering.IsOpen {
		return models.FailedDecision(models.ReasonCourseNotFound), apperrors.ErrOfferingNotFound
	}

	window, err := s.windows.GetByTerm(ctx, offering.AcademicTerm)
	if err != nil {
		s.logger.Error().Err(err).Str("term", offering.AcademicTerm).Msg("Failed to resolve registration window")
		return models.FailedDecision(models.ReasonStorageError), fmt.Errorf("error resolving registration window: %w", err)
	}
	// No configured window means registration is closed for the term.
	if window == nil || !window.Contains(s.now()) {
		return models.RejectedDecision(models.ReasonWindowClosed), nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()
	release, err := s.locks.Acquire(lockCtx, studentID)
	if err != nil {
		s.logger.Warn().
			Int64("studentId", studentID).
			Int64("offeringId", offeringID).
			Dur("lockWait", s.lockWait).
			Msg("Admission lock not acquired in time")
		return models.FailedDecision(models.ReasonLockTimeout), apperrors.ErrLockTimeout
	}
	defer release()

	held, err := s.enrollments.ListActiveJoined(ctx, studentID, offering.AcademicTerm)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to load held enrollments")
		return models.FailedDecision(models.ReasonStorageError), fmt.Errorf("error loading enrollments: %w", err)
	}

	for _, h := range held {
		if h.CourseOfferingID == offering.ID {
			return models.RejectedDecision(models.ReasonAlreadyEnrolled), nil
		}
	}

	heldOfferings := make([]models.CourseOffering, 0, len(held))
	for _, h := range held {
		if h.Offering != nil {
			heldOfferings = append(heldOfferings, *h.Offering)
		}
	}
	if result := models.DetectConflict(*offering, heldOfferings); result.HasConflict() {
		return models.ConflictDecision(result), nil
	}

	// Single commit point. The partial unique indexes turn a race lost to
	// another process into a rejection instead of a duplicate row.
	enrollment := &models.Enrollment{
		StudentID:        studentID,
		CourseOfferingID: offering.ID,
		SubjectCode:      offering.SubjectCode,
		AcademicTerm:     offering.AcademicTerm,
	}
	if err := s.writer.CreateActive(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyEnrolled):
			return models.RejectedDecision(models.ReasonAlreadyEnrolled), nil
		case errors.Is(err, apperrors.ErrScheduleConflict):
			return models.RejectedDecision(models.ReasonSameSubjectSection), nil
		case errors.Is(err, apperrors.ErrStudentNotFound), errors.Is(err, apperrors.ErrOfferingNotFound):
			return models.FailedDecision(models.ReasonStorageError), err
		}
		s.logger.Error().Err(err).
			Int64("studentId", studentID).
			Int64("offeringId", offering.ID).
			Msg("Failed to persist enrollment")
		return models.FailedDecision(models.ReasonStorageError), fmt.Errorf("error creating enrollment: %w", err)
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("offeringId", offering.ID).
		Int64("enrollmentId", enrollment.ID).
		Str("subjectCode", offering.SubjectCode).
		Str("term", offering.AcademicTerm).
		Msg("Enrollment accepted")

	return models.AcceptedDecision(enrollment.ID), nil
}
