package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/cache"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/helpers"
	"github.com/derya/retakereg/internal/pkg/validation"
)

// OfferingService defines the interface for course offering operations
type OfferingService interface {
	CreateOffering(ctx context.Context, req *dto.CreateOfferingRequest) (*dto.OfferingResponse, error)
	GetOfferingByID(ctx context.Context, id int64) (*dto.OfferingResponse, error)
	GetAllOfferings(ctx context.Context, filter *dto.OfferingFilterRequest) (*dto.OfferingListResponse, error)
	UpdateOffering(ctx context.Context, id int64, req *dto.UpdateOfferingRequest) (*dto.OfferingResponse, error)
	DeleteOffering(ctx context.Context, id int64) error
}

// offeringServiceImpl implements OfferingService
type offeringServiceImpl struct {
	offeringRepo *repositories.OfferingRepository
	cache        *cache.RedisCache
}

// NewOfferingService creates a new OfferingService. The cache may be nil.
func NewOfferingService(offeringRepo *repositories.OfferingRepository, redisCache *cache.RedisCache) OfferingService {
	return &offeringServiceImpl{
		offeringRepo: offeringRepo,
		cache:        redisCache,
	}
}

// CreateOffering creates a course offering with its time slots.
func (s *offeringServiceImpl) CreateOffering(ctx context.Context, req *dto.CreateOfferingRequest) (*dto.OfferingResponse, error) {
	if !validation.CompiledPatterns.AcademicTerm.MatchString(req.AcademicTerm) {
		return nil, fmt.Errorf("%w: academicTerm must look like 113-1", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.SubjectCode.MatchString(req.SubjectCode) {
		return nil, fmt.Errorf("%w: subjectCode must look like MATH101", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.SectionKey) == "" {
		return nil, fmt.Errorf("%w: sectionKey cannot be empty", apperrors.ErrValidationFailed)
	}

	slots, err := buildTimeSlots(req.TimeSlots)
	if err != nil {
		return nil, err
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	offering := &models.CourseOffering{
		AcademicTerm: req.AcademicTerm,
		SubjectCode:  req.SubjectCode,
		SectionKey:   strings.TrimSpace(req.SectionKey),
		Title:        strings.TrimSpace(req.Title),
		Instructor:   strings.TrimSpace(req.Instructor),
		Credits:      req.Credits,
		IsOpen:       isOpen,
		TimeSlots:    slots,
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, err
	}

	resp := dto.FromCourseOffering(offering)
	return &resp, nil
}

// GetOfferingByID retrieves an offering, through the cache when available.
func (s *offeringServiceImpl) GetOfferingByID(ctx context.Context, id int64) (*dto.OfferingResponse, error) {
	var cached models.CourseOffering
	if err := s.cache.GetJSON(ctx, cache.OfferingKey(id), &cached); err == nil {
		resp := dto.FromCourseOffering(&cached)
		return &resp, nil
	}

	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting offering: %w", err)
	}
	if offering == nil {
		return nil, apperrors.ErrOfferingNotFound
	}

	// Best effort; a cache write failure must not fail the read.
	_ = s.cache.SetJSON(ctx, cache.OfferingKey(id), offering)

	resp := dto.FromCourseOffering(offering)
	return &resp, nil
}

// GetAllOfferings retrieves offerings with filtering and pagination.
func (s *offeringServiceImpl) GetAllOfferings(ctx context.Context, filter *dto.OfferingFilterRequest) (*dto.OfferingListResponse, error) {
	offerings, total, err := s.offeringRepo.GetAll(ctx,
		filter.AcademicTerm, filter.SubjectCode, filter.OpenOnly, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("error getting offerings: %w", err)
	}

	responses := make([]dto.OfferingResponse, 0, len(offerings))
	for i := range offerings {
		responses = append(responses, dto.FromCourseOffering(&offerings[i]))
	}

	return &dto.OfferingListResponse{
		Offerings:      responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateOffering applies a partial update and optionally replaces the
// schedule.
func (s *offeringServiceImpl) UpdateOffering(ctx context.Context, id int64, req *dto.UpdateOfferingRequest) (*dto.OfferingResponse, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting offering: %w", err)
	}
	if offering == nil {
		return nil, apperrors.ErrOfferingNotFound
	}

	if req.Title != nil {
		offering.Title = strings.TrimSpace(*req.Title)
	}
	if req.Instructor != nil {
		offering.Instructor = strings.TrimSpace(*req.Instructor)
	}
	if req.Credits != nil {
		offering.Credits = *req.Credits
	}
	if req.IsOpen != nil {
		offering.IsOpen = *req.IsOpen
	}

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, err
	}

	if req.TimeSlots != nil {
		slots, err := buildTimeSlots(req.TimeSlots)
		if err != nil {
			return nil, err
		}
		if err := s.offeringRepo.ReplaceTimeSlots(ctx, id, slots); err != nil {
			return nil, err
		}
		offering.TimeSlots = slots
	}

	_ = s.cache.Delete(ctx, cache.OfferingKey(id))

	resp := dto.FromCourseOffering(offering)
	return &resp, nil
}

// DeleteOffering removes an offering that has no enrollment records.
func (s *offeringServiceImpl) DeleteOffering(ctx context.Context, id int64) error {
	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.OfferingKey(id))
	return nil
}

// buildTimeSlots parses and validates request slots.
func buildTimeSlots(reqs []dto.TimeSlotRequest) ([]models.TimeSlot, error) {
	slots := make([]models.TimeSlot, 0, len(reqs))
	for i, r := range reqs {
		slot, err := r.ToModel()
		if err != nil {
			return nil, fmt.Errorf("%w: timeSlots[%d]: %s", apperrors.ErrInvalidTimeSlot, i, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
