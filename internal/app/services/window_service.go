package services

import (
	"context"
	"fmt"
	"time"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/cache"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/validation"
)

// WindowService defines the interface for registration window operations
type WindowService interface {
	UpsertWindow(ctx context.Context, term string, req *dto.UpsertWindowRequest) (*dto.WindowResponse, error)
	GetWindow(ctx context.Context, term string) (*dto.WindowResponse, error)
	GetAllWindows(ctx context.Context) (*dto.WindowListResponse, error)
}

// windowServiceImpl implements WindowService
type windowServiceImpl struct {
	windowRepo *repositories.WindowRepository
	cache      *cache.RedisCache
}

// NewWindowService creates a new WindowService. The cache may be nil.
func NewWindowService(windowRepo *repositories.WindowRepository, redisCache *cache.RedisCache) WindowService {
	return &windowServiceImpl{
		windowRepo: windowRepo,
		cache:      redisCache,
	}
}

// UpsertWindow sets or replaces the registration window of a term. The
// latest write wins.
func (s *windowServiceImpl) UpsertWindow(ctx context.Context, term string, req *dto.UpsertWindowRequest) (*dto.WindowResponse, error) {
	if !validation.CompiledPatterns.AcademicTerm.MatchString(term) {
		return nil, fmt.Errorf("%w: academic term must look like 113-1", apperrors.ErrValidationFailed)
	}
	if req.OpensAt != nil && req.ClosesAt != nil && !req.OpensAt.Before(*req.ClosesAt) {
		return nil, fmt.Errorf("%w: opensAt must be before closesAt", apperrors.ErrValidationFailed)
	}

	window := &models.RegistrationWindow{
		AcademicTerm: term,
		OpensAt:      req.OpensAt,
		ClosesAt:     req.ClosesAt,
		SetBy:        req.SetBy,
	}

	if err := s.windowRepo.Upsert(ctx, window); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.WindowKey(term))

	resp := dto.FromRegistrationWindow(*window, time.Now())
	return &resp, nil
}

// GetWindow retrieves the window of a term, through the cache when available.
func (s *windowServiceImpl) GetWindow(ctx context.Context, term string) (*dto.WindowResponse, error) {
	var cached models.RegistrationWindow
	if err := s.cache.GetJSON(ctx, cache.WindowKey(term), &cached); err == nil {
		resp := dto.FromRegistrationWindow(cached, time.Now())
		return &resp, nil
	}

	window, err := s.windowRepo.GetByTerm(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error getting registration window: %w", err)
	}
	if window == nil {
		return nil, apperrors.ErrWindowNotFound
	}

	_ = s.cache.SetJSON(ctx, cache.WindowKey(term), window)

	resp := dto.FromRegistrationWindow(*window, time.Now())
	return &resp, nil
}

// GetAllWindows retrieves every configured window, newest term first.
func (s *windowServiceImpl) GetAllWindows(ctx context.Context) (*dto.WindowListResponse, error) {
	windows, err := s.windowRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing registration windows: %w", err)
	}

	now := time.Now()
	responses := make([]dto.WindowResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, dto.FromRegistrationWindow(w, now))
	}

	return &dto.WindowListResponse{Windows: responses}, nil
}
