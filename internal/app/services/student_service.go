package services

import (
	"context"
	"fmt"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/helpers"
	"github.com/derya/retakereg/internal/pkg/validation"
)

// StudentService defines the interface for roster operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context, filter *dto.StudentFilterRequest) (*dto.StudentListResponse, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// CreateStudent adds a student to the roster.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	numberValid := validation.NewStringValidation(req.StudentNumber).
		WithRequired(true).
		WithPattern(validation.CompiledPatterns.StudentNumber).
		Validate()
	if !numberValid {
		return nil, fmt.Errorf("%w: studentNumber must look like B11109001", apperrors.ErrValidationFailed)
	}

	nameValid := validation.NewStringValidation(req.FullName).
		WithRequired(true).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameValid {
		return nil, fmt.Errorf("%w: fullName must be 2-100 characters", apperrors.ErrValidationFailed)
	}

	student := &models.Student{
		StudentNumber: req.StudentNumber,
		FullName:      req.FullName,
		Email:         req.Email,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.FromStudent(*student)
	return &resp, nil
}

// GetStudentByID retrieves one roster entry.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	resp := dto.FromStudent(*student)
	return &resp, nil
}

// GetAllStudents retrieves roster entries with search and pagination.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, filter *dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	students, total, err := s.studentRepo.GetAll(ctx, filter.Search, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.FromStudent(student))
	}

	return &dto.StudentListResponse{
		Students:       responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}
