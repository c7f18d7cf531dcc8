package services

import (
	"context"
	"fmt"

	"github.com/derya/retakereg/internal/app/models"
	"github.com/derya/retakereg/internal/app/models/dto"
	"github.com/derya/retakereg/internal/app/repositories"
	"github.com/derya/retakereg/internal/pkg/apperrors"
	"github.com/derya/retakereg/internal/pkg/validation"
)

// RequirementService defines the interface for required-course operations
type RequirementService interface {
	CreateRequirement(ctx context.Context, req *dto.CreateRequirementRequest) (*dto.RequirementResponse, error)
	GetStudentRequirements(ctx context.Context, studentID int64, term *string) (*dto.RequirementListResponse, error)
	DeleteRequirement(ctx context.Context, id int64) error
}

// requirementServiceImpl implements RequirementService
type requirementServiceImpl struct {
	requirementRepo *repositories.RequirementRepository
	studentRepo     *repositories.StudentRepository
	enrollmentRepo  *repositories.EnrollmentRepository
}

// NewRequirementService creates a new RequirementService
func NewRequirementService(
	requirementRepo *repositories.RequirementRepository,
	studentRepo *repositories.StudentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
) RequirementService {
	return &requirementServiceImpl{
		requirementRepo: requirementRepo,
		studentRepo:     studentRepo,
		enrollmentRepo:  enrollmentRepo,
	}
}

// CreateRequirement records a subject a student must retake in a term.
func (s *requirementServiceImpl) CreateRequirement(ctx context.Context, req *dto.CreateRequirementRequest) (*dto.RequirementResponse, error) {
	if !validation.CompiledPatterns.SubjectCode.MatchString(req.SubjectCode) {
		return nil, fmt.Errorf("%w: subjectCode must look like MATH101", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.AcademicTerm.MatchString(req.AcademicTerm) {
		return nil, fmt.Errorf("%w: academicTerm must look like 113-1", apperrors.ErrValidationFailed)
	}

	requirement := &models.RequiredCourse{
		StudentID:    req.StudentID,
		SubjectCode:  req.SubjectCode,
		SubjectName:  req.SubjectName,
		AcademicTerm: req.AcademicTerm,
		Note:         req.Note,
	}

	if err := s.requirementRepo.Create(ctx, requirement); err != nil {
		return nil, err
	}

	resp := dto.FromRequiredCourse(*requirement)
	return &resp, nil
}

// GetStudentRequirements retrieves a student's required courses and marks
// each one satisfied when an active enrollment already covers the subject in
// that term.
func (s *requirementServiceImpl) GetStudentRequirements(ctx context.Context, studentID int64, term *string) (*dto.RequirementListResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	requirements, err := s.requirementRepo.ListByStudent(ctx, studentID, term)
	if err != nil {
		return nil, fmt.Errorf("error listing required courses: %w", err)
	}

	activeStatus := models.EnrollmentActive
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID, nil, &activeStatus)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	covered := make(map[string]struct{}, len(enrollments))
	for _, e := range enrollments {
		covered[e.SubjectCode+"|"+e.AcademicTerm] = struct{}{}
	}

	responses := make([]dto.RequirementResponse, 0, len(requirements))
	for _, requirement := range requirements {
		resp := dto.FromRequiredCourse(requirement)
		_, ok := covered[requirement.SubjectCode+"|"+requirement.AcademicTerm]
		resp.Satisfied = &ok
		responses = append(responses, resp)
	}

	return &dto.RequirementListResponse{Requirements: responses}, nil
}

// DeleteRequirement removes a required-course record.
func (s *requirementServiceImpl) DeleteRequirement(ctx context.Context, id int64) error {
	return s.requirementRepo.Delete(ctx, id)
}
