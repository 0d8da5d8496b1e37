package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, update *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetStudentByNumber(ctx context.Context, studentNumber string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsByMajor(ctx context.Context, major string, page, size int) (*dto.PaginatedResponse, error)
	GetStudentsByGrade(ctx context.Context, grade int, page, size int) (*dto.PaginatedResponse, error)
	GetStudentsByMajorAndGrade(ctx context.Context, major string, grade int) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo    repositories.StudentStore
	enrollmentRepo repositories.EnrollmentStore
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo repositories.StudentStore,
	enrollmentRepo repositories.EnrollmentStore,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// translateDuplicate maps a store uniqueness error onto the matching conflict.
func translateDuplicate(err error, student *models.Student) error {
	switch {
	case strings.Contains(err.Error(), dberrors.StudentNumberUnique):
		return fmt.Errorf("%w: %s", apperrors.ErrStudentNumberExists, student.StudentID)
	case strings.Contains(err.Error(), dberrors.StudentEmailUnique):
		return fmt.Errorf("%w: %s", apperrors.ErrStudentEmailExists, student.Email)
	default:
		return apperrors.NewConflictError(err.Error())
	}
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := models.ValidateStudent(student); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByStudentNumber(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNumberExists, student.StudentID)
	}

	exists, err = s.studentRepo.ExistsByEmail(ctx, student.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentEmailExists, student.Email)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, translateDuplicate(err, student)
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Str("id", student.ID).Str("studentId", student.StudentID).Msg("Student created")
	return student, nil
}

// UpdateStudent replaces name, major, grade and email of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, update *models.Student) (*models.Student, error) {
	existing, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.StudentID != existing.StudentID {
		return nil, fmt.Errorf("%w (original: %s)", apperrors.ErrStudentNumberImmutable, existing.StudentID)
	}

	merged := *existing
	merged.Name = update.Name
	merged.Major = update.Major
	merged.Grade = update.Grade
	merged.Email = update.Email
	if err := models.ValidateStudent(&merged); err != nil {
		return nil, err
	}

	if merged.Email != existing.Email {
		owner, err := s.studentRepo.FindByEmail(ctx, merged.Email)
		switch {
		case err == nil && owner.ID != existing.ID:
			return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentEmailExists, merged.Email)
		case err != nil && !errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("error checking student email: %w", err)
		}
	}

	if err := s.studentRepo.Update(ctx, &merged); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrStudentNotFound
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, translateDuplicate(err, &merged)
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return &merged, nil
}

// DeleteStudent removes a student that has no enrollment of any status
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := s.enrollmentRepo.ExistsByStudent(ctx, student.StudentID)
	if err != nil {
		return fmt.Errorf("error checking student enrollments: %w", err)
	}
	if referenced {
		return apperrors.ErrStudentHasEnrollments
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.logger.Info().Str("id", id).Str("studentId", student.StudentID).Msg("Student deleted")
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetStudentByNumber retrieves a student by student number
func (s *studentServiceImpl) GetStudentByNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	student, err := s.studentRepo.FindByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentNumber)
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentsByMajor retrieves one page of students in a major
func (s *studentServiceImpl) GetStudentsByMajor(ctx context.Context, major string, page, size int) (*dto.PaginatedResponse, error) {
	page, size = helpers.NormalizePage(page, size)
	students, total, err := s.studentRepo.ListByMajor(ctx, major, page, size)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by major: %w", err)
	}
	return &dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetStudentsByGrade retrieves one page of students in a grade
func (s *studentServiceImpl) GetStudentsByGrade(ctx context.Context, grade int, page, size int) (*dto.PaginatedResponse, error) {
	page, size = helpers.NormalizePage(page, size)
	students, total, err := s.studentRepo.ListByGrade(ctx, grade, page, size)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by grade: %w", err)
	}
	return &dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetStudentsByMajorAndGrade retrieves students matching both filters
func (s *studentServiceImpl) GetStudentsByMajorAndGrade(ctx context.Context, major string, grade int) ([]*models.Student, error) {
	students, err := s.studentRepo.ListByMajorAndGrade(ctx, major, grade)
	if err != nil {
		return nil, fmt.Errorf("error filtering students: %w", err)
	}
	return students, nil
}
