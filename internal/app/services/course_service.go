package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// DeletePolicy controls whether referenced courses may be deleted.
type DeletePolicy string

const (
	DeleteRefuseIfReferenced DeletePolicy = "refuse_if_referenced"
	DeleteAllow              DeletePolicy = "allow"
)

// ConflictScope controls which courses take part in the schedule overlap check.
type ConflictScope string

const (
	// ConflictScopeGlobal compares against every course on the same day.
	ConflictScopeGlobal ConflictScope = "global"
	// ConflictScopeInstructor only compares courses taught by the same instructor.
	ConflictScopeInstructor ConflictScope = "instructor"
)

// CourseReferences reports whether any enrollment points at a course.
// The enrollment store satisfies it when both live in one process.
type CourseReferences interface {
	ExistsByCourse(ctx context.Context, courseID string) (bool, error)
}

// CourseOptions tunes the course service policies.
type CourseOptions struct {
	DeletePolicy  DeletePolicy
	ConflictScope ConflictScope
	// References is optional. Without it the delete guard falls back to the seat counter.
	References CourseReferences
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, update *models.Course) (*models.Course, error)
	UpdateEnrolled(ctx context.Context, id string, enrolled int) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCoursePage(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error)
	GetAvailableCourses(ctx context.Context) ([]*models.Course, error)
	SearchCourses(ctx context.Context, keyword string, page, size int) (*dto.PaginatedResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseStore
	opts       CourseOptions
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseStore, opts CourseOptions, logger zerolog.Logger) CourseService {
	if opts.DeletePolicy == "" {
		opts.DeletePolicy = DeleteRefuseIfReferenced
	}
	if opts.ConflictScope == "" {
		opts.ConflictScope = ConflictScopeGlobal
	}
	return &courseServiceImpl{
		courseRepo: courseRepo,
		opts:       opts,
		logger:     logger,
	}
}

// checkScheduleConflict fails when another course occupies an intersecting slot.
// excludeID skips the course being updated.
func (s *courseServiceImpl) checkScheduleConflict(ctx context.Context, course *models.Course, excludeID string) error {
	instructorID := ""
	if s.opts.ConflictScope == ConflictScopeInstructor {
		instructorID = course.Instructor.ID
	}

	conflicting, err := s.courseRepo.FindConflicting(ctx, course.Schedule, instructorID)
	if err != nil {
		return fmt.Errorf("error checking schedule conflicts: %w", err)
	}

	for _, other := range conflicting {
		if other.ID == excludeID {
			continue
		}
		return apperrors.NewConflictError(fmt.Sprintf(
			"schedule conflict with course %s at %s %s-%s",
			other.Code, other.Schedule.DayOfWeek, other.Schedule.StartTime, other.Schedule.EndTime,
		))
	}
	return nil
}

// CreateCourse validates and stores a new course with no seats taken
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := models.ValidateCourse(course); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.ExistsByCode(ctx, course.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseCodeExists, course.Code)
	}

	if err := s.checkScheduleConflict(ctx, course, ""); err != nil {
		return nil, err
	}

	course.Enrolled = 0
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseCodeExists, course.Code)
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseId", course.ID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces title, instructor, schedule and capacity of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, update *models.Course) (*models.Course, error) {
	existing, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Code != "" && update.Code != existing.Code {
		return nil, fmt.Errorf("%w (original: %s)", apperrors.ErrCourseCodeImmutable, existing.Code)
	}
	if update.Capacity <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("course capacity must be positive: %d", update.Capacity))
	}

	merged := *existing
	merged.Title = update.Title
	merged.Instructor = update.Instructor
	merged.Schedule = update.Schedule
	merged.Capacity = update.Capacity
	if err := models.ValidateCourse(&merged); err != nil {
		return nil, err
	}

	if err := s.checkScheduleConflict(ctx, &merged, existing.ID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, &merged); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return &merged, nil
}

// UpdateEnrolled overwrites the seat counter. It is the only path that changes it.
func (s *courseServiceImpl) UpdateEnrolled(ctx context.Context, id string, enrolled int) (*models.Course, error) {
	if enrolled < 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("enrolled count cannot be negative: %d", enrolled))
	}

	if err := s.courseRepo.UpdateEnrolled(ctx, id, enrolled); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating enrolled count: %w", err)
	}

	s.logger.Debug().Str("courseId", id).Int("enrolled", enrolled).Msg("Seat counter updated")
	return s.GetCourseByID(ctx, id)
}

// DeleteCourse removes a course, honouring the configured delete policy
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if s.opts.DeletePolicy == DeleteRefuseIfReferenced {
		referenced := course.Enrolled > 0
		if s.opts.References != nil {
			referenced, err = s.opts.References.ExistsByCourse(ctx, id)
			if err != nil {
				return fmt.Errorf("error checking course references: %w", err)
			}
		}
		if referenced {
			return apperrors.ErrCourseHasEnrollment
		}
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Str("courseId", id).Str("code", course.Code).Msg("Course deleted")
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetCourseByCode retrieves a course by code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.courseRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, code)
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses sorted by code
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCoursePage retrieves one page of courses sorted by code
func (s *courseServiceImpl) GetCoursePage(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	page, size = helpers.NormalizePage(page, size)
	courses, total, err := s.courseRepo.ListPage(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course page: %w", err)
	}
	return &dto.PaginatedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// GetCoursesByInstructor retrieves the courses of one instructor
func (s *courseServiceImpl) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor courses: %w", err)
	}
	return courses, nil
}

// GetAvailableCourses retrieves courses with a free seat
func (s *courseServiceImpl) GetAvailableCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving available courses: %w", err)
	}
	return courses, nil
}

// SearchCourses pages through courses whose title contains keyword
func (s *courseServiceImpl) SearchCourses(ctx context.Context, keyword string, page, size int) (*dto.PaginatedResponse, error) {
	page, size = helpers.NormalizePage(page, size)
	courses, total, err := s.courseRepo.SearchByTitle(ctx, keyword, page, size)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return &dto.PaginatedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}
