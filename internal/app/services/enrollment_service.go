package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// CourseDirectory is how the enrollment workflow sees the catalog. It is either the
// in-process course service or an HTTP client for a remote catalog.
//
// GetCourse must return an error matching apperrors.ErrResourceNotFound for unknown
// courses and apperrors.ErrUnavailable when the catalog cannot be reached.
type CourseDirectory interface {
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	SetEnrolled(ctx context.Context, courseID string, enrolled int) error
}

// SeatMode selects where the capacity check takes the number of taken seats from.
type SeatMode string

const (
	// SeatsDerived counts ACTIVE enrollments and writes the recount back to the catalog.
	SeatsDerived SeatMode = "derived"
	// SeatsCounter trusts the catalog's enrolled counter and moves it by one.
	SeatsCounter SeatMode = "counter"
)

// EnrollmentOptions tunes the enrollment workflow.
type EnrollmentOptions struct {
	SeatMode SeatMode
	// AllowReenroll lets a student enroll again after dropping the same course.
	AllowReenroll bool
}

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, studentNumber string) (*models.Enrollment, error)
	Drop(ctx context.Context, enrollmentID string) error
	GetEnrollmentByID(ctx context.Context, id string) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error)
	GetEnrollmentsByStudent(ctx context.Context, studentNumber string) ([]*models.Enrollment, error)
	GetEnrollmentsByCourseAndStatus(ctx context.Context, courseID, status string) ([]*models.Enrollment, error)
	GetEnrollmentsByStudentAndStatus(ctx context.Context, studentNumber, status string) ([]*models.Enrollment, error)
	CountActiveByCourse(ctx context.Context, courseID string) (int64, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollmentRepo repositories.EnrollmentStore
	studentRepo    repositories.StudentStore
	courses        CourseDirectory
	opts           EnrollmentOptions
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.EnrollmentStore,
	studentRepo repositories.StudentStore,
	courses CourseDirectory,
	opts EnrollmentOptions,
	logger zerolog.Logger,
) EnrollmentService {
	if opts.SeatMode == "" {
		opts.SeatMode = SeatsDerived
	}
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courses:        courses,
		opts:           opts,
		logger:         logger,
	}
}

// requireStudent fails with NotFound when the student number is unknown.
func (s *enrollmentServiceImpl) requireStudent(ctx context.Context, studentNumber string) error {
	exists, err := s.studentRepo.ExistsByStudentNumber(ctx, studentNumber)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w with studentId: %s", apperrors.ErrStudentNotFound, studentNumber)
	}
	return nil
}

// Enroll registers a student in a course. The seat counter update that follows a
// successful insert is best effort: a failure is logged and the enrollment stands.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, courseID, studentNumber string) (*models.Enrollment, error) {
	enrollment := models.NewEnrollment(courseID, studentNumber)
	if enrollment.CourseID == "" || enrollment.StudentID == "" {
		return nil, apperrors.NewValidationError("courseId and studentId are required")
	}

	course, err := s.courses.GetCourse(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	if err := s.requireStudent(ctx, enrollment.StudentID); err != nil {
		return nil, err
	}

	duplicate, err := s.enrollmentRepo.ExistsByCourseAndStudent(ctx, course.ID, enrollment.StudentID, !s.opts.AllowReenroll)
	if err != nil {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}
	if duplicate {
		return nil, fmt.Errorf("%w: student %s already enrolled in course %s",
			apperrors.ErrDuplicateEnrollment, enrollment.StudentID, course.ID)
	}

	taken, err := s.seatsTaken(ctx, course)
	if err != nil {
		return nil, err
	}
	if taken >= course.Capacity {
		return nil, fmt.Errorf("%w: current enrolled %d, capacity %d",
			apperrors.ErrCapacityExceeded, taken, course.Capacity)
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: student %s already enrolled in course %s",
				apperrors.ErrDuplicateEnrollment, enrollment.StudentID, course.ID)
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	s.logger.Info().
		Str("enrollmentId", enrollment.ID).
		Str("courseId", course.ID).
		Str("studentId", enrollment.StudentID).
		Msg("Student enrolled")

	s.propagateSeats(ctx, enrollment, func() (int, error) {
		if s.opts.SeatMode == SeatsCounter {
			return taken + 1, nil
		}
		return s.activeCount(ctx, course.ID)
	})
	return enrollment, nil
}

// Drop marks an enrollment DROPPED. The record is kept.
func (s *enrollmentServiceImpl) Drop(ctx context.Context, enrollmentID string) error {
	enrollment, err := s.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return err
	}

	if enrollment.Status == models.EnrollmentDropped {
		return fmt.Errorf("%w: %s", apperrors.ErrEnrollmentDropped, enrollmentID)
	}

	if err := s.enrollmentRepo.UpdateStatus(ctx, enrollment.ID, models.EnrollmentDropped); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error dropping enrollment: %w", err)
	}
	enrollment.Status = models.EnrollmentDropped

	s.logger.Info().
		Str("enrollmentId", enrollment.ID).
		Str("courseId", enrollment.CourseID).
		Str("studentId", enrollment.StudentID).
		Msg("Enrollment dropped")

	s.propagateSeats(ctx, enrollment, func() (int, error) {
		if s.opts.SeatMode == SeatsCounter {
			course, err := s.courses.GetCourse(ctx, enrollment.CourseID)
			if err != nil {
				return 0, err
			}
			return max(0, course.Enrolled-1), nil
		}
		return s.activeCount(ctx, enrollment.CourseID)
	})
	return nil
}

// seatsTaken is the number compared against capacity.
func (s *enrollmentServiceImpl) seatsTaken(ctx context.Context, course *models.Course) (int, error) {
	if s.opts.SeatMode == SeatsCounter {
		return course.Enrolled, nil
	}
	return s.activeCount(ctx, course.ID)
}

func (s *enrollmentServiceImpl) activeCount(ctx context.Context, courseID string) (int, error) {
	count, err := s.enrollmentRepo.CountByCourseAndStatus(ctx, courseID, models.EnrollmentActive)
	if err != nil {
		return 0, fmt.Errorf("error counting active enrollments: %w", err)
	}
	return int(count), nil
}

// propagateSeats pushes a new seat count to the catalog. Failures are logged only.
func (s *enrollmentServiceImpl) propagateSeats(ctx context.Context, enrollment *models.Enrollment, next func() (int, error)) {
	enrolled, err := next()
	if err == nil {
		err = s.courses.SetEnrolled(ctx, enrollment.CourseID, enrolled)
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Str("courseId", enrollment.CourseID).
			Str("enrollmentId", enrollment.ID).
			Msg("Failed to update course enrolled count")
		return
	}
	s.logger.Debug().
		Str("courseId", enrollment.CourseID).
		Int("enrolled", enrolled).
		Msg("Course enrolled count updated")
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrEnrollmentNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// GetAllEnrollments retrieves every enrollment
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollmentsByCourse retrieves the enrollments of an existing course
func (s *enrollmentServiceImpl) GetEnrollmentsByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	if _, err := s.courses.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollmentsByStudent retrieves the enrollments of an existing student
func (s *enrollmentServiceImpl) GetEnrollmentsByStudent(ctx context.Context, studentNumber string) ([]*models.Enrollment, error) {
	if err := s.requireStudent(ctx, studentNumber); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentNumber)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	return enrollments, nil
}

func parseStatus(raw string) (models.EnrollmentStatus, error) {
	status, ok := models.ParseEnrollmentStatus(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidEnrollStatus, raw)
	}
	return status, nil
}

// GetEnrollmentsByCourseAndStatus filters a course's enrollments by status
func (s *enrollmentServiceImpl) GetEnrollmentsByCourseAndStatus(ctx context.Context, courseID, status string) ([]*models.Enrollment, error) {
	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	if _, err := s.courses.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByCourseAndStatus(ctx, courseID, parsed)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollmentsByStudentAndStatus filters a student's enrollments by status
func (s *enrollmentServiceImpl) GetEnrollmentsByStudentAndStatus(ctx context.Context, studentNumber, status string) ([]*models.Enrollment, error) {
	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	if err := s.requireStudent(ctx, studentNumber); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.ListByStudentAndStatus(ctx, studentNumber, parsed)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	return enrollments, nil
}

// CountActiveByCourse counts ACTIVE enrollments of an existing course
func (s *enrollmentServiceImpl) CountActiveByCourse(ctx context.Context, courseID string) (int64, error) {
	if _, err := s.courses.GetCourse(ctx, courseID); err != nil {
		return 0, err
	}
	count, err := s.enrollmentRepo.CountByCourseAndStatus(ctx, courseID, models.EnrollmentActive)
	if err != nil {
		return 0, fmt.Errorf("error counting active enrollments: %w", err)
	}
	return count, nil
}

// localCourseDirectory serves the workflow from the in-process course service.
type localCourseDirectory struct {
	courses CourseService
}

// NewLocalCourseDirectory adapts a CourseService to the CourseDirectory contract.
func NewLocalCourseDirectory(courses CourseService) CourseDirectory {
	return &localCourseDirectory{courses: courses}
}

func (d *localCourseDirectory) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	return d.courses.GetCourseByID(ctx, courseID)
}

func (d *localCourseDirectory) SetEnrolled(ctx context.Context, courseID string, enrolled int) error {
	_, err := d.courses.UpdateEnrolled(ctx, courseID, enrolled)
	return err
}
