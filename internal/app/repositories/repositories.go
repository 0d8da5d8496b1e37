package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus/internal/app/models"
)

// Store-level errors. Services translate them into apperrors.
var (
	// ErrNotFound is returned when no row matches the lookup key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
	// The wrapped message names the constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)

// CourseStore persists courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	// Update writes title, instructor, schedule and capacity. Code, enrolled and createdAt are untouched.
	Update(ctx context.Context, course *models.Course) error
	UpdateEnrolled(ctx context.Context, id string, enrolled int) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	ListPage(ctx context.Context, page, size int) ([]*models.Course, int64, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error)
	ListAvailable(ctx context.Context) ([]*models.Course, error)
	SearchByTitle(ctx context.Context, keyword string, page, size int) ([]*models.Course, int64, error)
	// FindConflicting returns courses on the same day whose time range intersects slot.
	// A non-empty instructorID restricts the search to that instructor.
	FindConflicting(ctx context.Context, slot models.ScheduleSlot, instructorID string) ([]*models.Course, error)
}

// StudentStore persists students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	// Update writes name, major, grade and email.
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListByMajor(ctx context.Context, major string, page, size int) ([]*models.Student, int64, error)
	ListByGrade(ctx context.Context, grade int, page, size int) ([]*models.Student, int64, error)
	ListByMajorAndGrade(ctx context.Context, major string, grade int) ([]*models.Student, error)
}

// EnrollmentStore persists enrollments.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Enrollment, error)
	ListAll(ctx context.Context) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error)
	ListByStudent(ctx context.Context, studentNumber string) ([]*models.Enrollment, error)
	ListByCourseAndStatus(ctx context.Context, courseID string, status models.EnrollmentStatus) ([]*models.Enrollment, error)
	ListByStudentAndStatus(ctx context.Context, studentNumber string, status models.EnrollmentStatus) ([]*models.Enrollment, error)
	// ExistsByCourseAndStudent ignores DROPPED rows unless includeDropped is set.
	ExistsByCourseAndStudent(ctx context.Context, courseID, studentNumber string, includeDropped bool) (bool, error)
	ExistsByStudent(ctx context.Context, studentNumber string) (bool, error)
	ExistsByCourse(ctx context.Context, courseID string) (bool, error)
	CountByCourseAndStatus(ctx context.Context, courseID string, status models.EnrollmentStatus) (int64, error)
	// CountActiveByCourseAll returns the ACTIVE count for every course that has any enrollment row.
	CountActiveByCourseAll(ctx context.Context) (map[string]int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Courses     CourseStore
	Students    StudentStore
	Enrollments EnrollmentStore
}

// NewRepositories initializes the Postgres-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Courses:     NewCourseRepository(db),
		Students:    NewStudentRepository(db),
		Enrollments: NewEnrollmentRepository(db),
	}
}

// statementBuilder is shared by every Postgres repository.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
