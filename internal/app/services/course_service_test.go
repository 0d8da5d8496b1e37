package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories/memory"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

func newTestCourse(code, day, start, end string, capacity int) *models.Course {
	return models.NewCourse(code, "Course "+code,
		models.Instructor{ID: "T001", Name: "Ada Lovelace", Email: "ada@campus.edu"},
		models.ScheduleSlot{DayOfWeek: day, StartTime: start, EndTime: end, ExpectedAttendance: capacity},
		capacity,
	)
}

func newCourseService(opts CourseOptions) CourseService {
	return NewCourseService(memory.NewCourseStore(), opts, zerolog.Nop())
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{})

	course := newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30)
	course.Enrolled = 7

	created, err := svc.CreateCourse(ctx, course)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Enrolled, "a new course starts with no seats taken")

	found, err := svc.GetCourseByCode(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCreateCourseRejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{})

	_, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
	require.NoError(t, err)

	_, err = svc.CreateCourse(ctx, newTestCourse("CS101", "FRIDAY", "09:00", "11:00", 30))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeExists)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateCourseScheduleConflict(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		day      string
		start    string
		end      string
		conflict bool
	}{
		{"overlapping start", "MONDAY", "10:00", "12:00", true},
		{"contained", "MONDAY", "09:30", "10:30", true},
		{"touching end is allowed", "MONDAY", "11:00", "12:00", false},
		{"touching start is allowed", "MONDAY", "08:00", "09:00", false},
		{"other day", "TUESDAY", "09:00", "11:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newCourseService(CourseOptions{})
			_, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
			require.NoError(t, err)

			_, err = svc.CreateCourse(ctx, newTestCourse("CS102", tt.day, tt.start, tt.end, 30))
			if tt.conflict {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrConflict)
				assert.Contains(t, err.Error(), "CS101")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConflictScopeInstructor(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{ConflictScope: ConflictScopeInstructor})

	_, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
	require.NoError(t, err)

	other := newTestCourse("MATH110", "MONDAY", "09:00", "11:00", 30)
	other.Instructor = models.Instructor{ID: "T002", Name: "Emmy Noether", Email: "emmy@campus.edu"}
	_, err = svc.CreateCourse(ctx, other)
	require.NoError(t, err, "a different instructor may use the same slot")

	_, err = svc.CreateCourse(ctx, newTestCourse("CS102", "MONDAY", "10:00", "12:00", 30))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateCourse(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{})

	created, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
	require.NoError(t, err)
	_, err = svc.UpdateEnrolled(ctx, created.ID, 5)
	require.NoError(t, err)

	t.Run("code is immutable", func(t *testing.T) {
		update := newTestCourse("CS999", "MONDAY", "09:00", "11:00", 30)
		_, err := svc.UpdateCourse(ctx, created.ID, update)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCourseCodeImmutable)
		assert.Contains(t, err.Error(), "CS101")
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		update := newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30)
		update.Capacity = 0
		_, err := svc.UpdateCourse(ctx, created.ID, update)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing course", func(t *testing.T) {
		_, err := svc.UpdateCourse(ctx, "missing", newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("own slot does not conflict and enrolled is preserved", func(t *testing.T) {
		update := newTestCourse("CS101", "MONDAY", "09:30", "11:30", 45)
		update.Title = "Renamed"
		update.Enrolled = 40

		updated, err := svc.UpdateCourse(ctx, created.ID, update)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 45, updated.Capacity)
		assert.Equal(t, 5, updated.Enrolled)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})
}

func TestUpdateEnrolled(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{})

	created, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 2))
	require.NoError(t, err)

	updated, err := svc.UpdateEnrolled(ctx, created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Enrolled)

	available, err := svc.GetAvailableCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = svc.UpdateEnrolled(ctx, created.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateEnrolled(ctx, "missing", 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

type fakeReferences map[string]bool

func (f fakeReferences) ExistsByCourse(_ context.Context, courseID string) (bool, error) {
	return f[courseID], nil
}

func TestDeleteCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses when references exist", func(t *testing.T) {
		refs := fakeReferences{}
		svc := newCourseService(CourseOptions{References: refs})
		created, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
		require.NoError(t, err)
		refs[created.ID] = true

		err = svc.DeleteCourse(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrCourseHasEnrollment)
	})

	t.Run("falls back to the seat counter", func(t *testing.T) {
		svc := newCourseService(CourseOptions{})
		created, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
		require.NoError(t, err)
		_, err = svc.UpdateEnrolled(ctx, created.ID, 1)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.DeleteCourse(ctx, created.ID), apperrors.ErrCourseHasEnrollment)

		_, err = svc.UpdateEnrolled(ctx, created.ID, 0)
		require.NoError(t, err)
		require.NoError(t, svc.DeleteCourse(ctx, created.ID))

		_, err = svc.GetCourseByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("allow policy skips the guard", func(t *testing.T) {
		svc := newCourseService(CourseOptions{DeletePolicy: DeleteAllow, References: fakeReferences{}})
		created, err := svc.CreateCourse(ctx, newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30))
		require.NoError(t, err)
		_, err = svc.UpdateEnrolled(ctx, created.ID, 3)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteCourse(ctx, created.ID))
	})

	t.Run("missing course", func(t *testing.T) {
		svc := newCourseService(CourseOptions{})
		assert.ErrorIs(t, svc.DeleteCourse(ctx, "missing"), apperrors.ErrResourceNotFound)
	})
}

func TestCourseQueries(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(CourseOptions{})

	for _, c := range []*models.Course{
		newTestCourse("CS201", "TUESDAY", "09:00", "11:00", 30),
		newTestCourse("CS101", "MONDAY", "09:00", "11:00", 30),
		newTestCourse("MATH110", "WEDNESDAY", "09:00", "11:00", 30),
	} {
		_, err := svc.CreateCourse(ctx, c)
		require.NoError(t, err)
	}

	all, err := svc.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"CS101", "CS201", "MATH110"}, []string{all[0].Code, all[1].Code, all[2].Code})

	page, err := svc.GetCoursePage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Pagination.TotalItems)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Len(t, page.Items, 1)

	byInstructor, err := svc.GetCoursesByInstructor(ctx, "T001")
	require.NoError(t, err)
	assert.Len(t, byInstructor, 3)

	search, err := svc.SearchCourses(ctx, "cs", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), search.Pagination.TotalItems)
}
