package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/dberrors"
)

func course(code, day string) *models.Course {
	return models.NewCourse(code, "Course "+code,
		models.Instructor{ID: "T1", Name: "Ada", Email: "ada@campus.edu"},
		models.ScheduleSlot{DayOfWeek: day, StartTime: "09:00", EndTime: "10:00", ExpectedAttendance: 10},
		10)
}

func TestCourseStore(t *testing.T) {
	ctx := context.Background()
	store := NewCourseStore()

	b := course("B200", "MONDAY")
	a := course("A100", "TUESDAY")
	require.NoError(t, store.Create(ctx, b))
	require.NoError(t, store.Create(ctx, a))

	err := store.Create(ctx, course("A100", "FRIDAY"))
	require.ErrorIs(t, err, repositories.ErrDuplicateKey)
	assert.Contains(t, err.Error(), dberrors.CourseCodeUnique)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A100", all[0].Code, "courses are ordered by code")

	found, err := store.FindByID(ctx, a.ID)
	require.NoError(t, err)
	found.Title = "mutated"
	again, err := store.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Title, "lookups return copies")

	require.NoError(t, store.UpdateEnrolled(ctx, a.ID, 10))
	available, err := store.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "B200", available[0].Code)

	conflicting, err := store.FindConflicting(ctx, models.ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "09:30", EndTime: "11:00"}, "")
	require.NoError(t, err)
	assert.Len(t, conflicting, 1)

	conflicting, err = store.FindConflicting(ctx, models.ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "09:30", EndTime: "11:00"}, "T2")
	require.NoError(t, err)
	assert.Empty(t, conflicting)

	page, total, err := store.SearchByTitle(ctx, "COURSE", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 1)
	assert.Equal(t, "B200", page[0].Code)

	require.NoError(t, store.Delete(ctx, a.ID))
	assert.ErrorIs(t, store.Delete(ctx, a.ID), repositories.ErrNotFound)
	exists, err := store.ExistsByCode(ctx, "A100")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStudentStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewStudentStore()

	s1 := models.NewStudent("S1", "Ada", "CS", 2024, "ada@campus.edu")
	require.NoError(t, store.Create(ctx, s1))

	err := store.Create(ctx, models.NewStudent("S1", "Other", "CS", 2024, "other@campus.edu"))
	require.ErrorIs(t, err, repositories.ErrDuplicateKey)
	assert.Contains(t, err.Error(), dberrors.StudentNumberUnique)

	err = store.Create(ctx, models.NewStudent("S2", "Other", "CS", 2024, "ada@campus.edu"))
	require.ErrorIs(t, err, repositories.ErrDuplicateKey)
	assert.Contains(t, err.Error(), dberrors.StudentEmailUnique)

	s2 := models.NewStudent("S2", "Grace", "Math", 2023, "grace@campus.edu")
	require.NoError(t, store.Create(ctx, s2))
	s2.Email = "ada@campus.edu"
	assert.ErrorIs(t, store.Update(ctx, s2), repositories.ErrDuplicateKey)

	byMajor, total, err := store.ListByMajor(ctx, "CS", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, byMajor, 1)
}

func TestEnrollmentStoreLivePair(t *testing.T) {
	ctx := context.Background()
	store := NewEnrollmentStore()

	first := models.NewEnrollment("C1", "S1")
	require.NoError(t, store.Create(ctx, first))
	assert.ErrorIs(t, store.Create(ctx, models.NewEnrollment("C1", "S1")), repositories.ErrDuplicateKey)

	require.NoError(t, store.UpdateStatus(ctx, first.ID, models.EnrollmentDropped))
	second := models.NewEnrollment("C1", "S1")
	second.EnrolledAt = first.EnrolledAt.Add(time.Second)
	require.NoError(t, store.Create(ctx, second), "a dropped row does not block a new enrollment")

	assert.ErrorIs(t, store.UpdateStatus(ctx, first.ID, models.EnrollmentActive), repositories.ErrDuplicateKey,
		"reviving a dropped row must not create a second live pair")

	live, err := store.ExistsByCourseAndStudent(ctx, "C1", "S1", false)
	require.NoError(t, err)
	assert.True(t, live)

	all, err := store.ListByCourse(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID, "enrollments are ordered by enrollment time")
}

func TestCountActiveByCourseAll(t *testing.T) {
	ctx := context.Background()
	store := NewEnrollmentStore()

	require.NoError(t, store.Create(ctx, models.NewEnrollment("C1", "S1")))
	require.NoError(t, store.Create(ctx, models.NewEnrollment("C1", "S2")))
	dropped := models.NewEnrollment("C2", "S1")
	dropped.Status = models.EnrollmentDropped
	require.NoError(t, store.Create(ctx, dropped))

	counts, err := store.CountActiveByCourseAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"C1": 2, "C2": 0}, counts)

	n, err := store.CountByCourseAndStatus(ctx, "C2", models.EnrollmentDropped)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
