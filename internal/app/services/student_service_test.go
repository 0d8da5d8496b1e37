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

func newTestStudent(number, email string) *models.Student {
	return models.NewStudent(number, "Student "+number, "Computer Science", 2024, email)
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewStudentService(repos.Students, repos.Enrollments, zerolog.Nop())

	created, err := svc.CreateStudent(ctx, newTestStudent("S1", "s1@campus.edu"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = svc.CreateStudent(ctx, newTestStudent("S1", "other@campus.edu"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)

	_, err = svc.CreateStudent(ctx, newTestStudent("S2", "s1@campus.edu"))
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)

	_, err = svc.CreateStudent(ctx, newTestStudent("S3", "not-an-email"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	found, err := svc.GetStudentByNumber(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewStudentService(repos.Students, repos.Enrollments, zerolog.Nop())

	s1, err := svc.CreateStudent(ctx, newTestStudent("S1", "s1@campus.edu"))
	require.NoError(t, err)
	_, err = svc.CreateStudent(ctx, newTestStudent("S2", "s2@campus.edu"))
	require.NoError(t, err)

	t.Run("student number is immutable", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, s1.ID, newTestStudent("S9", "s1@campus.edu"))
		assert.ErrorIs(t, err, apperrors.ErrStudentNumberImmutable)
	})

	t.Run("email taken by another student", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, s1.ID, newTestStudent("S1", "s2@campus.edu"))
		assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	})

	t.Run("updates mutable fields", func(t *testing.T) {
		update := models.NewStudent("S1", "Grace Hopper", "Mathematics", 2025, "grace@campus.edu")
		updated, err := svc.UpdateStudent(ctx, s1.ID, update)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", updated.Name)
		assert.Equal(t, "Mathematics", updated.Major)
		assert.Equal(t, 2025, updated.Grade)
		assert.Equal(t, s1.ID, updated.ID)
	})

	t.Run("missing student", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, "missing", newTestStudent("S1", "s1@campus.edu"))
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestDeleteStudentGuard(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewStudentService(repos.Students, repos.Enrollments, zerolog.Nop())

	student, err := svc.CreateStudent(ctx, newTestStudent("S1", "s1@campus.edu"))
	require.NoError(t, err)

	enrollment := models.NewEnrollment("course-1", "S1")
	enrollment.Status = models.EnrollmentDropped
	require.NoError(t, repos.Enrollments.Create(ctx, enrollment))

	err = svc.DeleteStudent(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasEnrollments, "dropped enrollments still block deletion")

	require.NoError(t, repos.Enrollments.Delete(ctx, enrollment.ID))
	require.NoError(t, svc.DeleteStudent(ctx, student.ID))

	_, err = svc.GetStudentByID(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentQueries(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	svc := NewStudentService(repos.Students, repos.Enrollments, zerolog.Nop())

	students := []*models.Student{
		models.NewStudent("S3", "Niels Bohr", "Physics", 2023, "niels@campus.edu"),
		models.NewStudent("S1", "Grace Hopper", "Computer Science", 2024, "grace@campus.edu"),
		models.NewStudent("S2", "Alan Turing", "Computer Science", 2023, "alan@campus.edu"),
	}
	for _, s := range students {
		_, err := svc.CreateStudent(ctx, s)
		require.NoError(t, err)
	}

	all, err := svc.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byMajor, err := svc.GetStudentsByMajor(ctx, "Computer Science", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byMajor.Pagination.TotalItems)

	byGrade, err := svc.GetStudentsByGrade(ctx, 2023, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byGrade.Pagination.TotalItems)
	assert.Equal(t, 2, byGrade.Pagination.TotalPages)

	both, err := svc.GetStudentsByMajorAndGrade(ctx, "Computer Science", 2023)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "S2", both[0].StudentID)
}
