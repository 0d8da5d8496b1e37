package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/dberrors"
)

// EnrollmentStore keeps enrollments in a map keyed by id.
// It enforces the same live-pair uniqueness as the Postgres partial index.
type EnrollmentStore struct {
	mu          sync.RWMutex
	enrollments map[string]models.Enrollment
}

// NewEnrollmentStore creates an empty EnrollmentStore.
func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{enrollments: make(map[string]models.Enrollment)}
}

var _ repositories.EnrollmentStore = (*EnrollmentStore)(nil)

// liveDuplicate must be called with the lock held.
func (s *EnrollmentStore) liveDuplicate(e *models.Enrollment) bool {
	if e.Status == models.EnrollmentDropped {
		return false
	}
	for id, existing := range s.enrollments {
		if id != e.ID &&
			existing.CourseID == e.CourseID &&
			existing.StudentID == e.StudentID &&
			existing.Status != models.EnrollmentDropped {
			return true
		}
	}
	return false
}

func (s *EnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.liveDuplicate(enrollment) {
		return duplicate(dberrors.EnrollmentPairLiveUnique)
	}
	s.enrollments[enrollment.ID] = *enrollment
	return nil
}

func (s *EnrollmentStore) UpdateStatus(_ context.Context, id string, status models.EnrollmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.enrollments[id]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.Status = status
	if s.liveDuplicate(&existing) {
		return duplicate(dberrors.EnrollmentPairLiveUnique)
	}
	s.enrollments[id] = existing
	return nil
}

func (s *EnrollmentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.enrollments, id)
	return nil
}

func (s *EnrollmentStore) FindByID(_ context.Context, id string) (*models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.enrollments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}

func (s *EnrollmentStore) ListAll(_ context.Context) ([]*models.Enrollment, error) {
	return s.filter(nil), nil
}

func (s *EnrollmentStore) ListByCourse(_ context.Context, courseID string) ([]*models.Enrollment, error) {
	return s.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (s *EnrollmentStore) ListByStudent(_ context.Context, studentNumber string) ([]*models.Enrollment, error) {
	return s.filter(func(e *models.Enrollment) bool { return e.StudentID == studentNumber }), nil
}

func (s *EnrollmentStore) ListByCourseAndStatus(_ context.Context, courseID string, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	return s.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID && e.Status == status }), nil
}

func (s *EnrollmentStore) ListByStudentAndStatus(_ context.Context, studentNumber string, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	return s.filter(func(e *models.Enrollment) bool { return e.StudentID == studentNumber && e.Status == status }), nil
}

func (s *EnrollmentStore) ExistsByCourseAndStudent(_ context.Context, courseID, studentNumber string, includeDropped bool) (bool, error) {
	matches := s.filter(func(e *models.Enrollment) bool {
		if e.CourseID != courseID || e.StudentID != studentNumber {
			return false
		}
		return includeDropped || e.Status != models.EnrollmentDropped
	})
	return len(matches) > 0, nil
}

func (s *EnrollmentStore) ExistsByStudent(_ context.Context, studentNumber string) (bool, error) {
	return len(s.filter(func(e *models.Enrollment) bool { return e.StudentID == studentNumber })) > 0, nil
}

func (s *EnrollmentStore) ExistsByCourse(_ context.Context, courseID string) (bool, error) {
	return len(s.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID })) > 0, nil
}

func (s *EnrollmentStore) CountByCourseAndStatus(_ context.Context, courseID string, status models.EnrollmentStatus) (int64, error) {
	matches := s.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID && e.Status == status })
	return int64(len(matches)), nil
}

func (s *EnrollmentStore) CountActiveByCourseAll(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, e := range s.enrollments {
		if _, seen := counts[e.CourseID]; !seen {
			counts[e.CourseID] = 0
		}
		if e.Status == models.EnrollmentActive {
			counts[e.CourseID]++
		}
	}
	return counts, nil
}

// filter returns copies of the matching enrollments in enrollment order.
func (s *EnrollmentStore) filter(keep func(*models.Enrollment) bool) []*models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Enrollment{}
	for _, e := range s.enrollments {
		e := e
		if keep == nil || keep(&e) {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EnrolledAt.Equal(out[j].EnrolledAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].EnrolledAt.Before(out[j].EnrolledAt)
	})
	return out
}
