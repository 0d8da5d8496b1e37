package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/dberrors"
)

// StudentStore keeps students in a map keyed by id.
type StudentStore struct {
	mu       sync.RWMutex
	students map[string]models.Student
}

// NewStudentStore creates an empty StudentStore.
func NewStudentStore() *StudentStore {
	return &StudentStore{students: make(map[string]models.Student)}
}

var _ repositories.StudentStore = (*StudentStore)(nil)

// uniqueViolation must be called with the lock held.
func (s *StudentStore) uniqueViolation(student *models.Student) string {
	for id, existing := range s.students {
		if id == student.ID {
			continue
		}
		if existing.StudentID == student.StudentID {
			return dberrors.StudentNumberUnique
		}
		if existing.Email == student.Email {
			return dberrors.StudentEmailUnique
		}
	}
	return ""
}

func (s *StudentStore) Create(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if constraint := s.uniqueViolation(student); constraint != "" {
		return duplicate(constraint)
	}
	s.students[student.ID] = *student
	return nil
}

func (s *StudentStore) Update(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.students[student.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	candidate := existing
	candidate.Email = student.Email
	if constraint := s.uniqueViolation(&candidate); constraint != "" {
		return duplicate(constraint)
	}

	existing.Name = student.Name
	existing.Major = student.Major
	existing.Grade = student.Grade
	existing.Email = student.Email
	s.students[student.ID] = existing
	return nil
}

func (s *StudentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *StudentStore) FindByID(_ context.Context, id string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &st, nil
}

func (s *StudentStore) first(keep func(*models.Student) bool) (*models.Student, error) {
	matches := s.filter(keep)
	if len(matches) == 0 {
		return nil, repositories.ErrNotFound
	}
	return matches[0], nil
}

func (s *StudentStore) FindByStudentNumber(_ context.Context, studentNumber string) (*models.Student, error) {
	return s.first(func(st *models.Student) bool { return st.StudentID == studentNumber })
}

func (s *StudentStore) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	return s.first(func(st *models.Student) bool { return st.Email == email })
}

func (s *StudentStore) ExistsByStudentNumber(_ context.Context, studentNumber string) (bool, error) {
	return len(s.filter(func(st *models.Student) bool { return st.StudentID == studentNumber })) > 0, nil
}

func (s *StudentStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return len(s.filter(func(st *models.Student) bool { return st.Email == email })) > 0, nil
}

func (s *StudentStore) ListAll(_ context.Context) ([]*models.Student, error) {
	return s.filter(nil), nil
}

func (s *StudentStore) ListByMajor(_ context.Context, major string, page, size int) ([]*models.Student, int64, error) {
	matches := s.filter(func(st *models.Student) bool { return st.Major == major })
	return pageOf(matches, page, size), int64(len(matches)), nil
}

func (s *StudentStore) ListByGrade(_ context.Context, grade int, page, size int) ([]*models.Student, int64, error) {
	matches := s.filter(func(st *models.Student) bool { return st.Grade == grade })
	return pageOf(matches, page, size), int64(len(matches)), nil
}

func (s *StudentStore) ListByMajorAndGrade(_ context.Context, major string, grade int) ([]*models.Student, error) {
	return s.filter(func(st *models.Student) bool { return st.Major == major && st.Grade == grade }), nil
}

// filter returns copies of the matching students ordered by student number.
func (s *StudentStore) filter(keep func(*models.Student) bool) []*models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Student{}
	for _, st := range s.students {
		st := st
		if keep == nil || keep(&st) {
			out = append(out, &st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out
}
