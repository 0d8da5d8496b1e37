package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/dberrors"
)

// CourseStore keeps courses in a map keyed by id.
type CourseStore struct {
	mu      sync.RWMutex
	courses map[string]models.Course
}

// NewCourseStore creates an empty CourseStore.
func NewCourseStore() *CourseStore {
	return &CourseStore{courses: make(map[string]models.Course)}
}

var _ repositories.CourseStore = (*CourseStore)(nil)

func (s *CourseStore) Create(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.courses {
		if c.Code == course.Code {
			return duplicate(dberrors.CourseCodeUnique)
		}
	}
	s.courses[course.ID] = *course
	return nil
}

func (s *CourseStore) Update(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.courses[course.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.Title = course.Title
	existing.Instructor = course.Instructor
	existing.Schedule = course.Schedule
	existing.Capacity = course.Capacity
	s.courses[course.ID] = existing
	return nil
}

func (s *CourseStore) UpdateEnrolled(_ context.Context, id string, enrolled int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.courses[id]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.Enrolled = enrolled
	s.courses[id] = existing
	return nil
}

func (s *CourseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *CourseStore) FindByID(_ context.Context, id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (s *CourseStore) FindByCode(_ context.Context, code string) (*models.Course, error) {
	matches := s.filter(func(c *models.Course) bool { return c.Code == code })
	if len(matches) == 0 {
		return nil, repositories.ErrNotFound
	}
	return matches[0], nil
}

func (s *CourseStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := s.FindByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *CourseStore) ListAll(_ context.Context) ([]*models.Course, error) {
	return s.filter(nil), nil
}

func (s *CourseStore) ListPage(_ context.Context, page, size int) ([]*models.Course, int64, error) {
	all := s.filter(nil)
	return pageOf(all, page, size), int64(len(all)), nil
}

func (s *CourseStore) ListByInstructor(_ context.Context, instructorID string) ([]*models.Course, error) {
	return s.filter(func(c *models.Course) bool { return c.Instructor.ID == instructorID }), nil
}

func (s *CourseStore) ListAvailable(_ context.Context) ([]*models.Course, error) {
	return s.filter((*models.Course).HasFreeSeat), nil
}

func (s *CourseStore) SearchByTitle(_ context.Context, keyword string, page, size int) ([]*models.Course, int64, error) {
	needle := strings.ToLower(keyword)
	matches := s.filter(func(c *models.Course) bool {
		return strings.Contains(strings.ToLower(c.Title), needle)
	})
	return pageOf(matches, page, size), int64(len(matches)), nil
}

func (s *CourseStore) FindConflicting(_ context.Context, slot models.ScheduleSlot, instructorID string) ([]*models.Course, error) {
	return s.filter(func(c *models.Course) bool {
		if instructorID != "" && c.Instructor.ID != instructorID {
			return false
		}
		return c.Schedule.Overlaps(slot)
	}), nil
}

// filter returns copies of the matching courses ordered by code.
func (s *CourseStore) filter(keep func(*models.Course) bool) []*models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Course{}
	for _, c := range s.courses {
		c := c
		if keep == nil || keep(&c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
