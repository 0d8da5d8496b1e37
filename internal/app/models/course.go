package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/validation"
)

// Instructor identifies who teaches a course. Stored inline on the course row.
type Instructor struct {
	ID    string `json:"id" db:"instructor_id"`
	Name  string `json:"name" db:"instructor_name"`
	Email string `json:"email" db:"instructor_email"`
}

// ScheduleSlot is the weekly time slot of a course. Day and times are opaque tokens;
// times are compared lexically, so "08:00" style values order correctly.
type ScheduleSlot struct {
	DayOfWeek          string `json:"dayOfWeek" db:"schedule_day_of_week"`
	StartTime          string `json:"startTime" db:"schedule_start_time"`
	EndTime            string `json:"endTime" db:"schedule_end_time"`
	ExpectedAttendance int    `json:"expectedAttendance" db:"schedule_expected_attendance"`
}

// Overlaps reports whether two slots share a day and their half-open time ranges intersect.
func (s ScheduleSlot) Overlaps(other ScheduleSlot) bool {
	return s.DayOfWeek == other.DayOfWeek &&
		s.StartTime < other.EndTime &&
		s.EndTime > other.StartTime
}

// Course is a catalog entry.
type Course struct {
	ID         string       `json:"id" db:"id"`
	Code       string       `json:"code" db:"code"`
	Title      string       `json:"title" db:"title"`
	Instructor Instructor   `json:"instructor"`
	Schedule   ScheduleSlot `json:"schedule"`
	Capacity   int          `json:"capacity" db:"capacity"`
	Enrolled   int          `json:"enrolled" db:"enrolled"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
}

// HasFreeSeat reports whether the seat counter is below capacity.
func (c *Course) HasFreeSeat() bool {
	return c.Enrolled < c.Capacity
}

// NewCourse builds a course ready to insert: fresh id, zero seats taken, creation time stamped.
func NewCourse(code, title string, instructor Instructor, schedule ScheduleSlot, capacity int) *Course {
	return &Course{
		ID:         uuid.NewString(),
		Code:       strings.TrimSpace(code),
		Title:      strings.TrimSpace(title),
		Instructor: instructor,
		Schedule:   schedule,
		Capacity:   capacity,
		Enrolled:   0,
		CreatedAt:  time.Now().UTC(),
	}
}

// ValidateCourse checks the field-level rules of a course.
func ValidateCourse(c *Course) error {
	if c == nil {
		return apperrors.NewValidationError("course is required")
	}

	err := validation.First(
		validation.NewStringValidation("code", c.Code).WithPattern(validation.CompiledPatterns.CourseCode),
		validation.NewStringValidation("title", c.Title).WithMaxLength(200),
		validation.NewStringValidation("instructor.id", c.Instructor.ID).WithMaxLength(64),
		validation.NewStringValidation("instructor.name", c.Instructor.Name).WithMaxLength(validation.NameMaxLength),
		validation.NewStringValidation("instructor.email", c.Instructor.Email).WithPattern(validation.CompiledPatterns.Email),
		validation.NewStringValidation("schedule.dayOfWeek", c.Schedule.DayOfWeek).WithMaxLength(16),
		validation.NewStringValidation("schedule.startTime", c.Schedule.StartTime).WithMaxLength(16),
		validation.NewStringValidation("schedule.endTime", c.Schedule.EndTime).WithMaxLength(16),
		validation.NewNumericValidation("schedule.expectedAttendance", c.Schedule.ExpectedAttendance).WithMin(1),
		validation.NewNumericValidation("capacity", c.Capacity).WithMin(1),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}

	return nil
}
