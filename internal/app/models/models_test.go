package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/campus/internal/pkg/apperrors"
)

func TestScheduleSlotOverlaps(t *testing.T) {
	base := ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "11:00"}

	tests := []struct {
		name  string
		other ScheduleSlot
		want  bool
	}{
		{"same slot", base, true},
		{"starts inside", ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "10:00", EndTime: "12:00"}, true},
		{"contains", ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "12:00"}, true},
		{"touches end", ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "11:00", EndTime: "12:00"}, false},
		{"touches start", ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "09:00"}, false},
		{"other day", ScheduleSlot{DayOfWeek: "TUESDAY", StartTime: "09:00", EndTime: "11:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestParseEnrollmentStatus(t *testing.T) {
	status, ok := ParseEnrollmentStatus(" dropped ")
	assert.True(t, ok)
	assert.Equal(t, EnrollmentDropped, status)

	_, ok = ParseEnrollmentStatus("PENDING")
	assert.False(t, ok)

	e := NewEnrollment(" C1 ", "S1")
	assert.Equal(t, EnrollmentActive, e.Status)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.EnrolledAt.IsZero())
}

func TestValidateCourse(t *testing.T) {
	valid := func() *Course {
		return NewCourse("CS101", "Intro",
			Instructor{ID: "T1", Name: "Ada", Email: "ada@campus.edu"},
			ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "11:00", ExpectedAttendance: 30},
			30)
	}

	assert.NoError(t, ValidateCourse(valid()))
	assert.ErrorIs(t, ValidateCourse(nil), apperrors.ErrValidationFailed)

	c := valid()
	c.Capacity = 0
	assert.ErrorIs(t, ValidateCourse(c), apperrors.ErrValidationFailed)

	c = valid()
	c.Code = "bad code!"
	assert.ErrorIs(t, ValidateCourse(c), apperrors.ErrValidationFailed)

	c = valid()
	c.Instructor.Email = "nope"
	assert.ErrorIs(t, ValidateCourse(c), apperrors.ErrValidationFailed)
}

func TestValidateStudent(t *testing.T) {
	assert.NoError(t, ValidateStudent(NewStudent("S2024001", "Grace", "CS", 2024, "grace@campus.edu")))
	assert.ErrorIs(t, ValidateStudent(NewStudent("S1", "Grace", "CS", 0, "grace@campus.edu")), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, ValidateStudent(NewStudent("S1", "Grace", "CS", 2024, "grace")), apperrors.ErrValidationFailed)
}
