package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

var defaultCourses = []struct {
	code, title string
	instructor  models.Instructor
	schedule    models.ScheduleSlot
	capacity    int
}{
	{
		code: "CS101", title: "Introduction to Computer Science",
		instructor: models.Instructor{ID: "T001", Name: "Ada Lovelace", Email: "ada@campus.edu"},
		schedule:   models.ScheduleSlot{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "11:00", ExpectedAttendance: 60},
		capacity:   60,
	},
	{
		code: "CS201", title: "Data Structures",
		instructor: models.Instructor{ID: "T001", Name: "Ada Lovelace", Email: "ada@campus.edu"},
		schedule:   models.ScheduleSlot{DayOfWeek: "WEDNESDAY", StartTime: "09:00", EndTime: "11:00", ExpectedAttendance: 40},
		capacity:   40,
	},
	{
		code: "MATH110", title: "Calculus I",
		instructor: models.Instructor{ID: "T002", Name: "Emmy Noether", Email: "emmy@campus.edu"},
		schedule:   models.ScheduleSlot{DayOfWeek: "TUESDAY", StartTime: "13:00", EndTime: "15:00", ExpectedAttendance: 80},
		capacity:   80,
	},
	{
		code: "PHYS120", title: "Mechanics",
		instructor: models.Instructor{ID: "T003", Name: "Richard Feynman", Email: "feynman@campus.edu"},
		schedule:   models.ScheduleSlot{DayOfWeek: "THURSDAY", StartTime: "10:00", EndTime: "12:00", ExpectedAttendance: 30},
		capacity:   3,
	},
}

var defaultStudents = []struct {
	number, name, major string
	grade               int
	email               string
}{
	{"S2024001", "Grace Hopper", "Computer Science", 2024, "grace@campus.edu"},
	{"S2024002", "Alan Turing", "Computer Science", 2024, "alan@campus.edu"},
	{"S2023001", "Katherine Johnson", "Mathematics", 2023, "katherine@campus.edu"},
	{"S2023002", "Niels Bohr", "Physics", 2023, "niels@campus.edu"},
}

// CreateDefaultData inserts a small demo catalog and student body. Records that already
// exist are left untouched, so it is safe to run on every start. A nil service skips its part.
func CreateDefaultData(ctx context.Context, courses services.CourseService, students services.StudentService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses/Students)...")
	var finalErr error

	if courses != nil {
		created := 0
		for _, c := range defaultCourses {
			course := models.NewCourse(c.code, c.title, c.instructor, c.schedule, c.capacity)
			if _, err := courses.CreateCourse(ctx, course); err != nil {
				if errors.Is(err, apperrors.ErrConflict) {
					lgr.Debug().Str("code", c.code).Msg("Default course already present")
					continue
				}
				lgr.Error().Err(err).Str("code", c.code).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			created++
		}
		lgr.Info().Int("created", created).Msg("Default courses checked")
	}

	if students != nil {
		created := 0
		for _, s := range defaultStudents {
			student := models.NewStudent(s.number, s.name, s.major, s.grade, s.email)
			if _, err := students.CreateStudent(ctx, student); err != nil {
				if errors.Is(err, apperrors.ErrConflict) {
					lgr.Debug().Str("studentId", s.number).Msg("Default student already present")
					continue
				}
				lgr.Error().Err(err).Str("studentId", s.number).Msg("Error creating default student")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			created++
		}
		lgr.Info().Int("created", created).Msg("Default students checked")
	}

	return finalErr
}
