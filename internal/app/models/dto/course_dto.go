package dto

import "github.com/yigit/campus/internal/app/models"

// InstructorRequest is the instructor block of a course payload
type InstructorRequest struct {
	ID    string `json:"id" binding:"required" example:"T001"`
	Name  string `json:"name" binding:"required" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required,email" example:"ada@campus.edu"`
}

// ScheduleRequest is the schedule block of a course payload
type ScheduleRequest struct {
	DayOfWeek          string `json:"dayOfWeek" binding:"required" example:"MONDAY"`
	StartTime          string `json:"startTime" binding:"required" example:"08:00"`
	EndTime            string `json:"endTime" binding:"required" example:"10:00"`
	ExpectedAttendance int    `json:"expectedAttendance" binding:"required,gt=0" example:"50"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code       string            `json:"code" binding:"required" example:"CS101"`
	Title      string            `json:"title" binding:"required" example:"Introduction to Computer Science"`
	Instructor InstructorRequest `json:"instructor" binding:"required"`
	Schedule   ScheduleRequest   `json:"schedule" binding:"required"`
	Capacity   int               `json:"capacity" binding:"required,gt=0" example:"60"`
}

// UpdateCourseRequest represents course update data. Capacity and code are checked by the
// service so that a missing course is reported before field errors. Any enrolled value sent
// by the caller is ignored.
type UpdateCourseRequest struct {
	Code       string            `json:"code" binding:"required" example:"CS101"`
	Title      string            `json:"title" binding:"required" example:"Introduction to Computer Science"`
	Instructor InstructorRequest `json:"instructor" binding:"required"`
	Schedule   ScheduleRequest   `json:"schedule" binding:"required"`
	Capacity   int               `json:"capacity" example:"60"`
	Enrolled   *int              `json:"enrolled,omitempty" swaggerignore:"true"`
}

// UpdateEnrolledRequest is the body of the seat-count endpoint
type UpdateEnrolledRequest struct {
	Enrolled *int `json:"enrolled" binding:"required,gte=0" example:"12"`
}

func (r InstructorRequest) toModel() models.Instructor {
	return models.Instructor{ID: r.ID, Name: r.Name, Email: r.Email}
}

func (r ScheduleRequest) toModel() models.ScheduleSlot {
	return models.ScheduleSlot{
		DayOfWeek:          r.DayOfWeek,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		ExpectedAttendance: r.ExpectedAttendance,
	}
}

// ToModel builds a new course from the request.
func (r *CreateCourseRequest) ToModel() *models.Course {
	return models.NewCourse(r.Code, r.Title, r.Instructor.toModel(), r.Schedule.toModel(), r.Capacity)
}

// ToModel carries the mutable fields; id, enrolled and createdAt are left to the service.
func (r *UpdateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		Code:       r.Code,
		Title:      r.Title,
		Instructor: r.Instructor.toModel(),
		Schedule:   r.Schedule.toModel(),
		Capacity:   r.Capacity,
	}
}
