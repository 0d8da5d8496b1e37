package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
)

// IsValid reports whether s is one of the defined statuses.
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentActive, EnrollmentDropped, EnrollmentCompleted:
		return true
	}
	return false
}

// ParseEnrollmentStatus accepts any letter case.
func ParseEnrollmentStatus(raw string) (EnrollmentStatus, bool) {
	s := EnrollmentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// Enrollment links a student number to a course id.
type Enrollment struct {
	ID         string           `json:"id" db:"id"`
	CourseID   string           `json:"courseId" db:"course_id"`
	StudentID  string           `json:"studentId" db:"student_id"`
	Status     EnrollmentStatus `json:"status" db:"status"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`
}

// NewEnrollment builds an ACTIVE enrollment stamped with the current time.
func NewEnrollment(courseID, studentNumber string) *Enrollment {
	return &Enrollment{
		ID:         uuid.NewString(),
		CourseID:   strings.TrimSpace(courseID),
		StudentID:  strings.TrimSpace(studentNumber),
		Status:     EnrollmentActive,
		EnrolledAt: time.Now().UTC(),
	}
}
