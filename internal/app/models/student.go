package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/validation"
)

// Student is a person who can enroll in courses. StudentID is the human-facing
// student number and is what enrollments reference.
type Student struct {
	ID        string    `json:"id" db:"id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Name      string    `json:"name" db:"name"`
	Major     string    `json:"major" db:"major"`
	Grade     int       `json:"grade" db:"grade"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewStudent builds a student ready to insert with a fresh id and creation time.
func NewStudent(studentNumber, name, major string, grade int, email string) *Student {
	return &Student{
		ID:        uuid.NewString(),
		StudentID: strings.TrimSpace(studentNumber),
		Name:      strings.TrimSpace(name),
		Major:     strings.TrimSpace(major),
		Grade:     grade,
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}
}

// ValidateStudent checks the field-level rules of a student.
func ValidateStudent(s *Student) error {
	if s == nil {
		return apperrors.NewValidationError("student is required")
	}

	err := validation.First(
		validation.NewStringValidation("studentId", s.StudentID).WithPattern(validation.CompiledPatterns.StudentNumber),
		validation.NewStringValidation("name", s.Name).WithMaxLength(50),
		validation.NewStringValidation("major", s.Major).WithMaxLength(50),
		validation.NewNumericValidation("grade", s.Grade).WithMin(1).WithMax(9999),
		validation.NewStringValidation("email", s.Email).WithMaxLength(100).WithPattern(validation.CompiledPatterns.Email),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}
	return nil
}
