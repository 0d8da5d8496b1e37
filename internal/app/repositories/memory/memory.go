// Package memory provides in-process implementations of the repository stores.
// They back the "memory" database driver and the service tests.
package memory

import (
	"fmt"

	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// NewRepositories wires fresh, empty in-memory stores.
func NewRepositories() *repositories.Repositories {
	return &repositories.Repositories{
		Courses:     NewCourseStore(),
		Students:    NewStudentStore(),
		Enrollments: NewEnrollmentStore(),
	}
}

func duplicate(constraint string) error {
	return fmt.Errorf("%w: %s", repositories.ErrDuplicateKey, constraint)
}

func pageOf[T any](items []T, page, size int) []T {
	start, end := helpers.CalculateSliceIndices(page, size, len(items))
	return items[start:end]
}
