package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// Constraint names declared in the migrations.
const (
	CourseCodeUnique         = "uk_course_code"
	StudentNumberUnique      = "uk_student_number"
	StudentEmailUnique       = "uk_student_email"
	EnrollmentPairLiveUnique = "uk_enrollment_course_student_live"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// Check if the error is a PgError, if the code is unique_violation (23505),
	// and if the constraint name matches the provided one.
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
