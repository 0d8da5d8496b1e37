package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/logger"
)

var enrollmentColumns = []string{"id", "course_id", "student_id", "status", "enrolled_at"}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	var status string
	if err := row.Scan(&e.ID, &e.CourseID, &e.StudentID, &status, &e.EnrolledAt); err != nil {
		return nil, err
	}
	e.Status = models.EnrollmentStatus(status)
	return e, nil
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns(enrollmentColumns...).
		Values(enrollment.ID, enrollment.CourseID, enrollment.StudentID, string(enrollment.Status), enrollment.EnrolledAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.EnrollmentPairLiveUnique) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, dberrors.EnrollmentPairLiveUnique)
		}
		logger.Error().Err(err).
			Str("courseId", enrollment.CourseID).
			Str("studentId", enrollment.StudentID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// UpdateStatus sets the status of one enrollment
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.EnrollmentPairLiveUnique) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, dberrors.EnrollmentPairLiveUnique)
		}
		logger.Error().Err(err).Str("id", id).Str("status", string(status)).Msg("Error updating enrollment status")
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID retrieves an enrollment by ID
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns...).From("enrollments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}
	return enrollment, nil
}

func (r *EnrollmentRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Enrollment, error) {
	q := r.sb.Select(enrollmentColumns...).From("enrollments")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.OrderBy("enrolled_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}

// ListAll returns every enrollment
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]*models.Enrollment, error) {
	return r.list(ctx, nil)
}

// ListByCourse returns the enrollments of a course
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"course_id": courseID})
}

// ListByStudent returns the enrollments of a student number
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentNumber string) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentNumber})
}

// ListByCourseAndStatus filters a course's enrollments by status
func (r *EnrollmentRepository) ListByCourseAndStatus(ctx context.Context, courseID string, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"course_id": courseID, "status": string(status)})
}

// ListByStudentAndStatus filters a student's enrollments by status
func (r *EnrollmentRepository) ListByStudentAndStatus(ctx context.Context, studentNumber string, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentNumber, "status": string(status)})
}

func (r *EnrollmentRepository) exists(ctx context.Context, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("enrollments").
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking enrollment existence")
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return exists, nil
}

// ExistsByCourseAndStudent checks for an enrollment of the pair
func (r *EnrollmentRepository) ExistsByCourseAndStudent(ctx context.Context, courseID, studentNumber string, includeDropped bool) (bool, error) {
	where := squirrel.And{squirrel.Eq{"course_id": courseID, "student_id": studentNumber}}
	if !includeDropped {
		where = append(where, squirrel.NotEq{"status": string(models.EnrollmentDropped)})
	}
	return r.exists(ctx, where)
}

// ExistsByStudent checks whether a student number has any enrollment
func (r *EnrollmentRepository) ExistsByStudent(ctx context.Context, studentNumber string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"student_id": studentNumber})
}

// ExistsByCourse checks whether a course has any enrollment
func (r *EnrollmentRepository) ExistsByCourse(ctx context.Context, courseID string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"course_id": courseID})
}

// CountByCourseAndStatus counts a course's enrollments in one status
func (r *EnrollmentRepository) CountByCourseAndStatus(ctx context.Context, courseID string, status models.EnrollmentStatus) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID, "status": string(status)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("courseId", courseID).Msg("Error counting enrollments")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// CountActiveByCourseAll groups ACTIVE counts by course
func (r *EnrollmentRepository) CountActiveByCourseAll(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("course_id", "COUNT(*) FILTER (WHERE status = 'ACTIVE')").
		From("enrollments").
		GroupBy("course_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build active count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing active count query")
		return nil, fmt.Errorf("error counting active enrollments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var courseID string
		var count int64
		if err := rows.Scan(&courseID, &count); err != nil {
			return nil, fmt.Errorf("error scanning active count row: %w", err)
		}
		counts[courseID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating active count rows: %w", err)
	}
	return counts, nil
}
