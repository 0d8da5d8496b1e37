package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/helpers"
	"github.com/yigit/campus/internal/pkg/logger"
)

var courseColumns = []string{
	"id", "code", "title",
	"instructor_id", "instructor_name", "instructor_email",
	"schedule_day_of_week", "schedule_start_time", "schedule_end_time", "schedule_expected_attendance",
	"capacity", "enrolled", "created_at",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.Code, &c.Title,
		&c.Instructor.ID, &c.Instructor.Name, &c.Instructor.Email,
		&c.Schedule.DayOfWeek, &c.Schedule.StartTime, &c.Schedule.EndTime, &c.Schedule.ExpectedAttendance,
		&c.Capacity, &c.Enrolled, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns(courseColumns...).
		Values(
			course.ID, course.Code, course.Title,
			course.Instructor.ID, course.Instructor.Name, course.Instructor.Email,
			course.Schedule.DayOfWeek, course.Schedule.StartTime, course.Schedule.EndTime, course.Schedule.ExpectedAttendance,
			course.Capacity, course.Enrolled, course.CreatedAt,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.CourseCodeUnique) {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, dberrors.CourseCodeUnique)
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update writes the mutable fields of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"title":                        course.Title,
			"instructor_id":                course.Instructor.ID,
			"instructor_name":              course.Instructor.Name,
			"instructor_email":             course.Instructor.Email,
			"schedule_day_of_week":         course.Schedule.DayOfWeek,
			"schedule_start_time":          course.Schedule.StartTime,
			"schedule_end_time":            course.Schedule.EndTime,
			"schedule_expected_attendance": course.Schedule.ExpectedAttendance,
			"capacity":                     course.Capacity,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEnrolled overwrites the seat counter
func (r *CourseRepository) UpdateEnrolled(ctx context.Context, id string, enrolled int) error {
	sql, args, err := r.sb.Update("courses").
		Set("enrolled", enrolled).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrolled query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Int("enrolled", enrolled).Msg("Error updating enrolled count")
		return fmt.Errorf("error updating enrolled count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CourseRepository) findOne(ctx context.Context, where squirrel.Sqlizer) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).From("courses").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// FindByID retrieves a course by ID
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByCode retrieves a course by its unique code
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.findOne(ctx, squirrel.Eq{"code": code})
}

// ExistsByCode checks whether a course code is taken
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(squirrel.Eq{"code": code}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error checking course code existence")
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

func (r *CourseRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) count(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("courses")
	if where != nil {
		q = q.Where(where)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// ListAll returns every course ordered by code
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, r.sb.Select(courseColumns...).From("courses").OrderBy("code ASC"))
}

// ListPage returns one page of courses ordered by code, plus the total count
func (r *CourseRepository) ListPage(ctx context.Context, page, size int) ([]*models.Course, int64, error) {
	total, err := r.count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	courses, err := r.list(ctx, r.sb.Select(courseColumns...).From("courses").
		OrderBy("code ASC").
		Offset(offset).
		Limit(uint64(limit)))
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// ListByInstructor returns the courses taught by one instructor
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error) {
	return r.list(ctx, r.sb.Select(courseColumns...).From("courses").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("code ASC"))
}

// ListAvailable returns courses whose seat counter is below capacity
func (r *CourseRepository) ListAvailable(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, r.sb.Select(courseColumns...).From("courses").
		Where("enrolled < capacity").
		OrderBy("code ASC"))
}

// SearchByTitle pages through courses whose title contains keyword, ignoring case
func (r *CourseRepository) SearchByTitle(ctx context.Context, keyword string, page, size int) ([]*models.Course, int64, error) {
	where := squirrel.ILike{"title": "%" + escapeLike(keyword) + "%"}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	courses, err := r.list(ctx, r.sb.Select(courseColumns...).From("courses").
		Where(where).
		OrderBy("code ASC").
		Offset(offset).
		Limit(uint64(limit)))
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// FindConflicting returns courses whose schedule intersects slot on the same day
func (r *CourseRepository) FindConflicting(ctx context.Context, slot models.ScheduleSlot, instructorID string) ([]*models.Course, error) {
	where := squirrel.And{
		squirrel.Eq{"schedule_day_of_week": slot.DayOfWeek},
		squirrel.Lt{"schedule_start_time": slot.EndTime},
		squirrel.Gt{"schedule_end_time": slot.StartTime},
	}
	if instructorID != "" {
		where = append(where, squirrel.Eq{"instructor_id": instructorID})
	}
	return r.list(ctx, r.sb.Select(courseColumns...).From("courses").Where(where))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
