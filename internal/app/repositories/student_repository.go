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
	"github.com/yigit/campus/internal/pkg/helpers"
	"github.com/yigit/campus/internal/pkg/logger"
)

var studentColumns = []string{"id", "student_id", "name", "major", "grade", "email", "created_at"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	if err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Major, &s.Grade, &s.Email, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

// studentUniqueViolation names the violated student constraint, or returns "".
func studentUniqueViolation(err error) string {
	switch {
	case dberrors.IsDuplicateConstraintError(err, dberrors.StudentNumberUnique):
		return dberrors.StudentNumberUnique
	case dberrors.IsDuplicateConstraintError(err, dberrors.StudentEmailUnique):
		return dberrors.StudentEmailUnique
	}
	return ""
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.ID, student.StudentID, student.Name, student.Major, student.Grade, student.Email, student.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if constraint := studentUniqueViolation(err); constraint != "" {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, constraint)
		}
		logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// Update writes name, major, grade and email
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("major", student.Major).
		Set("grade", student.Grade).
		Set("email", student.Email).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if constraint := studentUniqueViolation(err); constraint != "" {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, constraint)
		}
		logger.Error().Err(err).Str("id", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StudentRepository) findOne(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// FindByID retrieves a student by ID
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByStudentNumber retrieves a student by student number
func (r *StudentRepository) FindByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	return r.findOne(ctx, squirrel.Eq{"student_id": studentNumber})
}

// FindByEmail retrieves a student by email
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx, squirrel.Eq{"email": email})
}

func (r *StudentRepository) exists(ctx context.Context, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// ExistsByStudentNumber checks whether a student number is registered
func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"student_id": studentNumber})
}

// ExistsByEmail checks whether an email is registered
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

func (r *StudentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) page(ctx context.Context, where squirrel.Sqlizer, page, size int) ([]*models.Student, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, err := r.list(ctx, r.sb.Select(studentColumns...).From("students").
		Where(where).
		OrderBy("student_id ASC").
		Offset(offset).
		Limit(uint64(limit)))
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// ListAll returns every student ordered by student number
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, r.sb.Select(studentColumns...).From("students").OrderBy("student_id ASC"))
}

// ListByMajor pages through the students of one major
func (r *StudentRepository) ListByMajor(ctx context.Context, major string, page, size int) ([]*models.Student, int64, error) {
	return r.page(ctx, squirrel.Eq{"major": major}, page, size)
}

// ListByGrade pages through the students of one grade
func (r *StudentRepository) ListByGrade(ctx context.Context, grade int, page, size int) ([]*models.Student, int64, error) {
	return r.page(ctx, squirrel.Eq{"grade": grade}, page, size)
}

// ListByMajorAndGrade returns students matching both major and grade
func (r *StudentRepository) ListByMajorAndGrade(ctx context.Context, major string, grade int) ([]*models.Student, error) {
	return r.list(ctx, r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"major": major, "grade": grade}).
		OrderBy("student_id ASC"))
}
