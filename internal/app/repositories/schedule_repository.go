package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// ScheduleRepository handles database operations for class schedules
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

// Count returns the total number of schedule entries
func (r *ScheduleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM schedules`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting schedules: %w", err)
	}
	return total, nil
}

// Stats returns distinct class and course counts
func (r *ScheduleRepository) Stats(ctx context.Context) (totalClasses, totalCourses int64, err error) {
	query := `SELECT COUNT(DISTINCT class_name), COUNT(DISTINCT course_id) FROM schedules`
	if err := r.db.QueryRow(ctx, query).Scan(&totalClasses, &totalCourses); err != nil {
		return 0, 0, fmt.Errorf("error computing schedule stats: %w", err)
	}
	return totalClasses, totalCourses, nil
}

// List returns one page of schedules ordered by weekday then start time
func (r *ScheduleRepository) List(ctx context.Context, limit, offset int) ([]models.Schedule, error) {
	query := `
		SELECT id, class_name, course_id, course_name, teacher, classroom,
		       weekday, start_time, end_time, semester
		FROM schedules
		ORDER BY weekday, start_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSchedules(rows, false)
}

// ListByClass returns the full timetable for one class with the course
// description joined in
func (r *ScheduleRepository) ListByClass(ctx context.Context, className string) ([]models.Schedule, error) {
	query := `
		SELECT sch.id, sch.class_name, sch.course_id, sch.course_name, sch.teacher,
		       sch.classroom, sch.weekday, sch.start_time, sch.end_time, sch.semester,
		       c.description
		FROM schedules sch
		LEFT JOIN courses c ON sch.course_id = c.course_id
		WHERE sch.class_name = $1
		ORDER BY sch.weekday, sch.start_time
	`

	rows, err := r.db.Query(ctx, query, className)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSchedules(rows, true)
}

// Create inserts a schedule entry and fills in the generated id
func (r *ScheduleRepository) Create(ctx context.Context, s *models.Schedule) error {
	query := `
		INSERT INTO schedules (class_name, course_id, course_name, teacher, classroom,
		                       weekday, start_time, end_time, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		s.ClassName, s.CourseID, s.CourseName, s.Teacher, s.Classroom,
		s.Weekday, s.StartTime, s.EndTime, s.Semester).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}
	return nil
}

// Update rewrites a schedule entry by id. Returns false when no row
// matched.
func (r *ScheduleRepository) Update(ctx context.Context, s *models.Schedule) (bool, error) {
	query := `
		UPDATE schedules
		SET class_name = $1, course_id = $2, course_name = $3, teacher = $4, classroom = $5,
		    weekday = $6, start_time = $7, end_time = $8, semester = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		s.ClassName, s.CourseID, s.CourseName, s.Teacher, s.Classroom,
		s.Weekday, s.StartTime, s.EndTime, s.Semester, s.ID)
	if err != nil {
		return false, fmt.Errorf("error updating schedule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a schedule entry by id. Returns false when no row
// matched.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting schedule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collectSchedules(rows pgx.Rows, withDescription bool) ([]models.Schedule, error) {
	var schedules []models.Schedule
	for rows.Next() {
		var s models.Schedule
		dest := []any{&s.ID, &s.ClassName, &s.CourseID, &s.CourseName, &s.Teacher,
			&s.Classroom, &s.Weekday, &s.StartTime, &s.EndTime, &s.Semester}
		if withDescription {
			dest = append(dest, &s.Description)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
