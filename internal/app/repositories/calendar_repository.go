package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// CalendarRepository handles database operations for academic calendar
// events
type CalendarRepository struct {
	db *pgxpool.Pool
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{
		db: db,
	}
}

// List returns all calendar events in chronological order
func (r *CalendarRepository) List(ctx context.Context) ([]models.AcademicCalendarEvent, error) {
	query := `
		SELECT id, event_name, start_date, end_date, event_type, description
		FROM academic_calendar
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AcademicCalendarEvent
	for rows.Next() {
		var e models.AcademicCalendarEvent
		if err := rows.Scan(&e.ID, &e.EventName, &e.StartDate, &e.EndDate, &e.EventType, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Create inserts a calendar event and fills in the generated id
func (r *CalendarRepository) Create(ctx context.Context, e *models.AcademicCalendarEvent) error {
	query := `
		INSERT INTO academic_calendar (event_name, start_date, end_date, event_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		e.EventName, e.StartDate, e.EndDate, e.EventType, e.Description).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("error creating calendar event: %w", err)
	}
	return nil
}

// Update rewrites a calendar event by id. Returns false when no row
// matched.
func (r *CalendarRepository) Update(ctx context.Context, e *models.AcademicCalendarEvent) (bool, error) {
	query := `
		UPDATE academic_calendar
		SET event_name = $1, start_date = $2, end_date = $3, event_type = $4, description = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		e.EventName, e.StartDate, e.EndDate, e.EventType, e.Description, e.ID)
	if err != nil {
		return false, fmt.Errorf("error updating calendar event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a calendar event by id. Returns false when no row
// matched.
func (r *CalendarRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM academic_calendar WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting calendar event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
