package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quicksched/internal/schedule"
	repo "quicksched/internal/schedule/repository"
)

// localFormat is the zone-naive layout used for every stored timestamp.
const localFormat = "2006-01-02T15:04:05"

const scheduleColumns = `id, title, source_text, start_at, end_at, duration_minutes, calendar_event_id, html_link, created_at`

// CreateSchedule inserts a new Schedule row and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (schedule.Schedule, error) {
	const query = `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := time.Now().In(r.loc)
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Title, opt.SourceText,
		opt.StartAt.Format(localFormat), opt.EndAt.Format(localFormat),
		opt.DurationMinutes, opt.CalendarEventID, opt.HTMLLink,
		createdAt.Format(localFormat),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToInsert
	}

	sched := schedule.Schedule{
		ID:              opt.ID,
		Title:           opt.Title,
		SourceText:      opt.SourceText,
		StartAt:         opt.StartAt,
		EndAt:           opt.EndAt,
		DurationMinutes: opt.DurationMinutes,
		CalendarEventID: opt.CalendarEventID,
		HTMLLink:        opt.HTMLLink,
		CreatedAt:       truncateToSecond(createdAt),
	}
	r.cache.Add(sched.ID, sched)
	return sched, nil
}

// GetOneSchedule retrieves a single Schedule by the provided filters.
// Returns zero-value Schedule (ID == "") when not found — do NOT return an
// error for not-found.
func (r *implRepository) GetOneSchedule(ctx context.Context, opt repo.GetOneScheduleOptions) (schedule.Schedule, error) {
	if opt.ID != "" {
		if cached, ok := r.cache.Get(opt.ID); ok {
			return cached, nil
		}
	}

	const query = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ? LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, opt.ID)
	sched, err := r.scanSchedule(row)
	if err == sql.ErrNoRows {
		return schedule.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToGet
	}

	r.cache.Add(sched.ID, sched)
	return sched, nil
}

// ListSchedules returns a page of Schedules ordered by start time plus the
// total count for the same filters.
func (r *implRepository) ListSchedules(ctx context.Context, opt repo.ListSchedulesOptions) ([]schedule.Schedule, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM schedules %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListSchedules"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`SELECT `+scheduleColumns+` FROM schedules %s ORDER BY start_at LIMIT ? OFFSET ?`, where)
	rows, err := r.db.QueryContext(ctx, query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSchedules"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var scheds []schedule.Schedule
	for rows.Next() {
		sched, err := r.scanSchedule(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSchedules"), err)
			return nil, 0, repo.ErrFailedToList
		}
		scheds = append(scheds, sched)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSchedules"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return scheds, total, nil
}

// DeleteSchedule removes a Schedule by ID.
func (r *implRepository) DeleteSchedule(ctx context.Context, id string) error {
	const query = `DELETE FROM schedules WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSchedule"), err)
		return repo.ErrFailedToDelete
	}
	r.cache.Remove(id)
	return nil
}

func (r *implRepository) buildListFilter(opt repo.ListSchedulesOptions) (string, []any) {
	where := `WHERE 1=1`
	var args []any
	if !opt.From.IsZero() {
		where += ` AND start_at >= ?`
		args = append(args, opt.From.Format(localFormat))
	}
	if !opt.To.IsZero() {
		where += ` AND start_at < ?`
		args = append(args, opt.To.Format(localFormat))
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanSchedule(row rowScanner) (schedule.Schedule, error) {
	var (
		sched                     schedule.Schedule
		startAt, endAt, createdAt string
	)
	if err := row.Scan(
		&sched.ID, &sched.Title, &sched.SourceText,
		&startAt, &endAt, &sched.DurationMinutes,
		&sched.CalendarEventID, &sched.HTMLLink, &createdAt,
	); err != nil {
		return schedule.Schedule{}, err
	}

	var err error
	if sched.StartAt, err = time.ParseInLocation(localFormat, startAt, r.loc); err != nil {
		return schedule.Schedule{}, err
	}
	if sched.EndAt, err = time.ParseInLocation(localFormat, endAt, r.loc); err != nil {
		return schedule.Schedule{}, err
	}
	if sched.CreatedAt, err = time.ParseInLocation(localFormat, createdAt, r.loc); err != nil {
		return schedule.Schedule{}, err
	}
	return sched, nil
}

func truncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}
