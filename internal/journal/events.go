package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind names the intent an event records
type Kind string

const (
	KindAdded   Kind = "added"
	KindToggled Kind = "toggled"
	KindDeleted Kind = "deleted"
	KindCleared Kind = "cleared"
	KindFilter  Kind = "filter"
	KindTheme   Kind = "theme"
)

// Event is one applied intent
type Event struct {
	ID        string
	Kind      Kind
	TaskID    int // 0 when the intent is not about a single task
	Detail    string
	CreatedAt time.Time
}

// Record stores an event. ID and CreatedAt are filled in when empty.
func (j *Journal) Record(ctx context.Context, e Event) (Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	var taskID sql.NullInt64
	if e.TaskID != 0 {
		taskID = sql.NullInt64{Int64: int64(e.TaskID), Valid: true}
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO events (id, session_id, kind, task_id, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, j.session, string(e.Kind), taskID, e.Detail, e.CreatedAt)
	if err != nil {
		return e, fmt.Errorf("record %s event: %w", e.Kind, err)
	}
	return e, nil
}

// Recent returns up to limit events, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, kind, task_id, detail, created_at
		FROM events
		WHERE session_id = ?
		ORDER BY seq DESC
		LIMIT ?
	`, j.session, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind string
		var taskID sql.NullInt64
		if err := rows.Scan(&e.ID, &kind, &taskID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		if taskID.Valid {
			e.TaskID = int(taskID.Int64)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Counts returns how many events of each kind were recorded this session
func (j *Journal) Counts(ctx context.Context) (map[Kind]int, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT kind, COUNT(*)
		FROM events
		WHERE session_id = ?
		GROUP BY kind
	`, j.session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}
