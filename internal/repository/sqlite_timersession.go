package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteTimerSessionRepo implements TimerSessionRepo using a SQLite database.
type SQLiteTimerSessionRepo struct {
	db db.DBTX
}

// NewSQLiteTimerSessionRepo creates a new SQLiteTimerSessionRepo.
func NewSQLiteTimerSessionRepo(conn db.DBTX) *SQLiteTimerSessionRepo {
	return &SQLiteTimerSessionRepo{db: conn}
}

const sessionColumns = `id, task_id, started_at, ended_at, duration_sec, created_at`

func (r *SQLiteTimerSessionRepo) Create(ctx context.Context, s *domain.TimerSession) error {
	query := `INSERT INTO timer_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TaskID,
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.DurationSec,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting timer session: %w", err)
	}
	return nil
}

func (r *SQLiteTimerSessionRepo) GetByID(ctx context.Context, id string) (*domain.TimerSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM timer_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTimerSessionRepo) GetOpen(ctx context.Context) (*domain.TimerSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM timer_sessions WHERE ended_at IS NULL`
	return r.scanSession(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteTimerSessionRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.TimerSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM timer_sessions WHERE task_id = ? ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by task: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteTimerSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.TimerSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM timer_sessions
		WHERE started_at >= date('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteTimerSessionRepo) Update(ctx context.Context, s *domain.TimerSession) error {
	query := `UPDATE timer_sessions SET ended_at = ?, duration_sec = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.DurationSec,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating timer session: %w", err)
	}
	return nil
}

func (r *SQLiteTimerSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timer_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting timer session: %w", err)
	}
	return nil
}

func (r *SQLiteTimerSessionRepo) scanSession(row *sql.Row) (*domain.TimerSession, error) {
	var s domain.TimerSession
	var startedAtStr, createdAtStr string
	var endedAt sql.NullString

	err := row.Scan(&s.ID, &s.TaskID, &startedAtStr, &endedAt, &s.DurationSec, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timer session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning timer session: %w", err)
	}
	return r.populateSession(&s, startedAtStr, createdAtStr, endedAt)
}

func (r *SQLiteTimerSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.TimerSession, error) {
	var sessions []*domain.TimerSession
	for rows.Next() {
		var s domain.TimerSession
		var startedAtStr, createdAtStr string
		var endedAt sql.NullString

		if err := rows.Scan(&s.ID, &s.TaskID, &startedAtStr, &endedAt, &s.DurationSec, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := r.populateSession(&s, startedAtStr, createdAtStr, endedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteTimerSessionRepo) populateSession(s *domain.TimerSession, startedAtStr, createdAtStr string, endedAt sql.NullString) (*domain.TimerSession, error) {
	var err error
	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.EndedAt = parseNullableTime(endedAt, time.RFC3339)
	return s, nil
}
