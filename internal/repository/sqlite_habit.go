package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (id, title, goal_type, target, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Title,
		string(h.GoalType),
		h.Target,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT id, title, goal_type, target, created_at, updated_at FROM habits WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var h domain.Habit
	var createdAtStr, updatedAtStr string
	err := row.Scan(&h.ID, &h.Title, &h.GoalType, &h.Target, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	if h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if h.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &h, nil
}

func (r *SQLiteHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	query := `SELECT id, title, goal_type, target, created_at, updated_at FROM habits ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&h.ID, &h.Title, &h.GoalType, &h.Target, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if h.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		habits = append(habits, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET title = ?, goal_type = ?, target = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		h.Title,
		string(h.GoalType),
		h.Target,
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetLog(ctx context.Context, habitID string, day time.Time) (*domain.HabitLog, error) {
	query := `SELECT id, habit_id, day, progress, skipped FROM habit_logs
		WHERE habit_id = ? AND day = ?`
	row := r.db.QueryRowContext(ctx, query, habitID, day.Format(dayLayout))
	return r.scanLog(row)
}

func (r *SQLiteHabitRepo) UpsertLog(ctx context.Context, log *domain.HabitLog) error {
	query := `INSERT INTO habit_logs (id, habit_id, day, progress, skipped)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET progress = excluded.progress, skipped = excluded.skipped`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.HabitID,
		log.Day.Format(dayLayout),
		log.Progress,
		boolToInt(log.Skipped),
	)
	if err != nil {
		return fmt.Errorf("upserting habit log: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) ListLogs(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	query := `SELECT id, habit_id, day, progress, skipped FROM habit_logs
		WHERE habit_id = ? ORDER BY day DESC`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing habit logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteHabitRepo) ListAllLogs(ctx context.Context) ([]*domain.HabitLog, error) {
	query := `SELECT id, habit_id, day, progress, skipped FROM habit_logs ORDER BY day DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all habit logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteHabitRepo) scanLog(row *sql.Row) (*domain.HabitLog, error) {
	var log domain.HabitLog
	var dayStr string
	var skipped int
	err := row.Scan(&log.ID, &log.HabitID, &dayStr, &log.Progress, &skipped)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit log: %w", err)
	}
	if log.Day, err = time.Parse(dayLayout, dayStr); err != nil {
		return nil, fmt.Errorf("parsing habit log day: %w", err)
	}
	log.Skipped = intToBool(skipped)
	return &log, nil
}

func (r *SQLiteHabitRepo) scanLogs(rows *sql.Rows) ([]*domain.HabitLog, error) {
	var logs []*domain.HabitLog
	for rows.Next() {
		var log domain.HabitLog
		var dayStr string
		var skipped int
		if err := rows.Scan(&log.ID, &log.HabitID, &dayStr, &log.Progress, &skipped); err != nil {
			return nil, fmt.Errorf("scanning habit log row: %w", err)
		}
		day, err := time.Parse(dayLayout, dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing habit log day: %w", err)
		}
		log.Day = day
		log.Skipped = intToBool(skipped)
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit logs: %w", err)
	}
	return logs, nil
}
