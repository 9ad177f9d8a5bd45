package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Subtasks are
// loaded and stored alongside their task.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, title, notes, priority, tags, due_date, completed, completed_at,
	recur_kind, recur_interval, recur_weekdays, planned_min, accumulated_min,
	active_timer_started_at, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	kind, interval, weekdays := recurrenceToColumns(t.Recurrence)
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Notes,
		string(t.Priority),
		t.Tags,
		nullableTimeToString(t.DueDate, dayLayout),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		kind,
		interval,
		weekdays,
		t.PlannedMin,
		t.AccumulatedMin,
		nullableTimeToString(t.ActiveTimerStartedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return r.replaceSubtasks(ctx, t)
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := r.scanTask(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSubtasks(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY due_date IS NULL, due_date, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(ctx, rows)
}

func (r *SQLiteTaskRepo) ListDueOn(ctx context.Context, day time.Time) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE due_date = ? AND completed = 0
		ORDER BY priority = 'high' DESC, created_at`
	rows, err := r.db.QueryContext(ctx, query, day.Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("listing tasks due on %s: %w", day.Format(dayLayout), err)
	}
	defer rows.Close()
	return r.scanTasks(ctx, rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, notes = ?, priority = ?, tags = ?,
		due_date = ?, completed = ?, completed_at = ?,
		recur_kind = ?, recur_interval = ?, recur_weekdays = ?,
		planned_min = ?, accumulated_min = ?, active_timer_started_at = ?,
		updated_at = ?
		WHERE id = ?`
	kind, interval, weekdays := recurrenceToColumns(t.Recurrence)
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Notes,
		string(t.Priority),
		t.Tags,
		nullableTimeToString(t.DueDate, dayLayout),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		kind,
		interval,
		weekdays,
		t.PlannedMin,
		t.AccumulatedMin,
		nullableTimeToString(t.ActiveTimerStartedAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return r.replaceSubtasks(ctx, t)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// replaceSubtasks rewrites the task's subtask rows to match the in-memory
// slice. Delete-then-insert keeps ordering simple.
func (r *SQLiteTaskRepo) replaceSubtasks(ctx context.Context, t *domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing subtasks: %w", err)
	}
	for i, st := range t.Subtasks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO subtasks (id, task_id, title, done, position) VALUES (?, ?, ?, ?, ?)`,
			st.ID, t.ID, st.Title, boolToInt(st.Done), i)
		if err != nil {
			return fmt.Errorf("inserting subtask: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) loadSubtasks(ctx context.Context, t *domain.Task) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, title, done, position FROM subtasks WHERE task_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("loading subtasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.Subtask
		var done int
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Title, &done, &st.Position); err != nil {
			return fmt.Errorf("scanning subtask: %w", err)
		}
		st.Done = intToBool(done)
		t.Subtasks = append(t.Subtasks, st)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating subtasks: %w", err)
	}
	return nil
}

type taskRow struct {
	dueDate   sql.NullString
	completed int
	doneAt    sql.NullString
	kind      sql.NullString
	interval  sql.NullInt64
	weekdays  sql.NullString
	timerAt   sql.NullString
	createdAt string
	updatedAt string
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var raw taskRow
	err := row.Scan(
		&t.ID, &t.Title, &t.Notes, &t.Priority, &t.Tags,
		&raw.dueDate, &raw.completed, &raw.doneAt,
		&raw.kind, &raw.interval, &raw.weekdays,
		&t.PlannedMin, &t.AccumulatedMin, &raw.timerAt,
		&raw.createdAt, &raw.updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, raw)
}

func (r *SQLiteTaskRepo) scanTasks(ctx context.Context, rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var raw taskRow
		err := rows.Scan(
			&t.ID, &t.Title, &t.Notes, &t.Priority, &t.Tags,
			&raw.dueDate, &raw.completed, &raw.doneAt,
			&raw.kind, &raw.interval, &raw.weekdays,
			&t.PlannedMin, &t.AccumulatedMin, &raw.timerAt,
			&raw.createdAt, &raw.updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, popErr := r.populateTask(&t, raw)
		if popErr != nil {
			return nil, popErr
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	for _, t := range tasks {
		if err := r.loadSubtasks(ctx, t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw strings.
func (r *SQLiteTaskRepo) populateTask(t *domain.Task, raw taskRow) (*domain.Task, error) {
	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, raw.createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, raw.updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	t.Completed = intToBool(raw.completed)
	t.DueDate = parseNullableTime(raw.dueDate, dayLayout)
	t.CompletedAt = parseNullableTime(raw.doneAt, time.RFC3339)
	t.ActiveTimerStartedAt = parseNullableTime(raw.timerAt, time.RFC3339)
	t.Recurrence = recurrenceFromColumns(raw.kind, raw.interval, raw.weekdays)
	return t, nil
}

// recurrenceToColumns flattens an optional rule into its three columns.
func recurrenceToColumns(rule *domain.RecurrenceRule) (interface{}, interface{}, interface{}) {
	if rule == nil {
		return nil, nil, nil
	}
	return string(rule.Kind), rule.Interval, weekdaysToCSV(rule.Weekdays)
}

func recurrenceFromColumns(kind sql.NullString, interval sql.NullInt64, weekdays sql.NullString) *domain.RecurrenceRule {
	if !kind.Valid || kind.String == "" {
		return nil
	}
	rule := &domain.RecurrenceRule{
		Kind:     domain.RecurrenceKind(kind.String),
		Interval: int(interval.Int64),
	}
	if weekdays.Valid {
		rule.Weekdays = csvToWeekdays(weekdays.String)
	}
	return rule
}

func weekdaysToCSV(weekdays []int) string {
	parts := make([]string, len(weekdays))
	for i, wd := range weekdays {
		parts[i] = strconv.Itoa(wd)
	}
	return strings.Join(parts, ",")
}

func csvToWeekdays(csv string) []int {
	if csv == "" {
		return nil
	}
	var weekdays []int
	for _, part := range strings.Split(csv, ",") {
		wd, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays
}
