package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. The migration list is append-only and
// every statement is idempotent, so the whole list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                      TEXT PRIMARY KEY,
		title                   TEXT NOT NULL,
		notes                   TEXT NOT NULL DEFAULT '',
		priority                TEXT NOT NULL DEFAULT 'medium'
		                        CHECK(priority IN ('low','medium','high')),
		tags                    TEXT NOT NULL DEFAULT '',
		due_date                TEXT,
		completed               INTEGER NOT NULL DEFAULT 0,
		completed_at            TEXT,
		recur_kind              TEXT
		                        CHECK(recur_kind IS NULL OR recur_kind IN ('daily','weekly','monthly','yearly')),
		recur_interval          INTEGER,
		recur_weekdays          TEXT,
		planned_min             INTEGER NOT NULL DEFAULT 0,
		accumulated_min         INTEGER NOT NULL DEFAULT 0,
		active_timer_started_at TEXT,
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		id       TEXT PRIMARY KEY,
		task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title    TEXT NOT NULL,
		done     INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id)`,

	`CREATE TABLE IF NOT EXISTS timer_sessions (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		started_at   TEXT NOT NULL,
		ended_at     TEXT,
		duration_sec INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timer_sessions_task ON timer_sessions(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_timer_sessions_started ON timer_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS habits (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		goal_type  TEXT NOT NULL DEFAULT 'build'
		           CHECK(goal_type IN ('build','limit')),
		target     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_logs (
		id       TEXT PRIMARY KEY,
		habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		day      TEXT NOT NULL,
		progress INTEGER NOT NULL DEFAULT 0,
		skipped  INTEGER NOT NULL DEFAULT 0,
		UNIQUE(habit_id, day)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_logs_day ON habit_logs(day)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		body       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		day_start_hour INTEGER NOT NULL DEFAULT 0
		               CHECK(day_start_hour BETWEEN 0 AND 23)
	)`,

	// Seed default user profile
	`INSERT OR IGNORE INTO user_profile (id) VALUES ('default')`,
}
