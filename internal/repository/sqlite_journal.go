package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, content, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Content,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	query := `SELECT id, content, created_at, updated_at FROM journal_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.JournalEntry
	var createdAtStr, updatedAtStr string
	err := row.Scan(&e.ID, &e.Content, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}

func (r *SQLiteJournalRepo) List(ctx context.Context) ([]*domain.JournalEntry, error) {
	query := `SELECT id, content, created_at, updated_at FROM journal_entries ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&e.ID, &e.Content, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteJournalRepo) Update(ctx context.Context, e *domain.JournalEntry) error {
	query := `UPDATE journal_entries SET content = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Content,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}
