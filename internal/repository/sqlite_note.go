package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/daybreak/internal/db"
	"github.com/alexanderramin/daybreak/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (id, title, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Title,
		n.Body,
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT id, title, body, created_at, updated_at FROM notes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var n domain.Note
	var createdAtStr, updatedAtStr string
	err := row.Scan(&n.ID, &n.Title, &n.Body, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	if n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &n, nil
}

func (r *SQLiteNoteRepo) List(ctx context.Context) ([]*domain.Note, error) {
	query := `SELECT id, title, body, created_at, updated_at FROM notes ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		if n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

func (r *SQLiteNoteRepo) Update(ctx context.Context, n *domain.Note) error {
	query := `UPDATE notes SET title = ?, body = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Body,
		n.UpdatedAt.Format(time.RFC3339),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
