package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/google/uuid"
)

type noteService struct {
	notes repository.NoteRepo
}

func NewNoteService(notes repository.NoteRepo) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Add(ctx context.Context, title, body string, now time.Time) (*domain.Note, error) {
	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context) ([]*domain.Note, error) {
	return s.notes.List(ctx)
}

func (s *noteService) Update(ctx context.Context, n *domain.Note, now time.Time) error {
	n.UpdatedAt = now.UTC()
	return s.notes.Update(ctx, n)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
