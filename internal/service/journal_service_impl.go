package service

import (
	"context"
	"time"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	journal repository.JournalRepo
}

func NewJournalService(journal repository.JournalRepo) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) Add(ctx context.Context, content string, now time.Time) (*domain.JournalEntry, error) {
	entry := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.journal.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) List(ctx context.Context) ([]*domain.JournalEntry, error) {
	return s.journal.List(ctx)
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	return s.journal.Delete(ctx, id)
}
