package application

import (
	"context"
	"fmt"

	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// HistoryService keeps the bounded recently-viewed list, most recent first.
type HistoryService struct {
	repo  ports.HistoryRepository
	clock ports.Clock
	limit int
}

func NewHistoryService(repo ports.HistoryRepository, clock ports.Clock, limit int) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if limit <= 0 {
		limit = domain.MaxRecentlyViewed
	}

	return &HistoryService{repo: repo, clock: clock, limit: limit}
}

// Record moves the paper to the front of the history, dropping any older
// entry for the same paper. Papers without an id are ignored.
func (s *HistoryService) Record(ctx context.Context, paper domain.Paper) error {
	paperID := domain.NormalizePaperID(paper.ID)
	if paperID == "" {
		return nil
	}

	views, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list paper views: %w", err)
	}

	view := domain.PaperView{
		PaperID:  paperID,
		Title:    paper.Title,
		ViewedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Save(ctx, domain.PushRecentlyViewed(views, view, s.limit)); err != nil {
		return fmt.Errorf("save paper views: %w", err)
	}

	return nil
}

func (s *HistoryService) List(ctx context.Context) ([]domain.PaperView, error) {
	views, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paper views: %w", err)
	}

	return views, nil
}

func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear paper views: %w", err)
	}

	return nil
}
