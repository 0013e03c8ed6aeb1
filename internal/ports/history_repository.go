package ports

import (
	"context"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

// HistoryRepository persists the recently-viewed list, most recent first.
type HistoryRepository interface {
	List(ctx context.Context) ([]domain.PaperView, error)
	Save(ctx context.Context, views []domain.PaperView) error
	Clear(ctx context.Context) error
}
