package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlrepo "github.com/JiYeong0127/paperdeck/internal/adapters/repo/toml"
	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/ports/mocks"
)

func TestHistoryServiceRecordMovesPaperToFront(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewHistoryService(repo, clock, 0)

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Once()

	older := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.PaperView{
		{PaperID: "7", Title: "Paxos Made Simple", ViewedAt: older},
		{PaperID: "42", Title: "Optimistic Concurrency Control", ViewedAt: older},
	}, nil).Once()
	repo.EXPECT().Save(mockAnyContext(), []domain.PaperView{
		{PaperID: "42", Title: "Optimistic Concurrency Control", ViewedAt: now},
		{PaperID: "7", Title: "Paxos Made Simple", ViewedAt: older},
	}).Return(nil).Once()

	err := service.Record(context.Background(), domain.Paper{ID: " 42 ", Title: "Optimistic Concurrency Control"})
	require.NoError(t, err)
}

func TestHistoryServiceRecordTrimsToLimit(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewHistoryService(repo, clock, 2)

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Once()

	repo.EXPECT().List(mockAnyContext()).Return([]domain.PaperView{
		{PaperID: "1", Title: "One"},
		{PaperID: "2", Title: "Two"},
	}, nil).Once()
	repo.EXPECT().Save(mockAnyContext(), []domain.PaperView{
		{PaperID: "3", Title: "Three", ViewedAt: now},
		{PaperID: "1", Title: "One"},
	}).Return(nil).Once()

	err := service.Record(context.Background(), domain.Paper{ID: "3", Title: "Three"})
	require.NoError(t, err)
}

func TestHistoryServiceIgnoresPapersWithoutID(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	service := NewHistoryService(repo, nil, 0)

	err := service.Record(context.Background(), domain.Paper{Title: "Untitled Draft"})
	require.NoError(t, err)
}

func TestHistoryServiceRoundTripsThroughStateFile(t *testing.T) {
	config := viper.New()
	config.Set("state.path", filepath.Join(t.TempDir(), "state.toml"))
	repo, err := tomlrepo.NewRepository(config)
	require.NoError(t, err)

	service := NewHistoryService(repo, nil, 0)
	ctx := context.Background()

	require.NoError(t, service.Record(ctx, domain.Paper{ID: "7", Title: "Paxos Made Simple"}))
	require.NoError(t, service.Record(ctx, domain.Paper{ID: "42", Title: "Optimistic Concurrency Control"}))

	views, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "42", views[0].PaperID)
	assert.Equal(t, "7", views[1].PaperID)

	require.NoError(t, service.Clear(ctx))

	views, err = service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}
