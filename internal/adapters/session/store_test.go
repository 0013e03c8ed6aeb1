package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	toml "github.com/JiYeong0127/paperdeck/internal/adapters/repo/toml"
	"github.com/JiYeong0127/paperdeck/internal/domain"
	portmocks "github.com/JiYeong0127/paperdeck/internal/ports/mocks"
)

func newTestRecords(t *testing.T) *toml.Repository {
	t.Helper()

	config := viper.New()
	config.Set("state.path", filepath.Join(t.TempDir(), "state.toml"))

	records, err := toml.NewRepository(config)
	require.NoError(t, err)
	return records
}

func TestStoreSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	records := newTestRecords(t)
	secrets := portmocks.NewMockSecretStore(t)
	clock := portmocks.NewMockClock(t)
	store := NewStore(records, secrets, clock)

	savedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(savedAt).Once()
	secrets.EXPECT().Put(mock.Anything, TokenSecretKey, "tok-123").Return(nil).Once()
	secrets.EXPECT().Get(mock.Anything, TokenSecretKey).Return("tok-123", nil).Once()

	err := store.Save(context.Background(), domain.Session{
		Token:       "tok-123",
		DisplayName: "Ji-yeong",
		Email:       "jiyeong@example.com",
	})
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Session{
		Token:       "tok-123",
		DisplayName: "Ji-yeong",
		Email:       "jiyeong@example.com",
		SavedAt:     savedAt,
	}, got)
}

func TestStoreLoadWithoutSessionReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(newTestRecords(t), portmocks.NewMockSecretStore(t), nil)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStoreSaveRejectsSessionWithoutToken(t *testing.T) {
	t.Parallel()

	store := NewStore(newTestRecords(t), portmocks.NewMockSecretStore(t), nil)

	err := store.Save(context.Background(), domain.Session{Token: "   "})
	require.Error(t, err)
	assert.ErrorContains(t, err, "without a token")
}

func TestStoreSaveSecretFailureLeavesNoRecord(t *testing.T) {
	t.Parallel()

	records := newTestRecords(t)
	secrets := portmocks.NewMockSecretStore(t)
	store := NewStore(records, secrets, nil)

	secrets.EXPECT().Put(mock.Anything, TokenSecretKey, "tok-123").Return(errors.New("backend down")).Once()

	err := store.Save(context.Background(), domain.Session{Token: "tok-123"})
	require.Error(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStoreClearRemovesRecordAndToken(t *testing.T) {
	t.Parallel()

	records := newTestRecords(t)
	secrets := portmocks.NewMockSecretStore(t)
	clock := portmocks.NewMockClock(t)
	store := NewStore(records, secrets, clock)

	clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)).Once()
	secrets.EXPECT().Put(mock.Anything, TokenSecretKey, "tok-123").Return(nil).Once()
	secrets.EXPECT().Delete(mock.Anything, TokenSecretKey).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), domain.Session{Token: "tok-123"}))
	require.NoError(t, store.Clear(context.Background()))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStoreClearWithoutSessionIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(newTestRecords(t), portmocks.NewMockSecretStore(t), nil)

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreLoadSurfacesSecretBackendFailure(t *testing.T) {
	t.Parallel()

	records := newTestRecords(t)
	secrets := portmocks.NewMockSecretStore(t)
	clock := portmocks.NewMockClock(t)
	store := NewStore(records, secrets, clock)

	clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)).Once()
	secrets.EXPECT().Put(mock.Anything, TokenSecretKey, "tok-123").Return(nil).Once()
	secrets.EXPECT().Get(mock.Anything, TokenSecretKey).Return("", errors.New("backend down")).Once()

	require.NoError(t, store.Save(context.Background(), domain.Session{Token: "tok-123"}))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "load session token")
}
