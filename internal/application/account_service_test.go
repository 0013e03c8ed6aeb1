package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JiYeong0127/paperdeck/internal/adapters/cache/memory"
	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/ports/mocks"
)

func TestAccountServiceLoginPersistsGrantedSession(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, clock, nil)

	cache.Set(accountMeKey, domain.Account{Email: "old@example.com"})
	cache.Set(bookmarksKey, []domain.Bookmark{{ID: "b1", PaperID: "7"}})

	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Once()
	grant := domain.AuthGrant{Token: "tok-9", DisplayName: "Ji", Email: "ji@example.com"}
	api.EXPECT().Login(mockAnyContext(), "ji@example.com", "hunter2hunter2").Return(grant, nil).Once()

	want := domain.Session{Token: "tok-9", DisplayName: "Ji", Email: "ji@example.com", SavedAt: now}
	sessions.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	got, err := service.Login(context.Background(), LoginCommand{Email: "ji@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The previous identity's cached views must not survive a sign-in.
	_, stale, ok := cache.Get(accountMeKey)
	require.True(t, ok)
	assert.True(t, stale)
	_, stale, ok = cache.Get(bookmarksKey)
	require.True(t, ok)
	assert.True(t, stale)
}

func TestAccountServiceLoginRejectsMalformedEmail(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	_, err := service.Login(context.Background(), LoginCommand{Email: "not-an-email", Password: "whatever"})
	require.Error(t, err)
}

func TestAccountServiceRegisterValidatesPasswordLength(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	_, err := service.Register(context.Background(), RegisterCommand{
		Email:       "ji@example.com",
		Password:    "short",
		DisplayName: "Ji",
	})
	require.Error(t, err)
}

func TestAccountServiceRegisterPersistsGrantedSession(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, clock, nil)

	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Once()
	grant := domain.AuthGrant{Token: "tok-1", DisplayName: "Ji", Email: "ji@example.com"}
	api.EXPECT().Register(mockAnyContext(), "ji@example.com", "hunter2hunter2", "Ji").Return(grant, nil).Once()
	sessions.EXPECT().Save(mockAnyContext(), domain.Session{
		Token:       "tok-1",
		DisplayName: "Ji",
		Email:       "ji@example.com",
		SavedAt:     now,
	}).Return(nil).Once()

	_, err := service.Register(context.Background(), RegisterCommand{
		Email:       "ji@example.com",
		Password:    "hunter2hunter2",
		DisplayName: "Ji",
	})
	require.NoError(t, err)
}

func TestAccountServiceLoginDoesNotPersistOnRemoteFailure(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	loginErr := errors.New("status 401")
	api.EXPECT().Login(mockAnyContext(), "ji@example.com", "wrong-password").Return(domain.AuthGrant{}, loginErr).Once()

	_, err := service.Login(context.Background(), LoginCommand{Email: "ji@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, loginErr)
}

func TestAccountServiceLogoutClearsLocallyEvenWhenRemoteRevokeFails(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	sessions.EXPECT().Load(mockAnyContext()).Return(signedInSession(), nil)
	api.EXPECT().Logout(mockAnyContext()).Return(errors.New("status 502")).Once()
	sessions.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	err := service.Logout(context.Background())
	require.NoError(t, err)
}

func TestAccountServiceLogoutWithoutSession(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	sessions.EXPECT().Load(mockAnyContext()).Return(domain.Session{}, domain.ErrSessionNotFound)

	err := service.Logout(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAccountServiceStatusReportsStoredIdentity(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	saved := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sessions.EXPECT().Load(mockAnyContext()).Return(domain.Session{
		Token:       "tok-1",
		DisplayName: "Ji",
		Email:       "ji@example.com",
		SavedAt:     saved,
	}, nil)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuthStatus{SignedIn: true, DisplayName: "Ji", Email: "ji@example.com", SavedAt: saved}, status)
}

func TestAccountServiceStatusWithoutSessionIsZero(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	sessions.EXPECT().Load(mockAnyContext()).Return(domain.Session{}, domain.ErrSessionNotFound)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuthStatus{}, status)
}

func TestAccountServiceMeServesRepeatReadsFromCache(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	sessions.EXPECT().Load(mockAnyContext()).Return(signedInSession(), nil)
	account := domain.Account{Email: "ji@example.com", DisplayName: "Ji"}
	api.EXPECT().GetAccount(mockAnyContext()).Return(account, nil).Once()

	first, err := service.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, account, first)

	second, err := service.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, account, second)
}

func TestAccountServiceUpdateDisplayNameRefreshesStoredSession(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	cache.Set(accountMeKey, domain.Account{DisplayName: "Ji"})

	current := signedInSession()
	sessions.EXPECT().Load(mockAnyContext()).Return(current, nil)
	api.EXPECT().UpdateDisplayName(mockAnyContext(), "Ji-yeong").
		Return(domain.Account{Email: current.Email, DisplayName: "Ji-yeong"}, nil).Once()

	refreshed := current
	refreshed.DisplayName = "Ji-yeong"
	sessions.EXPECT().Save(mockAnyContext(), refreshed).Return(nil).Once()

	account, err := service.UpdateDisplayName(context.Background(), UpdateDisplayNameCommand{DisplayName: "Ji-yeong"})
	require.NoError(t, err)
	assert.Equal(t, "Ji-yeong", account.DisplayName)

	_, stale, ok := cache.Get(accountMeKey)
	require.True(t, ok)
	assert.True(t, stale)
}

func TestAccountServiceChangePasswordRejectsReusedPassword(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	err := service.ChangePassword(context.Background(), ChangePasswordCommand{
		Current: "hunter2hunter2",
		Next:    "hunter2hunter2",
	})
	require.Error(t, err)
}

func TestAccountServiceChangePassword(t *testing.T) {
	api := mocks.NewMockAccountAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	cache := memory.New(time.Minute, nil, nil)
	service := NewAccountService(api, cache, sessions, nil, nil)

	sessions.EXPECT().Load(mockAnyContext()).Return(signedInSession(), nil)
	api.EXPECT().ChangePassword(mockAnyContext(), "hunter2hunter2", "correct-horse-battery").Return(nil).Once()

	err := service.ChangePassword(context.Background(), ChangePasswordCommand{
		Current: "hunter2hunter2",
		Next:    "correct-horse-battery",
	})
	require.NoError(t, err)
}
