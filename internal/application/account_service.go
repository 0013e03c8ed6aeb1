package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// AccountService handles sign-up, sign-in and account management. A
// successful register or login persists the granted session locally; the
// token value itself only ever touches the secret store, never the state
// file. The service trusts server-issued tokens as-is and never inspects
// their contents.
type AccountService struct {
	api      ports.AccountAPI
	cache    ports.QueryCache
	sessions ports.SessionStore
	validate *validator.Validate
	clock    ports.Clock
	log      logger.Logger
}

func NewAccountService(api ports.AccountAPI, cache ports.QueryCache, sessions ports.SessionStore, clock ports.Clock, log logger.Logger) *AccountService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &AccountService{
		api:      api,
		cache:    cache,
		sessions: sessions,
		validate: validator.New(),
		clock:    clock,
		log:      log,
	}
}

func (s *AccountService) Register(ctx context.Context, cmd RegisterCommand) (domain.Session, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Session{}, fmt.Errorf("validate register command: %w", err)
	}

	grant, err := s.api.Register(ctx, cmd.Email, cmd.Password, cmd.DisplayName)
	if err != nil {
		return domain.Session{}, fmt.Errorf("register account: %w", err)
	}

	return s.adoptGrant(ctx, grant)
}

func (s *AccountService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Session{}, fmt.Errorf("validate login command: %w", err)
	}

	grant, err := s.api.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.adoptGrant(ctx, grant)
}

// adoptGrant persists the granted session and drops every cached view tied
// to the previous identity.
func (s *AccountService) adoptGrant(ctx context.Context, grant domain.AuthGrant) (domain.Session, error) {
	session := domain.Session{
		Token:       grant.Token,
		DisplayName: grant.DisplayName,
		Email:       grant.Email,
		SavedAt:     s.clock.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.cache.MarkStale(accountKey)
	s.cache.MarkStale(bookmarksKey)

	return session, nil
}

// Logout revokes the session server-side on a best-effort basis and always
// clears the local one.
func (s *AccountService) Logout(ctx context.Context) error {
	if _, err := loadSession(ctx, s.sessions, s.log); err != nil {
		return err
	}

	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("remote logout", logger.Error(err))
	}

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.cache.MarkStale(accountKey)
	s.cache.MarkStale(bookmarksKey)

	return nil
}

// Status reports the locally stored identity without touching the network.
func (s *AccountService) Status(ctx context.Context) (AuthStatus, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return AuthStatus{}, nil
		}

		return AuthStatus{}, fmt.Errorf("load session: %w", err)
	}

	return AuthStatus{
		SignedIn:    session.IsAuthenticated(),
		DisplayName: session.DisplayName,
		Email:       session.Email,
		SavedAt:     session.SavedAt,
	}, nil
}

// Me returns the server-side account profile, read through the cache.
func (s *AccountService) Me(ctx context.Context) (domain.Account, error) {
	if _, err := loadSession(ctx, s.sessions, s.log); err != nil {
		return domain.Account{}, err
	}

	value, err := s.cache.Fetch(ctx, accountMeKey, func(fctx context.Context) (any, error) {
		account, err := s.api.GetAccount(fctx)
		if err != nil {
			return nil, fmt.Errorf("get account: %w", err)
		}

		return account, nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	account, _ := value.(domain.Account)

	return account, nil
}

// UpdateDisplayName renames the account and keeps the local session record
// in step with the server's answer.
func (s *AccountService) UpdateDisplayName(ctx context.Context, cmd UpdateDisplayNameCommand) (domain.Account, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Account{}, fmt.Errorf("validate display name: %w", err)
	}

	session, err := loadSession(ctx, s.sessions, s.log)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.api.UpdateDisplayName(ctx, cmd.DisplayName)
	if err != nil {
		return domain.Account{}, fmt.Errorf("update display name: %w", err)
	}

	s.cache.MarkStale(accountKey)

	session.DisplayName = account.DisplayName
	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Warn("refresh stored session", logger.Error(err))
	}

	return account, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("validate password change: %w", err)
	}

	if _, err := loadSession(ctx, s.sessions, s.log); err != nil {
		return err
	}

	if err := s.api.ChangePassword(ctx, cmd.Current, cmd.Next); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	return nil
}

// loadSession returns the stored session, or ErrUnauthenticated when none is
// usable. Read failures other than a plain missing session are logged, not
// surfaced; either way the caller only learns "not signed in".
func loadSession(ctx context.Context, sessions ports.SessionStore, log logger.Logger) (domain.Session, error) {
	session, err := sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			log.Warn("load session", logger.Error(err))
		}

		return domain.Session{}, domain.ErrUnauthenticated
	}
	if !session.IsAuthenticated() {
		return domain.Session{}, domain.ErrUnauthenticated
	}

	return session, nil
}
