package session

import (
	"context"
	"errors"
	"fmt"

	toml "github.com/JiYeong0127/paperdeck/internal/adapters/repo/toml"
	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// TokenSecretKey is where the session token lives inside the secret store.
const TokenSecretKey = "paperdeck/session/token"

// Store is the ports.SessionStore backed by two places: the state file
// holds the session record, the secret store holds the token itself.
type Store struct {
	records *toml.Repository
	secrets ports.SecretStore
	clock   ports.Clock
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(records *toml.Repository, secrets ports.SecretStore, clock ports.Clock) *Store {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Store{records: records, secrets: secrets, clock: clock}
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	record, err := s.records.LoadSession(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	token, err := s.secrets.Get(ctx, record.SecretRef)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session token: %w", err)
	}

	return domain.Session{
		Token:       token,
		DisplayName: record.DisplayName,
		Email:       record.Email,
		SavedAt:     record.SavedAt,
	}, nil
}

// Save writes the token to the secret store first so a half-written state
// never leaves a record pointing at a missing secret.
func (s *Store) Save(ctx context.Context, session domain.Session) error {
	if !session.IsAuthenticated() {
		return errors.New("refusing to save a session without a token")
	}

	if err := s.secrets.Put(ctx, TokenSecretKey, session.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	record := toml.SessionRecord{
		DisplayName: session.DisplayName,
		Email:       session.Email,
		SecretRef:   TokenSecretKey,
		SavedAt:     s.clock.Now().UTC(),
	}
	if err := s.records.SaveSession(ctx, record); err != nil {
		return fmt.Errorf("store session record: %w", err)
	}

	return nil
}

// Clear signs the client out locally. Clearing when nobody is signed in
// is not an error.
func (s *Store) Clear(ctx context.Context) error {
	record, err := s.records.LoadSession(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.records.ClearSession(ctx); err != nil {
		return err
	}

	ref := record.SecretRef
	if ref == "" {
		ref = TokenSecretKey
	}
	if err := s.secrets.Delete(ctx, ref); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	return nil
}
