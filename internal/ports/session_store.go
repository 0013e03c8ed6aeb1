package ports

import (
	"context"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

// SessionStore persists the locally held auth session.
type SessionStore interface {
	// Load returns the stored session, or domain.ErrSessionNotFound when none
	// has been saved.
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
