package ports

import (
	"context"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

// PaperAPI is the remote paper-service surface for catalog reads and
// bookmark writes.
type PaperAPI interface {
	SearchPapers(ctx context.Context, query domain.SearchQuery) (domain.SearchPage, error)
	GetPaper(ctx context.Context, paperID string) (domain.Paper, error)
	ListBookmarks(ctx context.Context) ([]domain.Bookmark, error)
	// AddBookmark fails with domain.ErrDuplicateBookmark when the paper is
	// already bookmarked server-side.
	AddBookmark(ctx context.Context, paperID string, notes string) (domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, bookmarkID string) error
}

// AccountAPI is the remote auth and account-management surface.
type AccountAPI interface {
	Register(ctx context.Context, email, password, displayName string) (domain.AuthGrant, error)
	Login(ctx context.Context, email, password string) (domain.AuthGrant, error)
	Logout(ctx context.Context) error
	GetAccount(ctx context.Context) (domain.Account, error)
	UpdateDisplayName(ctx context.Context, displayName string) (domain.Account, error)
	ChangePassword(ctx context.Context, current, next string) error
}
