package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// BookmarkService owns every mutation of the bookmark list and the cached
// view of it. A mutation applies the user's intent to the cache before the
// server confirms, then reconciles: on success the affected keys are marked
// stale so the next read replaces placeholders with server truth, on failure
// the pre-write snapshot is restored. The cache therefore always converges
// to server state no matter how the network call ends.
type BookmarkService struct {
	api      ports.PaperAPI
	cache    ports.QueryCache
	sessions ports.SessionStore
	notifier ports.Notifier
	clock    ports.Clock
	log      logger.Logger

	// mu serializes the optimistic phase of concurrent mutations. Each phase
	// (cancel, snapshot, compute, write) finishes before the next may start,
	// which is what keeps a rapid double toggle on one paper safe.
	mu sync.Mutex
}

func NewBookmarkService(api ports.PaperAPI, cache ports.QueryCache, sessions ports.SessionStore, notifier ports.Notifier, clock ports.Clock, log logger.Logger) *BookmarkService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &BookmarkService{
		api:      api,
		cache:    cache,
		sessions: sessions,
		notifier: notifier,
		clock:    clock,
		log:      log,
	}
}

// List returns the bookmark list, read through the cache.
func (s *BookmarkService) List(ctx context.Context) ([]domain.Bookmark, error) {
	if err := s.requireSession(ctx); err != nil {
		return nil, err
	}

	value, err := s.cache.Fetch(ctx, bookmarksKey, func(fctx context.Context) (any, error) {
		list, err := s.api.ListBookmarks(fctx)
		if err != nil {
			return nil, fmt.Errorf("list bookmarks: %w", err)
		}

		return list, nil
	})
	if err != nil {
		return nil, err
	}

	return asBookmarks(value), nil
}

// Toggle adds a bookmark for the paper when the cached list holds no entry
// for it and removes the known entry otherwise. An empty or missing cache
// counts as "not bookmarked", exactly like the list view it mirrors; if the
// server disagrees, the add comes back as a duplicate and is absorbed as a
// soft failure.
func (s *BookmarkService) Toggle(ctx context.Context, paperID string) error {
	if value, _, ok := s.cache.Get(bookmarksKey); ok {
		if _, found := domain.FindBookmark(asBookmarks(value), paperID); found {
			return s.Remove(ctx, paperID)
		}
	}

	return s.Add(ctx, paperID, "")
}

// Add bookmarks the paper with an optional note.
func (s *BookmarkService) Add(ctx context.Context, paperID string, notes string) error {
	paperID = domain.NormalizePaperID(paperID)

	if err := s.requireSession(ctx); err != nil {
		s.notifier.Failure("Sign in to bookmark papers", "")
		return err
	}

	snapshot := s.optimisticInsert(paperID, notes)

	record, err := s.api.AddBookmark(ctx, paperID, notes)
	if err != nil {
		return s.settleFailedAdd(paperID, snapshot, err)
	}

	s.invalidateAfterMutation(paperID)
	s.log.Debug("bookmark added",
		logger.String("paper_id", paperID),
		logger.String("bookmark_id", record.ID))
	s.notifier.Success("Bookmarked")

	return nil
}

// Remove deletes the bookmark for the paper. The delete needs the locally
// known bookmark id, so when the list was never fetched it is populated
// through the ordinary read path first; a paper with no entry after that
// fails with ErrBookmarkNotFound and no delete call is made.
func (s *BookmarkService) Remove(ctx context.Context, paperID string) error {
	paperID = domain.NormalizePaperID(paperID)

	if err := s.requireSession(ctx); err != nil {
		s.notifier.Failure("Sign in to manage bookmarks", "")
		return err
	}

	if _, _, ok := s.cache.Get(bookmarksKey); !ok {
		if _, err := s.List(ctx); err != nil {
			s.notifier.Failure("Could not remove bookmark", errDetail(err))
			return err
		}
	}

	snapshot, bookmarkID, err := s.optimisticRemove(paperID)
	if err != nil {
		s.notifier.Failure("No bookmark found for this paper", "")
		return err
	}

	if err := s.api.DeleteBookmark(ctx, bookmarkID); err != nil {
		s.restoreSnapshot(snapshot)
		s.notifier.Failure("Could not remove bookmark", errDetail(err))
		return fmt.Errorf("delete bookmark %s: %w", bookmarkID, err)
	}

	s.invalidateAfterMutation(paperID)
	s.log.Debug("bookmark removed",
		logger.String("paper_id", paperID),
		logger.String("bookmark_id", bookmarkID))
	s.notifier.Success("Bookmark removed")

	return nil
}

// bookmarkSnapshot captures the cached list right before an optimistic write
// so a failed mutation can restore exactly what was there. existed records
// whether the cache held an entry at all: restoring "no entry" writes nothing.
type bookmarkSnapshot struct {
	list    []domain.Bookmark
	existed bool
}

func (s *BookmarkService) takeSnapshot() bookmarkSnapshot {
	value, _, ok := s.cache.Get(bookmarksKey)
	if !ok {
		return bookmarkSnapshot{}
	}

	return bookmarkSnapshot{list: domain.CloneBookmarks(asBookmarks(value)), existed: true}
}

func (s *BookmarkService) restoreSnapshot(snapshot bookmarkSnapshot) {
	if !snapshot.existed {
		return
	}
	s.cache.Set(bookmarksKey, snapshot.list)
}

// optimisticInsert runs the write-ahead phase for an add: cancel the pending
// list fetch so its response cannot clobber the new value, snapshot, then
// prepend a placeholder entry. Without a cached list there is nothing to
// update and the phase is a no-op; the network call still proceeds.
func (s *BookmarkService) optimisticInsert(paperID string, notes string) bookmarkSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.CancelInFlight(bookmarksKey)
	snapshot := s.takeSnapshot()
	if !snapshot.existed {
		return snapshot
	}

	entry := domain.Bookmark{
		ID:        domain.TempBookmarkID(paperID),
		PaperID:   paperID,
		Notes:     notes,
		CreatedAt: s.clock.Now(),
	}
	s.cache.Set(bookmarksKey, domain.InsertBookmark(snapshot.list, entry))

	return snapshot
}

// optimisticRemove is the write-ahead phase for a remove. It resolves the
// bookmark id from the snapshot, so the caller never issues a delete for an
// id that was not known locally.
func (s *BookmarkService) optimisticRemove(paperID string) (bookmarkSnapshot, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.CancelInFlight(bookmarksKey)
	snapshot := s.takeSnapshot()

	entry, found := domain.FindBookmark(snapshot.list, paperID)
	if !found {
		return snapshot, "", fmt.Errorf("remove bookmark for paper %s: %w", paperID, domain.ErrBookmarkNotFound)
	}

	next, _ := domain.RemoveBookmark(snapshot.list, paperID)
	s.cache.Set(bookmarksKey, next)

	return snapshot, entry.ID, nil
}

func (s *BookmarkService) settleFailedAdd(paperID string, snapshot bookmarkSnapshot, err error) error {
	if errors.Is(err, domain.ErrDuplicateBookmark) {
		// The server already holds this bookmark, so its state, not the
		// snapshot, is the truth. Invalidate instead of rolling back; the
		// next read swaps the placeholder for the real entry.
		s.cache.MarkStale(bookmarksKey)
		s.log.Debug("duplicate bookmark absorbed", logger.String("paper_id", paperID))
		s.notifier.Info("Already bookmarked")

		return nil
	}

	s.restoreSnapshot(snapshot)
	s.notifier.Failure("Could not bookmark paper", errDetail(err))

	return fmt.Errorf("add bookmark for paper %s: %w", paperID, err)
}

// invalidateAfterMutation marks every cached view that shows bookmark state:
// the list itself, the paper's detail entry with its bookmark count, and all
// search pages. Values stay readable until the next fetch replaces them.
func (s *BookmarkService) invalidateAfterMutation(paperID string) {
	s.cache.MarkStale(bookmarksKey)
	s.cache.MarkStale(paperDetailKey(paperID))
	s.cache.MarkStale(searchResultsKey)
}

func (s *BookmarkService) requireSession(ctx context.Context) error {
	_, err := loadSession(ctx, s.sessions, s.log)
	return err
}

// asBookmarks narrows a cached value. The bookmarks key only ever stores
// []domain.Bookmark; any other shape reads as an empty list.
func asBookmarks(value any) []domain.Bookmark {
	list, _ := value.([]domain.Bookmark)
	return list
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
