package domain

import (
	"strings"
	"time"
)

// tempBookmarkIDPrefix marks a client-assigned placeholder id. Server-assigned
// ids never carry it, so a pending optimistic row is always distinguishable.
const tempBookmarkIDPrefix = "temp-"

// Bookmark is a saved relationship between the signed-in user and a paper.
// Before the server confirms a create, ID holds a TempBookmarkID placeholder;
// after the next refetch it holds the server-assigned id.
type Bookmark struct {
	ID        string
	PaperID   string
	Notes     string
	Paper     *PaperSummary
	CreatedAt time.Time
}

func TempBookmarkID(paperID string) string {
	return tempBookmarkIDPrefix + NormalizePaperID(paperID)
}

// Pending reports whether the bookmark still carries a placeholder id.
func (b Bookmark) Pending() bool {
	return strings.HasPrefix(b.ID, tempBookmarkIDPrefix)
}

// Matches reports whether this bookmark refers to the given paper. Rows from
// the list endpoint populate PaperID directly; rows hydrated from a paper
// detail response carry the id inside the embedded summary instead. Both
// forms are normalized before comparison.
func (b Bookmark) Matches(paperID string) bool {
	want := NormalizePaperID(paperID)
	if want == "" {
		return false
	}
	if NormalizePaperID(b.PaperID) == want {
		return true
	}
	if b.Paper != nil && NormalizePaperID(b.Paper.ID) == want {
		return true
	}

	return false
}

func (b Bookmark) Clone() Bookmark {
	clone := b
	if b.Paper != nil {
		summary := *b.Paper
		summary.Authors = append([]string(nil), b.Paper.Authors...)
		clone.Paper = &summary
	}

	return clone
}

// CloneBookmarks deep-copies a bookmark list. Rollback snapshots must not
// alias the live cache value.
func CloneBookmarks(list []Bookmark) []Bookmark {
	if list == nil {
		return nil
	}

	cloned := make([]Bookmark, len(list))
	for i, bookmark := range list {
		cloned[i] = bookmark.Clone()
	}

	return cloned
}

// FindBookmark returns the first entry matching the paper id.
func FindBookmark(list []Bookmark, paperID string) (Bookmark, bool) {
	for _, bookmark := range list {
		if bookmark.Matches(paperID) {
			return bookmark, true
		}
	}

	return Bookmark{}, false
}

// InsertBookmark prepends a synthesized entry for the paper unless the list
// already holds one, so repeated optimistic inserts stay idempotent.
func InsertBookmark(list []Bookmark, entry Bookmark) []Bookmark {
	if _, ok := FindBookmark(list, entry.PaperID); ok {
		return CloneBookmarks(list)
	}

	next := make([]Bookmark, 0, len(list)+1)
	next = append(next, entry)
	next = append(next, CloneBookmarks(list)...)

	return next
}

// RemoveBookmark returns the list without the entry for the paper and whether
// an entry was found at all.
func RemoveBookmark(list []Bookmark, paperID string) ([]Bookmark, bool) {
	next := make([]Bookmark, 0, len(list))
	found := false
	for _, bookmark := range list {
		if !found && bookmark.Matches(paperID) {
			found = true
			continue
		}
		next = append(next, bookmark.Clone())
	}

	return next, found
}
