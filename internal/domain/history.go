package domain

import "time"

// MaxRecentlyViewed bounds the recently-viewed list.
const MaxRecentlyViewed = 25

// PaperView is one recently-viewed entry.
type PaperView struct {
	PaperID  string
	Title    string
	ViewedAt time.Time
}

// PushRecentlyViewed inserts a view at the front, drops any older entry for
// the same paper, and trims the list to limit. A non-positive limit falls
// back to MaxRecentlyViewed.
func PushRecentlyViewed(views []PaperView, view PaperView, limit int) []PaperView {
	if limit <= 0 {
		limit = MaxRecentlyViewed
	}

	id := NormalizePaperID(view.PaperID)
	next := make([]PaperView, 0, len(views)+1)
	next = append(next, view)
	for _, existing := range views {
		if NormalizePaperID(existing.PaperID) == id {
			continue
		}
		next = append(next, existing)
	}

	if len(next) > limit {
		next = next[:limit]
	}

	return next
}
