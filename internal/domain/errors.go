package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("not signed in")
	ErrSessionNotFound   = errors.New("session not found")
	ErrPaperNotFound     = errors.New("paper not found")
	ErrBookmarkNotFound  = errors.New("bookmark entry not found")
	ErrDuplicateBookmark = errors.New("paper is already bookmarked")
)
