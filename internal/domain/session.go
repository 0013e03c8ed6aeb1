package domain

import (
	"strings"
	"time"
)

// Session is the locally persisted auth state: a server-issued bearer token
// plus the display identity shown in the UI. The client never interprets the
// token beyond presence.
type Session struct {
	Token       string
	DisplayName string
	Email       string
	SavedAt     time.Time
}

// IsAuthenticated reports whether a usable token is present. Token presence
// is the single source of the logged-in state; mutations must check it before
// touching the network or the cache.
func (s Session) IsAuthenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}
