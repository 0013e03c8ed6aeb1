package domain

import "time"

// Account is the server's view of the signed-in user.
type Account struct {
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// AuthGrant is what a successful register or login returns.
type AuthGrant struct {
	Token       string
	DisplayName string
	Email       string
}
