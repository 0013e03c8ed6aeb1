package application

import "time"

// AuthStatus is the local view of the auth state, served without a network
// call. A missing session reads as the zero value.
type AuthStatus struct {
	SignedIn    bool
	DisplayName string
	Email       string
	SavedAt     time.Time
}
