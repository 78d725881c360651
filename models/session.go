package models

import "time"

// BackendSession is an authenticated session with the health-vault server.
type BackendSession struct {
	// AccessToken is the bearer token sent with authenticated requests.
	AccessToken string `json:"access_token"`

	// UserID is the account (and profile) id the token was issued for.
	UserID string `json:"user_id"`

	// Email is the account email.
	Email string `json:"email"`

	// ExpiresAt is the token expiry.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s BackendSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// BackendUser is the account part of a sign-up or sign-in response.
type BackendUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionResponse is the body of sign-in and session endpoints.
type SessionResponse struct {
	User      BackendUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}
