package freeconnect

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the cached profile returned by the backend on login. Field names
// mirror the API's JSON contract.
type User struct {
	ID          uint    `json:"user_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"`
	Bio         string  `json:"bio,omitempty"`
	CompanyName string  `json:"company_name,omitempty"`
	HourlyRate  float64 `json:"hourly_rate,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// Session is the in-memory record of who is using the client right now.
// A populated User is the authentication signal guards rely on; Token is the
// bearer credential sent with every request. Both are set and cleared
// together by the Authenticator, never independently.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session carries a user profile.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// HasRole reports whether the session's user holds the given role.
func (s Session) HasRole(role Role) bool {
	return s.User != nil && s.User.Role == role
}

func (s Session) String() string {
	if s.User == nil {
		return "anonymous"
	}
	return fmt.Sprintf("user=%d role=%s name=%q", s.User.ID, s.User.Role, s.User.Name)
}

// TokenClaims is the decoded, UNVERIFIED payload of the backend's bearer
// token. The client treats the token as opaque for authentication purposes;
// claims exist for display only (e.g. showing when a session expires) and
// must never gate access.
type TokenClaims struct {
	UserID    uint       `json:"user_id"`
	UserRole  string     `json:"user_role"`
	Issuer    string     `json:"-"`
	IssuedAt  *time.Time `json:"-"`
	ExpiresAt *time.Time `json:"-"`
}

type rawTokenClaims struct {
	UserID   uint   `json:"user_id"`
	UserRole string `json:"user_role"`
	jwt.RegisteredClaims
}

// Claims decodes the session token without verifying its signature.
// Verification is the backend's job; there is no shared key on the client.
func (s Session) Claims() (*TokenClaims, error) {
	if s.Token == "" {
		return nil, ErrNoSession
	}

	raw := &rawTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, raw); err != nil {
		return nil, badResponseError(fmt.Sprintf("cannot decode session token: %s", err))
	}

	claims := &TokenClaims{
		UserID:   raw.UserID,
		UserRole: raw.UserRole,
		Issuer:   raw.Issuer,
	}
	if raw.IssuedAt != nil {
		t := raw.IssuedAt.Time
		claims.IssuedAt = &t
	}
	if raw.ExpiresAt != nil {
		t := raw.ExpiresAt.Time
		claims.ExpiresAt = &t
	}

	return claims, nil
}
