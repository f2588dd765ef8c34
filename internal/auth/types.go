package auth

import (
	"strings"
	"time"
)

// User is an end-user account. Usernames are unique among users only;
// the admin namespace is entirely separate.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Admin is the administrator account. Structurally a stripped-down User,
// but admins and users never share an identity space.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountClass names one of the two disjoint credential namespaces.
type AccountClass string

const (
	ClassUser  AccountClass = "user"
	ClassAdmin AccountClass = "admin"
)

// Identity is the authenticated party resolved from a validated token.
// Callers branch on Class to know which account namespace authenticated.
type Identity struct {
	Class    AccountClass
	Username string
	UserID   int64
}

// identityFromClaims recovers the account class from the token subject:
// user tokens carry a namespaced subject ("user:<name>") plus a numeric
// account id, admin tokens carry the bare username.
func identityFromClaims(claims *Claims) Identity {
	if name, ok := strings.CutPrefix(claims.Subject, userSubjectPrefix); ok {
		return Identity{Class: ClassUser, Username: name, UserID: claims.UserID}
	}
	return Identity{Class: ClassAdmin, Username: claims.Subject}
}
