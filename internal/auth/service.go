package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service wires the credential hasher, the token issuer and the account
// store into the registration and login flows. It holds no mutable state
// beyond the immutable issuer configuration and is safe for concurrent use.
type Service struct {
	store  Store
	issuer *Issuer
}

// NewService constructs the authentication service.
func NewService(store Store, issuer *Issuer) *Service {
	return &Service{store: store, issuer: issuer}
}

// RegisterUser hashes the password and inserts a new user record.
// A username or email already taken surfaces as ErrAlreadyExists; the store
// resolves races between concurrent registrations via its unique constraint.
func (s *Service) RegisterUser(ctx context.Context, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &User{Username: username, Email: email, PasswordHash: hash}
	if err := s.store.Users(ctx).Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates an end-user and mints a user-class token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) LoginUser(ctx context.Context, username, password string) (string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.store.Users(ctx).FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.issuer.MintUser(user.Username, user.ID)
}

// LoginAdmin authenticates against the admin namespace and mints an
// admin-class token.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	admin, err := s.store.Admins(ctx).FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.issuer.MintAdmin(admin.Username)
}

// Authenticate validates a bearer token and resolves the asserted identity.
// Tokens are self-contained; a token stays valid until its expiry regardless
// of later account changes.
func (s *Service) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := s.issuer.Validate(token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return identityFromClaims(claims), nil
}
