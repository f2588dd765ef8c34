package auth

import "context"

// Store describes the persistence operations the auth subsystem consumes.
// Username uniqueness within each account class is enforced by the store.
type Store interface {
	Users(ctx context.Context) UserStore
	Admins(ctx context.Context) AdminStore
}

// UserStore manages end-user accounts.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

// AdminStore manages administrator accounts.
type AdminStore interface {
	Create(ctx context.Context, a *Admin) error
	FindByUsername(ctx context.Context, username string) (*Admin, error)
}
