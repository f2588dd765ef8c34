package memstore

import (
	"context"
	"errors"
	"testing"

	"eduportal.org/internal/auth"
)

func TestUserUniquenessByUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	m := New()

	first := &auth.User{Username: "alice", Email: "alice@example.com", PasswordHash: "a$b"}
	if err := m.Users(ctx).Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Fatalf("create must assign id and timestamp: %+v", first)
	}

	dupName := &auth.User{Username: "alice", Email: "other@example.com", PasswordHash: "a$b"}
	if err := m.Users(ctx).Create(ctx, dupName); !errors.Is(err, auth.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate username, got %v", err)
	}
	dupMail := &auth.User{Username: "bob", Email: "alice@example.com", PasswordHash: "a$b"}
	if err := m.Users(ctx).Create(ctx, dupMail); !errors.Is(err, auth.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate email, got %v", err)
	}

	n, err := m.Users(ctx).Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestNamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.Admins(ctx).Create(ctx, &auth.Admin{Username: "alice", PasswordHash: "a$b"}); err != nil {
		t.Fatalf("Create admin: %v", err)
	}
	if err := m.Users(ctx).Create(ctx, &auth.User{Username: "alice", Email: "alice@example.com", PasswordHash: "c$d"}); err != nil {
		t.Fatalf("user creation must not collide with admin namespace: %v", err)
	}

	admin, err := m.Admins(ctx).FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername admin: %v", err)
	}
	user, err := m.Users(ctx).FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername user: %v", err)
	}
	if admin.PasswordHash == user.PasswordHash {
		t.Fatal("expected distinct records in the two namespaces")
	}
}

func TestFindReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.Users(ctx).Create(ctx, &auth.User{Username: "alice", Email: "alice@example.com", PasswordHash: "a$b"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := m.Users(ctx).FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	got.PasswordHash = "mutated"

	again, err := m.Users(ctx).FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if again.PasswordHash != "a$b" {
		t.Fatal("callers must not be able to mutate stored records")
	}
}
