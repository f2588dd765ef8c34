package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestUserStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Now().UTC()
	mock.ExpectQuery("insert into users").
		WithArgs("alice", "alice@example.com", "salt$digest").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	store := NewPGStore(db)
	user := &User{Username: "alice", Email: "alice@example.com", PasswordHash: "salt$digest"}
	if err := store.Users(context.Background()).Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected id 7, got %d", user.ID)
	}
	if !user.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at %v, got %v", created, user.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStoreCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("insert into users").
		WithArgs("alice", "alice@example.com", "salt$digest").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	store := NewPGStore(db)
	user := &User{Username: "alice", Email: "alice@example.com", PasswordHash: "salt$digest"}
	err = store.Users(context.Background()).Create(context.Background(), user)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStoreFindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(int64(3), "alice", "alice@example.com", "salt$digest", created)
	mock.ExpectQuery("select id, username, email, password_hash, created_at from users").
		WithArgs("alice").
		WillReturnRows(rows)

	store := NewPGStore(db)
	user, err := store.Users(context.Background()).FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if user.ID != 3 || user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserStoreFindByUsernameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select id, username, email, password_hash, created_at from users").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	store := NewPGStore(db)
	if _, err := store.Users(context.Background()).FindByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminStoreFindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
		AddRow(int64(1), "admin", "salt$digest", created)
	mock.ExpectQuery("select id, username, password_hash, created_at from admins").
		WithArgs("admin").
		WillReturnRows(rows)

	store := NewPGStore(db)
	admin, err := store.Admins(context.Background()).FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if admin.ID != 1 || admin.Username != "admin" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
}

func TestUserStoreCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`select count\(\*\) from users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	store := NewPGStore(db)
	n, err := store.Users(context.Background()).Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 users, got %d", n)
	}
}
