package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mikas-m/wortschatz/internal/logger"
	"github.com/mikas-m/wortschatz/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	return &DB{DB: db, logger: l}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &userRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "heinrich",
		PasswordHash: "hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(1, user.Username, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "heinrich"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "heinrich"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "heinrich"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(1, "heinrich", "hash", now)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("heinrich").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "heinrich")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "heinrich" {
		t.Errorf("expected username heinrich, got %s", found.Username)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("heinrich").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "heinrich")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("heinrich").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByUsername(ctx, "heinrich")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
