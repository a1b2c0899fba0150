package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:users_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM users;`)
	require.NoError(t, err)
	return db
}

func newUser(email string) *models.User {
	return &models.User{
		ID:           uuid.NewString(),
		Name:         "alice",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0",
	}
}

func TestCreate_AssignsCreatedAt(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)

	u, err := repo.Create(context.Background(), newUser("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("a@x.com"))
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestGetByEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "alice", got.Name)
	require.Equal(t, created.PasswordHash, got.PasswordHash)
}

func TestGetByEmail_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)

	_, err := repo.GetByEmail(context.Background(), "absent@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)

	_, err = repo.GetByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_DBError(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.GetByID(context.Background(), "any")
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrorNotFound))
}
