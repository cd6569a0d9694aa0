package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/domain"
	repo "github.com/AniTigerSib/BookTrackerBackend/internal/auth/repository/postgres"
	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
)

var userColumns = []string{"id", "login", "password_hash", "refresh_token", "created_at", "updated_at"}

func TestGetByLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		refresh := "stored-refresh"
		mock.ExpectQuery("SELECT id, login").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(7), "alice", "hash", &refresh, time.Now(), time.Now()))

		user, err := r.GetByLogin(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Login)
		require.NotNil(t, user.RefreshToken)
		assert.Equal(t, "stored-refresh", *user.RefreshToken)
	})

	t.Run("not found returns nil user, nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, login").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByLogin(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, login").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByLogin(ctx, "alice")
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success without refresh token", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, login").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(7), "alice", "hash", (*string)(nil), time.Now(), time.Now()))

		user, err := r.GetByID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Nil(t, user.RefreshToken)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, login").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	now := time.Now()
	user := &domain.User{Login: "alice", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}

	t.Run("success fills id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "hash", now, now).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		require.NoError(t, r.Create(ctx, user))
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("unique violation maps to ErrLoginTaken", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "hash", now, now).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, autherror.ErrLoginTaken)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "hash", now, now).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		require.Error(t, err)
		assert.NotErrorIs(t, err, autherror.ErrLoginTaken)
	})
}

func TestUpdateRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("set", func(t *testing.T) {
		token := "refresh-1"
		mock.ExpectExec("UPDATE users").
			WithArgs(int64(7), &token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateRefreshToken(ctx, 7, &token))
	})

	t.Run("clear", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(int64(7), (*string)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.UpdateRefreshToken(ctx, 7, nil))
	})
}

func TestSwapRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("wins the swap", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(int64(7), "old", "new").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		swapped, err := r.SwapRefreshToken(ctx, 7, "old", "new")
		require.NoError(t, err)
		assert.True(t, swapped)
	})

	t.Run("loses the swap", func(t *testing.T) {
		// Stored token no longer matches: a concurrent rotation or a
		// logout got there first.
		mock.ExpectExec("UPDATE users").
			WithArgs(int64(7), "stale", "new").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		swapped, err := r.SwapRefreshToken(ctx, 7, "stale", "new")
		require.NoError(t, err)
		assert.False(t, swapped)
	})
}
