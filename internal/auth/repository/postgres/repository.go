package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/domain"
	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// implements it for tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, refresh_token, created_at, updated_at
		FROM users
		WHERE login = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, login)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, refresh_token, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (login, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return autherror.ErrLoginTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, userID int64, token *string) error {
	query := `
		UPDATE users
		SET refresh_token = $2, updated_at = now()
		WHERE id = $1;
	`
	_, err := r.db.Exec(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	return nil
}

// SwapRefreshToken is the linearization point for refresh rotation: the
// UPDATE only lands while the stored token still equals old.
func (r *PostgresRepository) SwapRefreshToken(ctx context.Context, userID int64, old, new string) (bool, error) {
	query := `
		UPDATE users
		SET refresh_token = $3, updated_at = now()
		WHERE id = $1 AND refresh_token = $2;
	`
	tag, err := r.db.Exec(ctx, query, userID, old, new)
	if err != nil {
		return false, fmt.Errorf("failed to swap refresh token: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
