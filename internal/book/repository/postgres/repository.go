package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AniTigerSib/BookTrackerBackend/internal/book/domain"
	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// implements it for tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// membershipTables maps a kind to its join table. Table names are never
// taken from request input.
var membershipTables = map[domain.MembershipKind]string{
	domain.KindBooklist: "booklist_books",
	domain.KindRead:     "read_books",
}

func (r *PostgresRepository) GetByID(ctx context.Context, bookID, userID int64) (*domain.BookExtended, error) {
	query := `
		SELECT b.id, b.name, b.cover, b.author, b.language, b.year,
		       b.original_name, b.pages, b.abstract, b.avg_rating,
		       COALESCE(c.name, $3),
		       EXISTS (SELECT 1 FROM read_books r WHERE r.user_id = $2 AND r.book_id = b.id),
		       EXISTS (SELECT 1 FROM booklist_books l WHERE l.user_id = $2 AND l.book_id = b.id)
		FROM books b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1;
	`
	row := r.db.QueryRow(ctx, query, bookID, userID, constant.UncategorizedName)

	var book domain.BookExtended
	err := row.Scan(
		&book.ID, &book.Name, &book.Cover, &book.Author, &book.Language, &book.Year,
		&book.OriginalName, &book.Pages, &book.Abstract, &book.AvgRating,
		&book.Category, &book.IsRead, &book.IsInBooklist,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &book, nil
}

func (r *PostgresRepository) ListByCategories(ctx context.Context, userID int64) ([]domain.CategoryBooks, error) {
	query := `
		SELECT c.id, c.name, b.id, b.name, b.cover, b.avg_rating,
		       EXISTS (SELECT 1 FROM read_books r WHERE r.user_id = $1 AND r.book_id = b.id)
		FROM categories c
		JOIN books b ON b.category_id = c.id
		ORDER BY c.id, b.id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryBooks
	for rows.Next() {
		var (
			catID   int64
			catName string
			book    domain.Book
		)
		if err := rows.Scan(&catID, &catName, &book.ID, &book.Name, &book.Cover, &book.AvgRating, &book.IsRead); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}

		if len(result) == 0 || result[len(result)-1].ID != catID {
			result = append(result, domain.CategoryBooks{ID: catID, Name: catName})
		}
		last := &result[len(result)-1]
		last.Books = append(last.Books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}

	uncategorized, err := r.listUncategorized(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(uncategorized) > 0 {
		result = append(result, domain.CategoryBooks{
			ID:    constant.UncategorizedID,
			Name:  constant.UncategorizedName,
			Books: uncategorized,
		})
	}

	return result, nil
}

func (r *PostgresRepository) listUncategorized(ctx context.Context, userID int64) ([]domain.Book, error) {
	query := `
		SELECT b.id, b.name, b.cover, b.avg_rating,
		       EXISTS (SELECT 1 FROM read_books r WHERE r.user_id = $1 AND r.book_id = b.id)
		FROM books b
		WHERE b.category_id IS NULL
		ORDER BY b.id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncategorized books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepository) Search(ctx context.Context, userID int64, query string) ([]domain.Book, error) {
	sqlQuery := `
		SELECT b.id, b.name, b.cover, b.avg_rating,
		       EXISTS (SELECT 1 FROM read_books r WHERE r.user_id = $1 AND r.book_id = b.id)
		FROM books b
		WHERE b.name ILIKE '%' || $2 || '%'
		   OR b.abstract ILIKE '%' || $2 || '%'
		   OR b.author ILIKE '%' || $2 || '%'
		ORDER BY b.id;
	`
	rows, err := r.db.Query(ctx, sqlQuery, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *PostgresRepository) ListMembers(ctx context.Context, kind domain.MembershipKind, userID int64) ([]domain.Book, error) {
	table, ok := membershipTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown membership kind %q", kind)
	}

	exists, err := r.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, autherror.ErrUserNotFound
	}

	query := fmt.Sprintf(`
		SELECT b.id, b.name, b.cover, b.avg_rating,
		       EXISTS (SELECT 1 FROM read_books r WHERE r.user_id = $1 AND r.book_id = b.id)
		FROM %s m
		JOIN books b ON b.id = m.book_id
		WHERE m.user_id = $1
		ORDER BY b.id;
	`, table)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s books: %w", kind, err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// ToggleMembership runs the whole toggle inside one transaction. The user
// row is locked FOR UPDATE, which serializes concurrent toggles for the
// same pair: the second transaction blocks on the lock and then sees the
// first one's effect. The book row is locked FOR SHARE so a concurrent
// book deletion cannot orphan the inserted membership.
func (r *PostgresRepository) ToggleMembership(ctx context.Context, kind domain.MembershipKind, userID, bookID int64) (bool, error) {
	table, ok := membershipTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown membership kind %q", kind)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockParents(ctx, tx, userID, bookID); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND book_id = $2;`, table),
		userID, bookID)
	if err != nil {
		return false, fmt.Errorf("failed to delete membership: %w", err)
	}

	added := false
	if tag.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (user_id, book_id) VALUES ($1, $2);`, table),
			userID, bookID); err != nil {
			return false, fmt.Errorf("failed to insert membership: %w", err)
		}
		added = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit toggle transaction: %w", err)
	}

	return added, nil
}

func (r *PostgresRepository) UpsertRating(ctx context.Context, userID, bookID int64, rating int) (*domain.Rating, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin rating transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockParents(ctx, tx, userID, bookID); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO ratings (user_id, book_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET rating = EXCLUDED.rating
		RETURNING user_id, book_id, rating;
	`

	var result domain.Rating
	if err := tx.QueryRow(ctx, query, userID, bookID, rating).Scan(&result.UserID, &result.BookID, &result.Rating); err != nil {
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rating transaction: %w", err)
	}

	return &result, nil
}

// lockParents verifies both parents exist inside the transaction and
// takes the locks the mutation relies on.
func lockParents(ctx context.Context, tx pgx.Tx, userID, bookID int64) error {
	var id int64

	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE;`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return autherror.ErrUserNotFound
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}

	err = tx.QueryRow(ctx, `SELECT id FROM books WHERE id = $1 FOR SHARE;`, bookID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return autherror.ErrBookNotFound
		}
		return fmt.Errorf("failed to lock book row: %w", err)
	}

	return nil
}

func (r *PostgresRepository) userExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

func scanBooks(rows pgx.Rows) ([]domain.Book, error) {
	books := make([]domain.Book, 0)
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Cover, &b.AvgRating, &b.IsRead); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}

	return books, nil
}
