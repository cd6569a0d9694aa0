package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_book_repository.go -package=mocks github.com/AniTigerSib/BookTrackerBackend/internal/book/domain BookRepository

type BookRepository interface {
	// GetByID returns (nil, nil) when the book does not exist.
	GetByID(ctx context.Context, bookID, userID int64) (*BookExtended, error)
	// ListByCategories returns only categories that have books, plus an
	// uncategorized bucket when uncategorized books exist.
	ListByCategories(ctx context.Context, userID int64) ([]CategoryBooks, error)
	// Search matches the query against name, abstract and author.
	Search(ctx context.Context, userID int64, query string) ([]Book, error)
	// ListMembers returns the books in the user's booklist or read set.
	ListMembers(ctx context.Context, kind MembershipKind, userID int64) ([]Book, error)
	// ToggleMembership flips the (userID, bookID) membership inside one
	// transaction and reports whether the row was added or removed.
	ToggleMembership(ctx context.Context, kind MembershipKind, userID, bookID int64) (bool, error)
	// UpsertRating creates or overwrites the user's rating of the book
	// inside one transaction.
	UpsertRating(ctx context.Context, userID, bookID int64, rating int) (*Rating, error)
}
