package service

import (
	"context"

	"github.com/AniTigerSib/BookTrackerBackend/internal/book/domain"
	bookerror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

// BookService exposes the catalog reads and the toggle/rating mutations.
// All mutations run inside a single repository transaction; the service
// itself holds no state beyond the injected repository.
type BookService struct {
	repo domain.BookRepository
}

func NewBookService(repo domain.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) ListByCategories(ctx context.Context, userID int64) ([]domain.CategoryBooks, error) {
	return s.repo.ListByCategories(ctx, userID)
}

func (s *BookService) Search(ctx context.Context, userID int64, query string) ([]domain.Book, error) {
	return s.repo.Search(ctx, userID, query)
}

func (s *BookService) GetByID(ctx context.Context, userID, bookID int64) (*domain.BookExtended, error) {
	book, err := s.repo.GetByID(ctx, bookID, userID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, bookerror.ErrBookNotFound
	}

	return book, nil
}

func (s *BookService) Booklist(ctx context.Context, userID int64) ([]domain.Book, error) {
	return s.repo.ListMembers(ctx, domain.KindBooklist, userID)
}

func (s *BookService) ReadList(ctx context.Context, userID int64) ([]domain.Book, error) {
	return s.repo.ListMembers(ctx, domain.KindRead, userID)
}

func (s *BookService) ToggleBooklist(ctx context.Context, userID, bookID int64) (*domain.ToggleResult, error) {
	return s.toggle(ctx, domain.KindBooklist, userID, bookID)
}

func (s *BookService) ToggleRead(ctx context.Context, userID, bookID int64) (*domain.ToggleResult, error) {
	return s.toggle(ctx, domain.KindRead, userID, bookID)
}

func (s *BookService) toggle(ctx context.Context, kind domain.MembershipKind, userID, bookID int64) (*domain.ToggleResult, error) {
	added, err := s.repo.ToggleMembership(ctx, kind, userID, bookID)
	if err != nil {
		return nil, err
	}

	return &domain.ToggleResult{UserID: userID, BookID: bookID, Added: added}, nil
}

// Rate validates the rating bounds before touching storage, then upserts.
func (s *BookService) Rate(ctx context.Context, userID, bookID int64, rating int) (*domain.Rating, error) {
	if rating < constant.RatingMin || rating > constant.RatingMax {
		return nil, bookerror.ErrInvalidRating
	}

	return s.repo.UpsertRating(ctx, userID, bookID, rating)
}
