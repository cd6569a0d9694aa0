package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniTigerSib/BookTrackerBackend/internal/book/domain"
	"github.com/AniTigerSib/BookTrackerBackend/internal/book/service"
	bookerror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/internal/mocks"
)

func TestGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	bookService := service.NewBookService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		expected := &domain.BookExtended{
			ID:           10,
			Name:         "Dune",
			Author:       "Frank Herbert",
			IsRead:       true,
			IsInBooklist: false,
		}
		mockRepo.EXPECT().GetByID(ctx, int64(10), int64(7)).Return(expected, nil)

		book, err := bookService.GetByID(ctx, 7, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, book)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, int64(99), int64(7)).Return(nil, nil)

		_, err := bookService.GetByID(ctx, 7, 99)
		assert.ErrorIs(t, err, bookerror.ErrBookNotFound)
	})
}

func TestToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	bookService := service.NewBookService(mockRepo)
	ctx := context.Background()

	t.Run("booklist add", func(t *testing.T) {
		mockRepo.EXPECT().ToggleMembership(ctx, domain.KindBooklist, int64(7), int64(10)).Return(true, nil)

		result, err := bookService.ToggleBooklist(ctx, 7, 10)
		require.NoError(t, err)
		assert.Equal(t, &domain.ToggleResult{UserID: 7, BookID: 10, Added: true}, result)
	})

	t.Run("booklist remove", func(t *testing.T) {
		mockRepo.EXPECT().ToggleMembership(ctx, domain.KindBooklist, int64(7), int64(10)).Return(false, nil)

		result, err := bookService.ToggleBooklist(ctx, 7, 10)
		require.NoError(t, err)
		assert.False(t, result.Added)
	})

	t.Run("read add", func(t *testing.T) {
		mockRepo.EXPECT().ToggleMembership(ctx, domain.KindRead, int64(7), int64(10)).Return(true, nil)

		result, err := bookService.ToggleRead(ctx, 7, 10)
		require.NoError(t, err)
		assert.True(t, result.Added)
	})

	t.Run("unknown book", func(t *testing.T) {
		mockRepo.EXPECT().ToggleMembership(ctx, domain.KindRead, int64(7), int64(99)).Return(false, bookerror.ErrBookNotFound)

		_, err := bookService.ToggleRead(ctx, 7, 99)
		assert.ErrorIs(t, err, bookerror.ErrBookNotFound)
	})
}

func TestRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	bookService := service.NewBookService(mockRepo)
	ctx := context.Background()

	t.Run("upserts within bounds", func(t *testing.T) {
		expected := &domain.Rating{UserID: 7, BookID: 10, Rating: 8}
		mockRepo.EXPECT().UpsertRating(ctx, int64(7), int64(10), 8).Return(expected, nil)

		rating, err := bookService.Rate(ctx, 7, 10, 8)
		require.NoError(t, err)
		assert.Equal(t, expected, rating)
	})

	t.Run("accepts the bounds themselves", func(t *testing.T) {
		for _, v := range []int{0, 10} {
			mockRepo.EXPECT().UpsertRating(ctx, int64(7), int64(10), v).
				Return(&domain.Rating{UserID: 7, BookID: 10, Rating: v}, nil)

			_, err := bookService.Rate(ctx, 7, 10, v)
			require.NoError(t, err)
		}
	})

	t.Run("rejects out-of-range values before storage", func(t *testing.T) {
		for _, v := range []int{-1, 11, 100} {
			_, err := bookService.Rate(ctx, 7, 10, v)
			assert.ErrorIs(t, err, bookerror.ErrInvalidRating)
		}
	})

	t.Run("unknown book", func(t *testing.T) {
		mockRepo.EXPECT().UpsertRating(ctx, int64(7), int64(99), 5).Return(nil, bookerror.ErrBookNotFound)

		_, err := bookService.Rate(ctx, 7, 99, 5)
		assert.ErrorIs(t, err, bookerror.ErrBookNotFound)
	})
}

func TestListDelegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookRepository(ctrl)
	bookService := service.NewBookService(mockRepo)
	ctx := context.Background()

	books := []domain.Book{{ID: 1, Name: "Dune"}}

	mockRepo.EXPECT().ListMembers(ctx, domain.KindBooklist, int64(7)).Return(books, nil)
	got, err := bookService.Booklist(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, books, got)

	mockRepo.EXPECT().ListMembers(ctx, domain.KindRead, int64(7)).Return(books, nil)
	got, err = bookService.ReadList(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, books, got)

	categories := []domain.CategoryBooks{{ID: 1, Name: "Sci-Fi", Books: books}}
	mockRepo.EXPECT().ListByCategories(ctx, int64(7)).Return(categories, nil)
	cats, err := bookService.ListByCategories(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, categories, cats)

	mockRepo.EXPECT().Search(ctx, int64(7), "dune").Return(books, nil)
	got, err = bookService.Search(ctx, 7, "dune")
	require.NoError(t, err)
	assert.Equal(t, books, got)
}
