package dto

import "github.com/AniTigerSib/BookTrackerBackend/internal/book/domain"

type BookOutput struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Cover     string  `json:"cover"`
	AvgRating float64 `json:"avgRating"`
	IsRead    bool    `json:"isRead"`
}

type BookExtendedOutput struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Cover        string  `json:"cover"`
	Author       string  `json:"author"`
	Language     string  `json:"language"`
	Year         int     `json:"year"`
	OriginalName string  `json:"originalName"`
	Pages        int     `json:"pages"`
	Abstract     string  `json:"abstract"`
	AvgRating    float64 `json:"avgRating"`
	Category     string  `json:"category"`
	IsRead       bool    `json:"isRead"`
	IsInBooklist bool    `json:"isInBooklist"`
}

type CategoryOutput struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Books []BookOutput `json:"books"`
}

type RatingOutput struct {
	UserID int64 `json:"userId"`
	BookID int64 `json:"bookId"`
	Rating int   `json:"rating"`
}

type RateInput struct {
	Rating *int `json:"rating"`
}

type ToggleInput struct {
	BookID int64 `json:"bookId"`
}

type ToggleOutput struct {
	UserID int64               `json:"userId"`
	BookID int64               `json:"bookId"`
	Added  bool                `json:"added"`
	Book   *BookExtendedOutput `json:"book,omitempty"`
}

func FromBook(b domain.Book) BookOutput {
	return BookOutput{
		ID:        b.ID,
		Name:      b.Name,
		Cover:     b.Cover,
		AvgRating: b.AvgRating,
		IsRead:    b.IsRead,
	}
}

func FromBooks(books []domain.Book) []BookOutput {
	out := make([]BookOutput, 0, len(books))
	for _, b := range books {
		out = append(out, FromBook(b))
	}

	return out
}

func FromBookExtended(b *domain.BookExtended) *BookExtendedOutput {
	if b == nil {
		return nil
	}

	return &BookExtendedOutput{
		ID:           b.ID,
		Name:         b.Name,
		Cover:        b.Cover,
		Author:       b.Author,
		Language:     b.Language,
		Year:         b.Year,
		OriginalName: b.OriginalName,
		Pages:        b.Pages,
		Abstract:     b.Abstract,
		AvgRating:    b.AvgRating,
		Category:     b.Category,
		IsRead:       b.IsRead,
		IsInBooklist: b.IsInBooklist,
	}
}

func FromCategories(cats []domain.CategoryBooks) []CategoryOutput {
	out := make([]CategoryOutput, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryOutput{
			ID:    c.ID,
			Name:  c.Name,
			Books: FromBooks(c.Books),
		})
	}

	return out
}

func FromRating(r *domain.Rating) RatingOutput {
	return RatingOutput{UserID: r.UserID, BookID: r.BookID, Rating: r.Rating}
}
