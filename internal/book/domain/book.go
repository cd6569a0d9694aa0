package domain

// Book is the compact catalog view used in listings.
type Book struct {
	ID        int64
	Name      string
	Cover     string
	AvgRating float64
	IsRead    bool
}

// BookExtended is the full catalog card, with the caller's membership
// flags resolved.
type BookExtended struct {
	ID           int64
	Name         string
	Cover        string
	Author       string
	Language     string
	Year         int
	OriginalName string
	Pages        int
	Abstract     string
	AvgRating    float64
	Category     string
	IsRead       bool
	IsInBooklist bool
}

// CategoryBooks groups a category with its books for the main listing.
type CategoryBooks struct {
	ID    int64
	Name  string
	Books []Book
}

// Rating is one user's rating of one book.
type Rating struct {
	UserID int64
	BookID int64
	Rating int
}

// ToggleResult reports the outcome of a membership toggle. Added is true
// when the call created the membership and false when it removed it.
type ToggleResult struct {
	UserID int64
	BookID int64
	Added  bool
}

// MembershipKind selects which membership set a toggle operates on.
type MembershipKind string

const (
	KindBooklist MembershipKind = "booklist"
	KindRead     MembershipKind = "read"
)
