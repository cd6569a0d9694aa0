package constant

const (
	// BcryptCost matches the original deployment's hashing cost. Raising it
	// invalidates nothing (bcrypt encodes the cost into the hash) but slows
	// every login noticeably.
	BcryptCost = 16

	// UncategorizedID and UncategorizedName describe the synthetic bucket
	// for books without a category.
	UncategorizedID   = 0
	UncategorizedName = "Без категории"

	// RatingMin and RatingMax bound user book ratings, inclusive.
	RatingMin = 0
	RatingMax = 10

	// UserContextKey is the fiber locals key under which the request guard
	// stores the verified token claims.
	UserContextKey = "user"

	// SearchQueryMaxLen caps the free-text search parameter.
	SearchQueryMaxLen = 100
)
