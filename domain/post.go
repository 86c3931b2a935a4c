package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID        int64     // Unique identifier for the post
	Title     string    // Post title
	Content   string    // Post body content
	Creator   Creator   // Author information
	IsPaid    bool      // Gated content, visible to active subscribers only
	Price     float64   // Price of a paid post
	Views     int64     // Number of views
	Likes     int64     // Number of likes
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// FetchFree retrieves free posts newest first.
	// cursor: encoded created_at of the last post of the previous page, empty for the first page.
	FetchFree(ctx context.Context, cursor string, num int64) ([]Post, error)

	// GetByID retrieves a single post with its creator name.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// FetchMostViewedFree returns free posts ordered by views desc, created_at desc, id desc.
	FetchMostViewedFree(ctx context.Context, limit int64) ([]Post, error)

	// FetchFreeByCreators returns every free post authored by one of the given creators.
	FetchFreeByCreators(ctx context.Context, creatorIDs []int64) ([]Post, error)

	// AddViews increments the view count of a post.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// FetchIDs returns post ids greater than cursor in ascending order.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type PostCache interface {
	// Views related
	IncrViews(ctx context.Context, id int64) (views int64, err error)
	FetchAndResetViews(ctx context.Context) (map[int64]int64, error)
	// RestoreViews puts views that could not be persisted back into the buffer.
	RestoreViews(ctx context.Context, id int64, views int64) error

	// Popular returns the cached most-viewed list and whether it is logically expired.
	// Returns ErrCacheMiss if nothing is cached for limit.
	GetPopular(ctx context.Context, limit int64) (posts []Post, expired bool, err error)
	SetPopular(ctx context.Context, limit int64, posts []Post, ttl time.Duration) error
}

// PostExistenceChecker guards writes that hang off a post.
type PostExistenceChecker interface {
	// EnsureExists returns ErrNotFound when the post certainly does not exist.
	EnsureExists(ctx context.Context, id int64) error
}

type PostUsecase interface {
	PostExistenceChecker

	FetchFeed(ctx context.Context, cursor string, num int64) ([]Post, string, error)
	// GetByID returns the post if viewerID may read it. viewerID is 0 for anonymous visitors.
	GetByID(ctx context.Context, id int64, viewerID int64) (Post, error)
	InitBloomFilter(ctx context.Context) error
	// RefreshBloomFilter adds posts created since the last load to the bloom filter.
	RefreshBloomFilter(ctx context.Context) error
}
