package domain

import (
	"context"
	"time"
)

// Subscription is a grant of paid-content access from a user to a creator.
type Subscription struct {
	UserID    int64
	CreatorID int64
	ExpiresAt time.Time
}

// SubscriptionRepository is the read side the recommendation engine needs.
type SubscriptionRepository interface {
	// FetchAll returns every (user, creator) row. With activeOnly only rows whose
	// expires_at lies in the future are returned.
	FetchAll(ctx context.Context, activeOnly bool) ([]Subscription, error)

	// FetchActiveCreatorIDs returns the creators the user currently pays for.
	FetchActiveCreatorIDs(ctx context.Context, userID int64) ([]int64, error)

	// IsActive reports whether the user holds an unexpired subscription to the creator.
	IsActive(ctx context.Context, userID, creatorID int64) (bool, error)
}
