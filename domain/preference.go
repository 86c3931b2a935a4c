package domain

import (
	"context"
	"time"
)

const (
	MinPreferenceScore = -5
	MaxPreferenceScore = 5
)

// UserPreference is a user's rating of a creator, last write wins.
type UserPreference struct {
	UserID    int64
	CreatorID int64
	Score     int
	UpdatedAt time.Time
}

type PreferenceRepository interface {
	// Upsert stores the rating, replacing any earlier one for the same pair.
	Upsert(ctx context.Context, p *UserPreference) error

	// FetchPositiveByUsers returns rows with score > 0 for the given users.
	FetchPositiveByUsers(ctx context.Context, userIDs []int64) ([]UserPreference, error)
}

type PreferenceUsecase interface {
	Rate(ctx context.Context, p *UserPreference) error
}
