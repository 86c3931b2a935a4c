package domain

import (
	"context"
	"time"
)

// SimilarityEntry is one canonical pair of the similarity relation.
// User1ID is always strictly less than User2ID.
type SimilarityEntry struct {
	User1ID int64
	User2ID int64
	Score   float64
}

// Neighbor is a similar user seen from the requesting user's side.
type Neighbor struct {
	UserID int64
	Score  float64
}

// RebuildResult summarizes a finished rebuild.
type RebuildResult struct {
	Users    int
	Pairs    int
	Duration time.Duration
}

type SimilarityRepository interface {
	// ReplaceAll discards the stored relation and inserts entries as one transaction.
	// On error the previous relation is left untouched.
	ReplaceAll(ctx context.Context, entries []SimilarityEntry) error

	// FetchNeighbors returns up to limit users with a positive score to userID,
	// ordered by score desc then neighbor id asc.
	FetchNeighbors(ctx context.Context, userID int64, limit int) ([]Neighbor, error)
}

// RebuildLocker serializes rebuilds across processes.
type RebuildLocker interface {
	// Acquire returns a release func, or ErrRebuildInProgress when the lock is held elsewhere.
	Acquire(ctx context.Context) (release func(context.Context) error, err error)
}

type SimilarityUsecase interface {
	// Rebuild recomputes the whole relation and swaps it in atomically.
	Rebuild(ctx context.Context) (RebuildResult, error)
}
