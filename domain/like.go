package domain

import (
	"context"
	"time"
)

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// PostLike is representing a like record
type PostLike struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

type LikeStateChanges struct {
	ToAdd    []PostLike
	ToRemove []PostLike
}

type LikeRepository interface {
	// FetchUserLikedPosts returns the ids of every post the user likes.
	FetchUserLikedPosts(ctx context.Context, uid int64) ([]int64, error)
	// ApplyLikeChanges writes a batch of likes and unlikes and recounts the affected posts.
	// Likes on posts that no longer exist are dropped.
	ApplyLikeChanges(ctx context.Context, changes LikeStateChanges) error
}

type LikeCache interface {
	// ToggleLike flips the like in the user's cached liked set and reports the new state.
	// Returns ErrCacheMiss if the set is not loaded.
	ToggleLike(ctx context.Context, like PostLike) (liked bool, err error)
	// SetUserLikedPosts loads the user's liked set, replacing any cached one.
	SetUserLikedPosts(ctx context.Context, uid int64, postIDs []int64) error
}

type LikeUsecase interface {
	// ToggleLike likes the post if the user has not liked it yet, otherwise removes the like.
	ToggleLike(ctx context.Context, postID, userID int64) (liked bool, err error)
}

type SyncLikesWorker interface {
	Worker

	// Send adds a like record if action == Like, and removes a like record if action == Unlike
	Send(like PostLike, action LikeAction)
}
