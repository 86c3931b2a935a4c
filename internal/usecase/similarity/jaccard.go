package similarity

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/creatorhub/domain"
)

// userSet is one user's deduplicated creator ids, sorted ascending.
type userSet struct {
	userID   int64
	creators []int64
}

// groupByUser collapses subscription rows into per-user creator sets ordered by user id.
func groupByUser(subs []domain.Subscription) []userSet {
	byUser := make(map[int64]map[int64]struct{})
	for _, s := range subs {
		set, ok := byUser[s.UserID]
		if !ok {
			set = make(map[int64]struct{})
			byUser[s.UserID] = set
		}
		set[s.CreatorID] = struct{}{}
	}

	res := make([]userSet, 0, len(byUser))
	for uid, set := range byUser {
		if len(set) == 0 {
			continue
		}
		creators := make([]int64, 0, len(set))
		for cid := range set {
			creators = append(creators, cid)
		}
		sort.Slice(creators, func(i, j int) bool { return creators[i] < creators[j] })
		res = append(res, userSet{userID: uid, creators: creators})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].userID < res[j].userID })
	return res
}

// intersectSorted counts common elements of two ascending slices.
func intersectSorted(a, b []int64) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// Jaccard returns |a ∩ b| / |a ∪ b| for two ascending deduplicated slices.
// Two empty sets score 0.
func Jaccard(a, b []int64) float64 {
	inter := intersectSorted(a, b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// ComputeSimilarity builds the full canonical relation for the given subscriptions.
// Every pair of users with at least one subscription gets exactly one entry with
// the lower id first, including pairs that score 0. Output is sorted by
// (User1ID, User2ID). maxUsers <= 0 means no cap.
func ComputeSimilarity(ctx context.Context, subs []domain.Subscription, maxUsers int) ([]domain.SimilarityEntry, int, error) {
	users := groupByUser(subs)
	if maxUsers > 0 && len(users) > maxUsers {
		return nil, len(users), fmt.Errorf("%w: %d > %d", domain.ErrTooManyUsers, len(users), maxUsers)
	}
	if len(users) < 2 {
		return []domain.SimilarityEntry{}, len(users), ctx.Err()
	}

	// 每一行的结果写在自己的槽位里，最后按顺序拼接，输出与并发度无关
	rows := make([][]domain.SimilarityEntry, len(users)-1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < len(users)-1; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a := users[i]
			row := make([]domain.SimilarityEntry, 0, len(users)-i-1)
			for _, b := range users[i+1:] {
				row = append(row, domain.SimilarityEntry{
					User1ID: a.userID,
					User2ID: b.userID,
					Score:   Jaccard(a.creators, b.creators),
				})
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, len(users), err
	}

	total := 0
	for _, r := range rows {
		total += len(r)
	}
	res := make([]domain.SimilarityEntry, 0, total)
	for _, r := range rows {
		res = append(res, r...)
	}
	return res, len(users), nil
}
