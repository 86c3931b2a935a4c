package recommendation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/domain/mocks"
	"github.com/Guyuepp/creatorhub/internal/usecase/recommendation"
)

type deps struct {
	sim   *mocks.SimilarityRepository
	pref  *mocks.PreferenceRepository
	sub   *mocks.SubscriptionRepository
	post  *mocks.PostRepository
	cache *mocks.PostCache
}

func newService() (*recommendation.Service, deps) {
	d := deps{
		sim:   new(mocks.SimilarityRepository),
		pref:  new(mocks.PreferenceRepository),
		sub:   new(mocks.SubscriptionRepository),
		post:  new(mocks.PostRepository),
		cache: new(mocks.PostCache),
	}
	return recommendation.NewService(d.sim, d.pref, d.sub, d.post, d.cache, time.Minute), d
}

func freePost(id, creatorID int64, createdAt time.Time) domain.Post {
	return domain.Post{
		ID:        id,
		Title:     faker.Sentence(),
		Content:   faker.Paragraph(),
		Creator:   domain.Creator{ID: creatorID, Name: faker.Name()},
		CreatedAt: createdAt,
	}
}

func popularPosts(n int) []domain.Post {
	res := make([]domain.Post, 0, n)
	for i := 0; i < n; i++ {
		p := freePost(int64(i+1), int64(i%3+1), time.Now())
		p.Views = int64(1000 - i*10)
		res = append(res, p)
	}
	return res
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 10, recommendation.NormalizeLimit(0))
	assert.Equal(t, 10, recommendation.NormalizeLimit(-3))
	assert.Equal(t, 7, recommendation.NormalizeLimit(7))
	assert.Equal(t, 50, recommendation.NormalizeLimit(500))
}

func TestGetRecommendationsRejectsBadUser(t *testing.T) {
	svc, _ := newService()
	_, _, err := svc.GetRecommendations(context.Background(), 0, 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestFallbackWhenNoNeighbors(t *testing.T) {
	svc, d := newService()
	posts := popularPosts(10)

	d.sim.On("FetchNeighbors", mock.Anything, int64(42), domain.NeighborLimit).Return([]domain.Neighbor{}, nil).Once()
	d.cache.On("GetPopular", mock.Anything, int64(10)).Return(nil, false, domain.ErrCacheMiss).Once()
	d.post.On("FetchMostViewedFree", mock.Anything, int64(10)).Return(posts, nil).Once()
	d.cache.On("SetPopular", mock.Anything, int64(10), posts, time.Minute).Return(nil).Once()

	res, source, err := svc.GetRecommendations(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePopular, source)
	require.Len(t, res, 10)
	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(t, res[i-1].Post.Views, res[i].Post.Views)
	}
	assert.Equal(t, float64(1000), res[0].Score)
	d.post.AssertExpectations(t)
	d.cache.AssertExpectations(t)
	d.pref.AssertNotCalled(t, "FetchPositiveByUsers", mock.Anything, mock.Anything)
}

func TestFallbackServesFreshCache(t *testing.T) {
	svc, d := newService()
	posts := popularPosts(3)

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(nil, nil).Once()
	d.cache.On("GetPopular", mock.Anything, int64(5)).Return(posts, false, nil).Once()

	res, source, err := svc.GetRecommendations(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePopular, source)
	assert.Len(t, res, 3)
	d.post.AssertNotCalled(t, "FetchMostViewedFree", mock.Anything, mock.Anything)
}

func TestFallbackRefreshesExpiredCacheInBackground(t *testing.T) {
	svc, d := newService()
	stale := popularPosts(2)
	fresh := popularPosts(4)

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(nil, nil).Once()
	d.cache.On("GetPopular", mock.Anything, int64(10)).Return(stale, true, nil).Once()
	d.post.On("FetchMostViewedFree", mock.Anything, int64(10)).Return(fresh, nil).Once()
	refreshed := make(chan struct{})
	d.cache.On("SetPopular", mock.Anything, int64(10), fresh, time.Minute).Run(func(mock.Arguments) {
		close(refreshed)
	}).Return(nil).Once()

	res, _, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("popular list was not refreshed")
	}
}

func TestFallbackCacheErrorGoesToDatabase(t *testing.T) {
	svc, d := newService()
	posts := popularPosts(1)

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(nil, nil).Once()
	d.cache.On("GetPopular", mock.Anything, int64(10)).Return(nil, false, errors.New("i/o timeout")).Once()
	d.post.On("FetchMostViewedFree", mock.Anything, int64(10)).Return(posts, nil).Once()
	d.cache.On("SetPopular", mock.Anything, int64(10), posts, time.Minute).Return(errors.New("i/o timeout")).Once()

	res, _, err := svc.GetRecommendations(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestFallbackLoadSurvivesCanceledRequest(t *testing.T) {
	svc, d := newService()
	posts := popularPosts(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var loadErr error
	var hasDeadline bool
	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(nil, nil).Once()
	d.cache.On("GetPopular", mock.Anything, int64(10)).Return(nil, false, domain.ErrCacheMiss).Once()
	d.post.On("FetchMostViewedFree", mock.Anything, int64(10)).Run(func(args mock.Arguments) {
		loadCtx := args.Get(0).(context.Context)
		loadErr = loadCtx.Err()
		_, hasDeadline = loadCtx.Deadline()
	}).Return(posts, nil).Once()
	d.cache.On("SetPopular", mock.Anything, int64(10), posts, time.Minute).Return(nil).Once()

	res, _, err := svc.GetRecommendations(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NoError(t, loadErr)
	assert.True(t, hasDeadline)
}

func TestPersonalizedRankingAndExclusion(t *testing.T) {
	svc, d := newService()
	now := time.Now()
	neighbors := []domain.Neighbor{{UserID: 10, Score: 0.8}, {UserID: 11, Score: 0.5}}

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(neighbors, nil).Once()
	d.pref.On("FetchPositiveByUsers", mock.Anything, []int64{10, 11}).Return([]domain.UserPreference{
		{UserID: 10, CreatorID: 100, Score: 5},
		{UserID: 11, CreatorID: 100, Score: 3},
		{UserID: 10, CreatorID: 200, Score: 2},
		{UserID: 11, CreatorID: 300, Score: 5},
	}, nil).Once()
	// user 1 already pays for creator 300
	d.sub.On("FetchActiveCreatorIDs", mock.Anything, int64(1)).Return([]int64{300}, nil).Once()
	d.post.On("FetchFreeByCreators", mock.Anything, []int64{100, 200}).Return([]domain.Post{
		freePost(1, 200, now),
		freePost(2, 100, now.Add(-time.Hour)),
		freePost(3, 100, now),
	}, nil).Once()

	res, source, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePersonalized, source)
	require.Len(t, res, 3)

	assert.Equal(t, int64(3), res[0].Post.ID)
	assert.InDelta(t, 4.0, res[0].Score, 1e-9)
	assert.Equal(t, int64(2), res[1].Post.ID)
	assert.Equal(t, int64(1), res[2].Post.ID)
	assert.InDelta(t, 2.0, res[2].Score, 1e-9)

	for _, c := range res {
		assert.NotEqual(t, int64(300), c.Post.Creator.ID)
	}
	d.cache.AssertNotCalled(t, "GetPopular", mock.Anything, mock.Anything)
}

func TestPersonalizedTieBreakByID(t *testing.T) {
	svc, d := newService()
	now := time.Now()

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return([]domain.Neighbor{{UserID: 2, Score: 1}}, nil)
	d.pref.On("FetchPositiveByUsers", mock.Anything, []int64{2}).Return([]domain.UserPreference{{UserID: 2, CreatorID: 7, Score: 1}}, nil)
	d.sub.On("FetchActiveCreatorIDs", mock.Anything, int64(1)).Return(nil, nil)
	d.post.On("FetchFreeByCreators", mock.Anything, []int64{7}).Return([]domain.Post{
		freePost(5, 7, now), freePost(9, 7, now), freePost(6, 7, now),
	}, nil)

	res, _, err := svc.GetRecommendations(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(9), res[0].Post.ID)
	assert.Equal(t, int64(6), res[1].Post.ID)
}

func TestPersonalizedDropsPaidPosts(t *testing.T) {
	svc, d := newService()
	paid := freePost(4, 7, time.Now())
	paid.IsPaid = true

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return([]domain.Neighbor{{UserID: 2, Score: 1}}, nil)
	d.pref.On("FetchPositiveByUsers", mock.Anything, []int64{2}).Return([]domain.UserPreference{{UserID: 2, CreatorID: 7, Score: 4}}, nil)
	d.sub.On("FetchActiveCreatorIDs", mock.Anything, int64(1)).Return(nil, nil)
	d.post.On("FetchFreeByCreators", mock.Anything, []int64{7}).Return([]domain.Post{paid}, nil)

	res, _, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestPersonalizedWithoutPositiveRatingsIsEmpty(t *testing.T) {
	svc, d := newService()

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return([]domain.Neighbor{{UserID: 2, Score: 0.4}}, nil)
	d.pref.On("FetchPositiveByUsers", mock.Anything, []int64{2}).Return(nil, nil)
	d.sub.On("FetchActiveCreatorIDs", mock.Anything, int64(1)).Return(nil, nil)

	res, source, err := svc.GetRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePersonalized, source)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	d.post.AssertNotCalled(t, "FetchFreeByCreators", mock.Anything, mock.Anything)
	d.cache.AssertNotCalled(t, "GetPopular", mock.Anything, mock.Anything)
}

func TestPersonalizedInputError(t *testing.T) {
	svc, d := newService()

	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return([]domain.Neighbor{{UserID: 2, Score: 0.4}}, nil)
	d.pref.On("FetchPositiveByUsers", mock.Anything, []int64{2}).Return(nil, errors.New("too many connections"))
	d.sub.On("FetchActiveCreatorIDs", mock.Anything, int64(1)).Return(nil, nil).Maybe()

	_, _, err := svc.GetRecommendations(context.Background(), 1, 10)
	assert.ErrorContains(t, err, "too many connections")
}

func TestNeighborLookupError(t *testing.T) {
	svc, d := newService()
	d.sim.On("FetchNeighbors", mock.Anything, int64(1), domain.NeighborLimit).Return(nil, errors.New("bad connection"))

	_, _, err := svc.GetRecommendations(context.Background(), 1, 10)
	assert.Error(t, err)
}
