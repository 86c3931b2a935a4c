package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/config"
	"github.com/Guyuepp/creatorhub/internal/metrics"
	mysqlRepo "github.com/Guyuepp/creatorhub/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/creatorhub/internal/repository/redis"
	"github.com/Guyuepp/creatorhub/internal/rest"
	"github.com/Guyuepp/creatorhub/internal/rest/middleware"
	"github.com/Guyuepp/creatorhub/internal/usecase/comment"
	"github.com/Guyuepp/creatorhub/internal/usecase/like"
	"github.com/Guyuepp/creatorhub/internal/usecase/post"
	"github.com/Guyuepp/creatorhub/internal/usecase/preference"
	"github.com/Guyuepp/creatorhub/internal/usecase/recommendation"
	"github.com/Guyuepp/creatorhub/internal/usecase/similarity"
	"github.com/Guyuepp/creatorhub/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.SetupLogger()
	metrics.Initialize()

	// prepare database
	db, err := mysqlRepo.Open(cfg.Database.MySQLDSN())
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := mysqlRepo.Close(db); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	postRepo := mysqlRepo.NewPostRepository(db)
	subRepo := mysqlRepo.NewSubscriptionRepository(db)
	prefRepo := mysqlRepo.NewPreferenceRepository(db)
	simRepo := mysqlRepo.NewSimilarityRepository(db, cfg.Similarity.BatchSize)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	postCache := myRedisCache.NewPostCache(client)
	likeCache := myRedisCache.NewLikeCache(client)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)
	rebuildLock := myRedisCache.NewRebuildLock(client, cfg.Similarity.LockTTL)

	likesSyncer := workers.NewSyncLikesWorker(likeRepo, workers.DefaultLikesSyncInterval)

	// Build service Layer
	postSvc := post.NewService(postRepo, postCache, subRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, postSvc)
	likeSvc := like.NewService(likeRepo, likeCache, postSvc, likesSyncer)
	prefSvc := preference.NewService(prefRepo)
	simSvc := similarity.NewService(subRepo, simRepo, rebuildLock, similarity.Options{
		ActiveOnly: cfg.Similarity.ActiveOnly,
		MaxUsers:   cfg.Similarity.MaxUsers,
	})
	recSvc := recommendation.NewService(simRepo, prefRepo, subRepo, postRepo, postCache, recommendation.DefaultPopularTTL)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// Start worker
	viewsSyncer := workers.NewSyncViewsWorker(postRepo, postCache, cfg.ViewsSync)
	bloomRefresher := workers.NewBloomRefreshWorker(postSvc, cfg.BloomRefresh)
	scheduler, err := workers.NewSimilarityScheduler(simSvc, cfg.Similarity.Cron)
	if err != nil {
		logrus.Fatal(err)
	}
	bgWorkers := []domain.Worker{viewsSyncer, likesSyncer, bloomRefresher, scheduler}
	workerDone := make(chan struct{}, len(bgWorkers))
	for _, w := range bgWorkers {
		go func(w domain.Worker) {
			w.Start(ctx)
			workerDone <- struct{}{}
		}(w)
	}

	// prepare gin
	route := gin.New()
	route.Use(gin.Logger(), gin.Recovery())
	route.Use(middleware.CORS(cfg.CORSOrigins))
	route.Use(middleware.Metrics())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	postHandler := rest.NewPostHandler(postSvc)
	prefHandler := rest.NewPreferenceHandler(prefSvc)
	simHandler := rest.NewSimilarityHandler(simSvc)
	recHandler := rest.NewRecommendationHandler(recSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWTSecret)

	// Register routes
	route.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := route.Group("/api")
	{
		api.GET("/posts/feed", postHandler.FetchFeed)
		api.GET("/posts/:id", optionalAuth, postHandler.GetByID)
		api.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)
		api.POST("/update-similarity", middleware.RequireUpdateSecret(cfg.UpdateSecret), simHandler.Rebuild)
	}

	authorized := api.Group("", authMiddleware)
	{
		authorized.GET("/recommendations", recHandler.GetRecommendations)
		authorized.PUT("/creators/:id/preference", prefHandler.Rate)
		authorized.POST("/posts/:id/like", likeHandler.ToggleLike)
		authorized.POST("/posts/:id/comment", commentHandler.CreateComment)
		authorized.DELETE("/posts/:id/comments/:commentID", commentHandler.DeleteComment)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for workers to cleanup...")
	for range bgWorkers {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			logrus.Warn("workers did not stop in time")
			return
		}
	}

	logrus.Info("Server exiting")
}
