package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Guyuepp/creatorhub/internal/config"
	mysqlRepo "github.com/Guyuepp/creatorhub/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/creatorhub/internal/repository/redis"
	"github.com/Guyuepp/creatorhub/internal/usecase/similarity"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the similarity relation in this process",
	Long: `Reads subscriptions from the configured database, recomputes every pair and swaps
the relation in one transaction. Takes the same Redis lock as the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.SetupLogger()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := mysqlRepo.Open(cfg.Database.MySQLDSN())
		if err != nil {
			return err
		}
		defer mysqlRepo.Close(db)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr(),
			Password: cfg.Cache.Pass,
			DB:       cfg.Cache.DB,
		})
		defer client.Close()

		svc := similarity.NewService(
			mysqlRepo.NewSubscriptionRepository(db),
			mysqlRepo.NewSimilarityRepository(db, cfg.Similarity.BatchSize),
			myRedisCache.NewRebuildLock(client, cfg.Similarity.LockTTL),
			similarity.Options{
				ActiveOnly: cfg.Similarity.ActiveOnly,
				MaxUsers:   cfg.Similarity.MaxUsers,
			},
		)
		res, err := svc.Rebuild(ctx)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), rebuildResponse{
			Status:     "ok",
			Users:      res.Users,
			Pairs:      res.Pairs,
			DurationMS: res.Duration.Milliseconds(),
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables the service uses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.SetupLogger()

		db, err := mysqlRepo.Open(cfg.Database.MySQLDSN())
		if err != nil {
			return err
		}
		defer mysqlRepo.Close(db)

		if err := mysqlRepo.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}
