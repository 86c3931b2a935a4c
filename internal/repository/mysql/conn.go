package mysql

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

// Open connects with retries, pinging the pool before handing it out.
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", dbMaxRetry, err)
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the tables this service reads and writes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Creator{},
		&model.Post{},
		&model.Subscription{},
		&model.UserPreference{},
		&model.UserSimilarity{},
		&model.Comment{},
		&model.PostLike{},
	)
}
