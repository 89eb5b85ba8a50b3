package connection

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectGORMWithRetry opens the sqlite database at path and verifies it with
// a ping, retrying on failure. WAL mode keeps concurrent readers from
// blocking the writer; the busy timeout covers the remaining write
// contention.
func ConnectGORMWithRetry(path string, maxRetries int) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)

	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			zap.L().Warn("gorm open failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(time.Second)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			zap.L().Warn("get sql.DB failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(time.Second)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			zap.L().Warn("db ping failed",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(time.Second)
			continue
		}

		// Pool config. sqlite serializes writes itself, so the pool stays
		// small.
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}
