package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/attempt"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/course"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"gorm.io/gorm"
)

// DB returns a migrated in-memory sqlite database private to tb.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := config.Open(config.DriverSQLite, dsn)
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := config.Migrate(db, &course.Course{}, &quiz.Quiz{}, &attempt.Attempt{}); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func Count(tb testing.TB, db *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}
