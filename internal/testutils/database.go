package testutils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VladimirStepanovN/Blog/internal/model"
)

// SetupTestDB creates an isolated in-memory sqlite database per test.
// Automatically migrates all tables and seeds the built-in roles before
// returning the connection.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := SetupBareTestDB(t)
	SeedTestRoles(t, db)

	return db
}

// SetupBareTestDB is SetupTestDB without the role seeding, for tests that
// need a cold store.
func SetupBareTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试用独立命名的内存库，互不串数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}
