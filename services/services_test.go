package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"photovault/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Album{}, &models.Photo{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func registerUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()

	user, err := NewUserService(db).Register(email, name, "secret123")
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	return user
}
