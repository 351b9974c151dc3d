// Package testutil builds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/lshigami/Surveyor/database"
	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with every table
// migrated. It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser stores a user with the given email.
func CreateUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, FirstName: "Test", LastName: "User"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// CreateSurvey stores a survey authored by author.
func CreateSurvey(t *testing.T, db *gorm.DB, author *model.User, title string) *model.Survey {
	t.Helper()
	survey := &model.Survey{Title: title, AuthorID: author.ID}
	if err := db.Omit("Author", "Questions", "Completions").Create(survey).Error; err != nil {
		t.Fatalf("failed to create survey %q: %v", title, err)
	}
	return survey
}

// Count returns the number of live rows of the model's table.
func Count(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
