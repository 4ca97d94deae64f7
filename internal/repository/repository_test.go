package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Entry{},
		&model.Comment{}, &model.Relation{}, &model.Footprint{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
