package database

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type uniqueNameRow struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex"`
}

// The duplicate-key branches in the services (role assignment, fund names)
// depend on GORM translating driver constraint errors into ErrDuplicatedKey.
func TestUniqueViolationTranslatesToDuplicatedKey(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), newGormConfig())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&uniqueNameRow{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	if err := db.Create(&uniqueNameRow{ID: 1, Name: "general"}).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err = db.Create(&uniqueNameRow{ID: 2, Name: "general"}).Error
	if err == nil {
		t.Fatal("duplicate insert must fail")
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate insert error = %v, want gorm.ErrDuplicatedKey", err)
	}
}
