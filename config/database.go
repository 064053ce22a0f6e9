package config

import (
	"foodshare-api/logger"
	"foodshare-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var DB *gorm.DB

// OpenDB opens the SQLite file at path and migrates all models. The pool is
// held to a single connection so statements run one at a time, which also
// keeps ":memory:" databases alive for the life of the handle.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodDonation{},
		&models.CommunityNeed{},
	); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// InitDB opens the database at path and installs it as the global handle
func InitDB(path string) error {
	db, err := OpenDB(path)
	if err != nil {
		return err
	}
	DB = db
	logrus.WithField("path", path).Info("✅ Database connected and migrated successfully")
	return nil
}

// CloseDB releases the global handle
func CloseDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
