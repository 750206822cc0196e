package configs

import (
	"backend/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		logrus.Panicf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		logrus.Panicf("migration failed: %v", err)
	}
}
