package services

import (
	"testing"

	"backend/entity"
	"backend/permissions"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every session on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew, entity.GroupCustomer} {
		require.NoError(t, db.Create(&entity.Group{Name: name}).Error)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()

	u := &entity.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).First(&g).Error)
		require.NoError(t, db.Model(u).Association("Groups").Append(&g))
	}
	return u
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price int64) *entity.MenuItem {
	t.Helper()

	m := &entity.MenuItem{Title: title, Price: price}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}

func roles(names ...string) permissions.RoleSet {
	return permissions.NewRoleSet(names...)
}
