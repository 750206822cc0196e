package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListByUser runs on the given handle so order placement can read the
// cart inside its transaction.
func (r *CartRepository) ListByUser(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := tx.Where("user_id = ?", userID).Order("id").Find(&lines).Error
	return lines, err
}

// UpsertLine merges into an existing (user, menu item) line by bumping
// its quantity, otherwise inserts a new one. The composite unique index
// backstops a raced duplicate insert.
func (r *CartRepository) UpsertLine(tx *gorm.DB, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", line.UserID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += line.Quantity
		exist.UnitPrice = line.UnitPrice
		exist.Price = exist.UnitPrice * int64(exist.Quantity)
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(line).Error
}

func (r *CartRepository) ClearByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
