package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

func (s *CartService) List(userID uint) ([]entity.CartItem, int64, error) {
	lines, err := s.CartRepo.ListByUser(s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Price
	}
	return lines, subtotal, nil
}

// Add snapshots the item's current price into the cart line. Adding an
// item that is already in the cart bumps the existing line's quantity.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * int64(quantity),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, line)
	})
	if err != nil {
		return nil, err
	}

	// reread so a merged line reports the summed quantity
	var out entity.CartItem
	if err := s.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearByUser(tx, userID)
	})
}
