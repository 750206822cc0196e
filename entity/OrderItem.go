package entity

import (
	"gorm.io/gorm"
)

// Immutable snapshot of one cart line at placement time.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"`
}
