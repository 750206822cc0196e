package entity

import (
	"time"
)

// One pending line per (user, menu item). Re-adding the same item merges
// into the existing line instead of inserting a duplicate.
//
// No soft delete here: cleared lines are removed for real, otherwise the
// unique index would refuse a re-add after checkout.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"` // unit_price * quantity, kept in sync on every write
}
