package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`
	Price int64  `gorm:"not null" json:"price"` // satang/cents

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
