package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status string    `json:"status"`
	Total  int64     `json:"total"` // frozen at placement, never recomputed
	Date   time.Time `json:"date"`

	OrderItems []OrderItem `json:"orderItems,omitempty"`
}
