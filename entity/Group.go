package entity

import (
	"gorm.io/gorm"
)

// Recognized group names. Membership is managed at runtime through the
// /groups endpoints, these are only the seeded rows.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
	GroupCustomer     = "Customer"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
