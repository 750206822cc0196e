package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`

	// role membership lives in groups, a user can hold several
	Groups []Group `gorm:"many2many:user_groups;" json:"groups,omitempty"`

	Orders     []Order    `gorm:"foreignKey:UserID" json:"-"`
	Deliveries []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartItems  []CartItem `gorm:"foreignKey:UserID" json:"-"`
}
