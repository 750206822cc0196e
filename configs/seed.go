package configs

import (
	"errors"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups makes sure the three recognized groups exist.
func SeedGroups() error {
	for _, name := range []string{
		entity.GroupManager,
		entity.GroupDeliveryCrew,
		entity.GroupCustomer,
	} {
		var g entity.Group
		err := db.Where("name = ?", name).First(&g).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedManager bootstraps one Manager account from env so the group
// endpoints are reachable on a fresh database.
func SeedManager(username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var u entity.User
	err := db.Where("username = ?", username).First(&u).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u = entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := db.Create(&u).Error; err != nil {
		return err
	}

	var g entity.Group
	if err := db.Where("name = ?", entity.GroupManager).First(&g).Error; err != nil {
		return err
	}
	return db.Model(&u).Association("Groups").Append(&g)
}
