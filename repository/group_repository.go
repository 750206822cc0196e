package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) ListMembers(group *entity.Group) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Model(group).Association("Users").Find(&users)
	return users, err
}

func (r *GroupRepository) IsMember(group *entity.Group, userID uint) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups").
		Where("group_id = ? AND user_id = ?", group.ID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) AddMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Append(user)
}

func (r *GroupRepository) RemoveMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Delete(user)
}
