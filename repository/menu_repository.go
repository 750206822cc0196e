package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ordering param whitelist, "-" prefix flips direction
var menuOrderings = map[string]string{
	"title": "title",
	"price": "price",
}

// List returns one page of menu items plus the unpaginated count.
// search matches the title as a substring, limit comes from the caller.
func (r *MenuRepository) List(search, ordering string, page, limit int) ([]entity.MenuItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.MenuItem{})
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.MenuItem
	err := q.Session(&gorm.Session{}).
		Order(orderClause(ordering, menuOrderings, "title")).
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// orderClause resolves a client ordering value against a whitelist,
// falling back to def when the field is unknown.
func orderClause(ordering string, allowed map[string]string, def string) string {
	desc := false
	if len(ordering) > 0 && ordering[0] == '-' {
		desc = true
		ordering = ordering[1:]
	}
	col, ok := allowed[ordering]
	if !ok {
		if len(def) > 0 && def[0] == '-' {
			return def[1:] + " DESC"
		}
		return def
	}
	if desc {
		return col + " DESC"
	}
	return col
}
