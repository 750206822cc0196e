package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(search, ordering string, page, limit int) ([]entity.MenuItem, int64, error) {
	return s.Repo.List(search, ordering, page, limit)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

// Replace overwrites title and price (PUT).
func (s *MenuService) Replace(id uint, title string, price int64) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	item.Title = title
	item.Price = price
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Patch applies only the provided fields (PATCH).
func (s *MenuService) Patch(id uint, title *string, price *int64) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if title != nil {
		fields["title"] = *title
	}
	if price != nil {
		fields["price"] = *price
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
