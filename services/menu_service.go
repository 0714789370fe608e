package services

import (
	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo}
}

type MenuOut struct {
	Categories []entity.Category `json:"categories"`
	Items      []entity.MenuItem `json:"items"`
}

// Menu returns the guest-facing catalog: categories in sort order plus items.
func (s *MenuService) Menu(restID uint) (*MenuOut, error) {
	cats, err := s.Repo.ListCategories(restID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItems(restID)
	if err != nil {
		return nil, err
	}
	return &MenuOut{Categories: cats, Items: items}, nil
}

func (s *MenuService) CreateCategory(c *entity.Category) error {
	return s.Repo.CreateCategory(c)
}

func (s *MenuService) UpdateCategory(restID, id uint, apply func(*entity.Category)) (*entity.Category, error) {
	c, err := s.Repo.FindCategory(restID, id)
	if err != nil {
		return nil, err
	}
	apply(c)
	if err := s.Repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes the category together with its menu items.
func (s *MenuService) DeleteCategory(restID, id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteCategory(tx, restID, id)
	})
}

func (s *MenuService) CreateItem(item *entity.MenuItem) error {
	return s.Repo.CreateItem(item)
}

func (s *MenuService) UpdateItem(restID, id uint, apply func(*entity.MenuItem)) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItem(id)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restID {
		return nil, ErrForbidden
	}
	apply(item)
	if err := s.Repo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(restID, id uint) error {
	return s.Repo.DeleteItem(restID, id)
}

// ToggleAvailability flips the 86 switch on a menu item.
func (s *MenuService) ToggleAvailability(restID, id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindItem(id)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restID {
		return nil, ErrForbidden
	}
	if err := s.Repo.SetItemAvailability(restID, id, !item.IsAvailable); err != nil {
		return nil, err
	}
	item.IsAvailable = !item.IsAvailable
	return item, nil
}
