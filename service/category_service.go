package service

import (
	"errors"
	"strings"

	"bloghub/dao"
	"bloghub/model"

	"gorm.io/gorm"
)

// CategoryService covers the admin-managed category list.
type CategoryService struct {
	categories *dao.CategoryDAO
}

// NewCategoryService 创建一个新的 CategoryService 实例
func NewCategoryService(categories *dao.CategoryDAO) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create stores a category; titles are normalized to lower case.
func (s *CategoryService) Create(userID uint64, title string) (*model.Category, error) {
	category := &model.Category{
		UserID: userID,
		Title:  strings.ToLower(strings.TrimSpace(title)),
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List() ([]model.Category, error) {
	return s.categories.List()
}

// Delete removes one category, 404 if absent.
func (s *CategoryService) Delete(id uint64) (*model.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if err := s.categories.DeleteByID(id); err != nil {
		return nil, err
	}
	return category, nil
}
