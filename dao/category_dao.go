package dao

import (
	"bloghub/model"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	db *gorm.DB
}

// NewCategoryDAO 创建一个新的 CategoryDAO 实例
func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{db: db}
}

// Create 创建新分类
func (dao *CategoryDAO) Create(category *model.Category) error {
	return dao.db.Create(category).Error
}

// FindByID 根据 ID 查询分类
func (dao *CategoryDAO) FindByID(id uint64) (*model.Category, error) {
	var category model.Category
	err := dao.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories.
func (dao *CategoryDAO) List() ([]model.Category, error) {
	var categories []model.Category
	err := dao.db.Find(&categories).Error
	return categories, err
}

// DeleteByID 删除分类
func (dao *CategoryDAO) DeleteByID(id uint64) error {
	return dao.db.Delete(&model.Category{}, id).Error
}
