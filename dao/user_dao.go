package dao

import (
	"bloghub/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser 创建新用户
func (dao *UserDAO) CreateUser(user *model.User) error {
	return dao.db.Create(user).Error
}

// FindByEmail 根据邮箱查询用户
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 查询用户
func (dao *UserDAO) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (dao *UserDAO) List() ([]model.User, error) {
	var users []model.User
	err := dao.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Count returns the total number of users.
func (dao *UserDAO) Count() (int64, error) {
	var n int64
	err := dao.db.Model(&model.User{}).Count(&n).Error
	return n, err
}

// UpdateFields applies a partial field merge to one user.
func (dao *UserDAO) UpdateFields(id uint64, fields map[string]interface{}) error {
	return dao.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

// Save persists the whole record.
func (dao *UserDAO) Save(user *model.User) error {
	return dao.db.Save(user).Error
}

// DeleteByID 删除用户
func (dao *UserDAO) DeleteByID(id uint64) error {
	return dao.db.Delete(&model.User{}, id).Error
}
