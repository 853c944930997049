package dao

import (
	"bloghub/model"

	"gorm.io/gorm"
)

type TokenDAO struct {
	db *gorm.DB
}

// NewTokenDAO 创建一个新的 TokenDAO 实例
func NewTokenDAO(db *gorm.DB) *TokenDAO {
	return &TokenDAO{db: db}
}

// Create 保存验证令牌
func (dao *TokenDAO) Create(token *model.VerificationToken) error {
	return dao.db.Create(token).Error
}

// FindByUser returns the live token for a user, if any. The store keeps no
// uniqueness constraint on tokens; issuance sites use lookup-or-create.
func (dao *TokenDAO) FindByUser(userID uint64) (*model.VerificationToken, error) {
	var token model.VerificationToken
	err := dao.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByUserAndToken matches the exact (userId, token) pair.
func (dao *TokenDAO) FindByUserAndToken(userID uint64, tokenStr string) (*model.VerificationToken, error) {
	var token model.VerificationToken
	err := dao.db.Where("user_id = ? AND token = ?", userID, tokenStr).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByID 删除令牌（消费后单次使用）
func (dao *TokenDAO) DeleteByID(id uint64) error {
	return dao.db.Delete(&model.VerificationToken{}, id).Error
}

// DeleteByUser removes all tokens belonging to a user.
func (dao *TokenDAO) DeleteByUser(userID uint64) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.VerificationToken{}).Error
}
