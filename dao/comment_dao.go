package dao

import (
	"bloghub/model"

	"gorm.io/gorm"
)

type CommentDAO struct {
	db *gorm.DB
}

// NewCommentDAO 创建一个新的 CommentDAO 实例
func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

// Create 创建新评论
func (dao *CommentDAO) Create(comment *model.Comment) error {
	return dao.db.Create(comment).Error
}

// FindByID 根据 ID 查询评论
func (dao *CommentDAO) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := dao.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// List returns all comments, newest first.
func (dao *CommentDAO) List() ([]model.Comment, error) {
	var comments []model.Comment
	err := dao.db.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// ListByPost returns the comments attached to one post.
func (dao *CommentDAO) ListByPost(postID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := dao.db.Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}

// UpdateText replaces one comment's text.
func (dao *CommentDAO) UpdateText(id uint64, text string) error {
	return dao.db.Model(&model.Comment{}).Where("id = ?", id).Update("text", text).Error
}

// DeleteByID 删除评论
func (dao *CommentDAO) DeleteByID(id uint64) error {
	return dao.db.Delete(&model.Comment{}, id).Error
}

// DeleteByPost removes all comments attached to one post.
func (dao *CommentDAO) DeleteByPost(postID uint64) error {
	return dao.db.Where("post_id = ?", postID).Delete(&model.Comment{}).Error
}

// DeleteByUser removes all comments written by one user.
func (dao *CommentDAO) DeleteByUser(userID uint64) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.Comment{}).Error
}
