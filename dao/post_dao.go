package dao

import (
	"bloghub/model"

	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size for paginated listings.
const PostsPerPage = 3

type PostDAO struct {
	db *gorm.DB
}

// NewPostDAO 创建一个新的 PostDAO 实例
func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// Create 创建新帖子
func (dao *PostDAO) Create(post *model.Post) error {
	return dao.db.Create(post).Error
}

// FindByID loads one post with its author and like set.
func (dao *PostDAO) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := dao.db.Preload("User").Preload("Likes").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest-first. A non-empty category filters; a positive
// page paginates with the fixed page size. The two filters are exclusive,
// page wins when both are set.
func (dao *PostDAO) List(category string, page int) ([]model.Post, error) {
	q := dao.db.Preload("User").Preload("Likes").Order("created_at DESC")
	switch {
	case page > 0:
		q = q.Offset((page - 1) * PostsPerPage).Limit(PostsPerPage)
	case category != "":
		q = q.Where("category = ?", category)
	}
	var posts []model.Post
	err := q.Find(&posts).Error
	return posts, err
}

// ListByUser returns all posts owned by one user.
func (dao *PostDAO) ListByUser(userID uint64) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Where("user_id = ?", userID).Find(&posts).Error
	return posts, err
}

// Count returns the total number of posts.
func (dao *PostDAO) Count() (int64, error) {
	var n int64
	err := dao.db.Model(&model.Post{}).Count(&n).Error
	return n, err
}

// UpdateFields applies a partial field merge to one post.
func (dao *PostDAO) UpdateFields(id uint64, fields map[string]interface{}) error {
	return dao.db.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteByID 删除帖子
func (dao *PostDAO) DeleteByID(id uint64) error {
	return dao.db.Delete(&model.Post{}, id).Error
}

// DeleteByUser removes all posts owned by one user.
func (dao *PostDAO) DeleteByUser(userID uint64) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.Post{}).Error
}

// HasLike reports whether the user is in the post's like set.
func (dao *PostDAO) HasLike(postID, userID uint64) (bool, error) {
	var n int64
	err := dao.db.Model(&model.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).Count(&n).Error
	return n > 0, err
}

// AddLike adds the user to the like set.
func (dao *PostDAO) AddLike(postID, userID uint64) error {
	return dao.db.Create(&model.PostLike{PostID: postID, UserID: userID}).Error
}

// RemoveLike removes the user from the like set.
func (dao *PostDAO) RemoveLike(postID, userID uint64) error {
	return dao.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{}).Error
}

// DeleteLikesByPost clears a post's like set.
func (dao *PostDAO) DeleteLikesByPost(postID uint64) error {
	return dao.db.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error
}

// DeleteLikesByUser removes a user's memberships from every like set.
func (dao *PostDAO) DeleteLikesByUser(userID uint64) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.PostLike{}).Error
}
