package service

import (
	"errors"

	"bloghub/dao"
	"bloghub/model"

	"gorm.io/gorm"
)

// CommentService covers comment CRUD with ownership gating against the
// fetched record.
type CommentService struct {
	comments *dao.CommentDAO
	users    *dao.UserDAO
	posts    *dao.PostDAO
}

// NewCommentService 创建一个新的 CommentService 实例
func NewCommentService(comments *dao.CommentDAO, users *dao.UserDAO, posts *dao.PostDAO) *CommentService {
	return &CommentService{comments: comments, users: users, posts: posts}
}

// Create stores a comment with a snapshot of the commenting user's username.
// The snapshot is not kept in sync with later username changes.
func (s *CommentService) Create(userID, postID uint64, text string) (*model.Comment, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:   postID,
		UserID:   userID,
		Text:     text,
		Username: user.Username,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns every comment, for the admin listing.
func (s *CommentService) List() ([]model.Comment, error) {
	return s.comments.List()
}

// Update replaces a comment's text. Owner only.
func (s *CommentService) Update(id, userID uint64, text string) (*model.Comment, error) {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.comments.UpdateText(id, text); err != nil {
		return nil, err
	}
	return s.comments.FindByID(id)
}

// Delete removes a comment for its owner or an admin.
func (s *CommentService) Delete(id uint64, principal Principal) error {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if !principal.IsAdmin && comment.UserID != principal.UserID {
		return ErrForbidden
	}
	return s.comments.DeleteByID(id)
}
