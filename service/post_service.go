package service

import (
	"context"
	"errors"

	"bloghub/dao"
	"bloghub/internal/imagehost"
	"bloghub/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Principal is the authenticated identity attached to a request, as decoded
// from the session token.
type Principal struct {
	UserID  uint64
	IsAdmin bool
}

// PostService covers post CRUD, the like set and the delete cascade.
type PostService struct {
	posts    *dao.PostDAO
	comments *dao.CommentDAO
	images   imagehost.Host
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(posts *dao.PostDAO, comments *dao.CommentDAO, images imagehost.Host) *PostService {
	return &PostService{posts: posts, comments: comments, images: images}
}

// Create uploads the post image and persists the post owned by the caller.
func (s *PostService) Create(ctx context.Context, userID uint64, title, description, category, imagePath string) (*model.Post, error) {
	img, err := s.images.Upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		ImageURL:    img.URL,
		ImageID:     img.ID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return s.posts.FindByID(post.ID)
}

// List returns posts newest-first, optionally filtered by category or
// paginated by the fixed page size.
func (s *PostService) List(category string, page int) ([]model.Post, error) {
	return s.posts.List(category, page)
}

// Get returns one post with its author, like set and comments.
func (s *PostService) Get(id uint64) (*model.Post, []model.Comment, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	comments, err := s.comments.ListByPost(id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// Count returns the total post count.
func (s *PostService) Count() (int64, error) {
	return s.posts.Count()
}

// PostUpdateParams carries the optional post fields; nil means "leave as is".
type PostUpdateParams struct {
	Title       *string
	Description *string
	Category    *string
}

// Update applies a partial field merge. Only the owner may update; the check
// runs against the fetched record's owner, not the path parameter.
func (s *PostService) Update(id, userID uint64, params PostUpdateParams) (*model.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{}
	if params.Title != nil {
		fields["title"] = *params.Title
	}
	if params.Description != nil {
		fields["description"] = *params.Description
	}
	if params.Category != nil {
		fields["category"] = *params.Category
	}
	if len(fields) > 0 {
		if err := s.posts.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.posts.FindByID(id)
}

// UpdateImage replaces the hosted image: upload the new one first, then
// best-effort remove the old.
func (s *PostService) UpdateImage(ctx context.Context, id, userID uint64, imagePath string) (*model.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}

	img, err := s.images.Upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	if post.ImageID != "" {
		if err := s.images.Remove(ctx, post.ImageID); err != nil {
			logrus.WithError(err).WithField("post_id", id).Warn("old post image removal failed")
		}
	}
	fields := map[string]interface{}{"image_url": img.URL, "image_id": img.ID}
	if err := s.posts.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.posts.FindByID(id)
}

// ToggleLike flips the caller's membership in the post's like set:
// add-if-absent, remove-if-present.
func (s *PostService) ToggleLike(id, userID uint64) (*model.Post, error) {
	if _, err := s.posts.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	liked, err := s.posts.HasLike(id, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.posts.RemoveLike(id, userID)
	} else {
		err = s.posts.AddLike(id, userID)
	}
	if err != nil {
		return nil, err
	}
	return s.posts.FindByID(id)
}

// Delete removes a post for its owner or an admin, cascading to the hosted
// image, the like set and the dependent comments. The image-host call is
// best-effort; its deletes are idempotent so a retry is safe.
func (s *PostService) Delete(ctx context.Context, id uint64, principal Principal) error {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !principal.IsAdmin && post.UserID != principal.UserID {
		return ErrForbidden
	}

	if post.ImageID != "" {
		if err := s.images.Remove(ctx, post.ImageID); err != nil {
			logrus.WithError(err).WithField("post_id", id).Warn("post image removal failed")
		}
	}
	if err := s.comments.DeleteByPost(id); err != nil {
		return err
	}
	if err := s.posts.DeleteLikesByPost(id); err != nil {
		return err
	}
	return s.posts.DeleteByID(id)
}
