package service

import (
	"context"
	"errors"

	"bloghub/dao"
	"bloghub/internal/auth"
	"bloghub/internal/imagehost"
	"bloghub/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService covers profile reads/updates and the account-delete cascade.
type UserService struct {
	users    *dao.UserDAO
	posts    *dao.PostDAO
	comments *dao.CommentDAO
	tokens   *dao.TokenDAO
	images   imagehost.Host
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(users *dao.UserDAO, posts *dao.PostDAO, comments *dao.CommentDAO, tokens *dao.TokenDAO, images imagehost.Host) *UserService {
	return &UserService{users: users, posts: posts, comments: comments, tokens: tokens, images: images}
}

// List returns every user, for the admin listing.
func (s *UserService) List() ([]model.User, error) {
	return s.users.List()
}

// Count returns the total user count.
func (s *UserService) Count() (int64, error) {
	return s.users.Count()
}

// GetProfile returns one user together with their posts.
func (s *UserService) GetProfile(id uint64) (*model.User, []model.Post, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	posts, err := s.posts.ListByUser(id)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

// UpdateParams carries the optional profile fields; nil means "leave as is".
type UpdateParams struct {
	Email    *string
	Username *string
	Password *string
	Bio      *string
}

// Update applies a partial field merge. A new password is re-hashed before
// it is stored.
func (s *UserService) Update(id uint64, params UpdateParams) (*model.User, error) {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if params.Email != nil {
		fields["email"] = *params.Email
	}
	if params.Username != nil {
		fields["username"] = *params.Username
	}
	if params.Bio != nil {
		fields["bio"] = *params.Bio
	}
	if params.Password != nil {
		hashed, err := auth.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}
	if len(fields) > 0 {
		if err := s.users.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.users.FindByID(id)
}

// Delete removes a user and cascades: hosted post images, the profile photo,
// the user's posts, comments, like memberships and tokens. The external
// removals are best-effort; image-host deletes are idempotent so an
// interrupted cascade can be retried.
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	posts, err := s.posts.ListByUser(id)
	if err != nil {
		return err
	}
	var imageIDs []string
	for _, p := range posts {
		if p.ImageID != "" {
			imageIDs = append(imageIDs, p.ImageID)
		}
	}
	if len(imageIDs) > 0 {
		if err := s.images.RemoveMany(ctx, imageIDs); err != nil {
			logrus.WithError(err).WithField("user_id", id).Warn("post image cleanup failed")
		}
	}
	if user.ProfilePhotoID != "" {
		if err := s.images.Remove(ctx, user.ProfilePhotoID); err != nil {
			logrus.WithError(err).WithField("user_id", id).Warn("profile photo cleanup failed")
		}
	}

	for _, p := range posts {
		if err := s.posts.DeleteLikesByPost(p.ID); err != nil {
			return err
		}
		if err := s.comments.DeleteByPost(p.ID); err != nil {
			return err
		}
	}
	if err := s.posts.DeleteByUser(id); err != nil {
		return err
	}
	if err := s.comments.DeleteByUser(id); err != nil {
		return err
	}
	if err := s.posts.DeleteLikesByUser(id); err != nil {
		return err
	}
	if err := s.tokens.DeleteByUser(id); err != nil {
		return err
	}
	return s.users.DeleteByID(id)
}

// UpdateProfilePhoto uploads the new photo, then removes the old one from the
// image host. A failed removal of the old photo never blocks saving the new
// one.
func (s *UserService) UpdateProfilePhoto(ctx context.Context, userID uint64, localPath string) (imagehost.Image, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return imagehost.Image{}, ErrUserNotFound
		}
		return imagehost.Image{}, err
	}

	img, err := s.images.Upload(ctx, localPath)
	if err != nil {
		return imagehost.Image{}, err
	}
	if user.ProfilePhotoID != "" {
		if err := s.images.Remove(ctx, user.ProfilePhotoID); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("old profile photo removal failed")
		}
	}

	user.ProfilePhotoURL = img.URL
	user.ProfilePhotoID = img.ID
	if err := s.users.Save(user); err != nil {
		return imagehost.Image{}, err
	}
	return img, nil
}
