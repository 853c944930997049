package v1

import (
	"net/http"
	"os"

	"bloghub/api/v1/request"
	"bloghub/middleware"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// UserAPI 聚合用户资料相关的 HTTP Handler。
type UserAPI struct {
	users *service.UserService
}

// NewUserAPI wires the user service into the HTTP handlers.
func NewUserAPI(users *service.UserService) *UserAPI {
	return &UserAPI{users: users}
}

// List returns every user. Admin only (enforced by the route).
func (u *UserAPI) List(c *gin.Context) {
	users, err := u.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Count returns the total user count. Admin only.
func (u *UserAPI) Count(c *gin.Context) {
	n, err := u.users.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Get returns one profile with its posts.
func (u *UserAPI) Get(c *gin.Context) {
	user, posts, err := u.users.GetProfile(middleware.PathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "posts": posts})
}

// Update applies a partial profile merge. Self only (enforced by the route).
func (u *UserAPI) Update(c *gin.Context) {
	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := u.users.Update(middleware.PathID(c), service.UpdateParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account with its cascade. Self or admin (enforced by the
// route).
func (u *UserAPI) Delete(c *gin.Context) {
	id := middleware.PathID(c)
	if err := u.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully", "user_id": id})
}

// UpdateProfilePhoto replaces the caller's hosted profile photo. The temp
// file saved by the upload middleware is removed afterwards.
func (u *UserAPI) UpdateProfilePhoto(c *gin.Context) {
	imagePath := c.GetString(middleware.CtxImagePath)
	defer os.Remove(imagePath)

	img, err := u.users.UpdateProfilePhoto(c.Request.Context(), c.GetUint64(middleware.CtxUserID), imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "your profile photo updated successfully",
		"profile_photo": gin.H{"url": img.URL, "id": img.ID},
	})
}
