package v1

import (
	"net/http"
	"os"
	"strconv"

	"bloghub/api/v1/request"
	"bloghub/middleware"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// PostAPI 聚合帖子相关的 HTTP Handler。
type PostAPI struct {
	posts *service.PostService
}

// NewPostAPI wires the post service into the HTTP handlers.
func NewPostAPI(posts *service.PostService) *PostAPI {
	return &PostAPI{posts: posts}
}

// Create stores a new post owned by the caller. The multipart form carries
// both the fields and the image.
func (p *PostAPI) Create(c *gin.Context) {
	imagePath := c.GetString(middleware.CtxImagePath)
	defer os.Remove(imagePath)

	var req request.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := p.posts.Create(c.Request.Context(), c.GetUint64(middleware.CtxUserID),
		req.Title, req.Description, req.Category, imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// List returns posts newest-first, filtered by ?category or paginated by
// ?page.
func (p *PostAPI) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	posts, err := p.posts.List(c.Query("category"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get returns one post with its comments.
func (p *PostAPI) Get(c *gin.Context) {
	post, comments, err := p.posts.Get(middleware.PathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "comments": comments})
}

// Count returns the total post count.
func (p *PostAPI) Count(c *gin.Context) {
	n, err := p.posts.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Update applies a partial field merge. Owner only, checked against the
// stored record.
func (p *PostAPI) Update(c *gin.Context) {
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := p.posts.Update(middleware.PathID(c), c.GetUint64(middleware.CtxUserID), service.PostUpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdateImage replaces the post's hosted image. Owner only.
func (p *PostAPI) UpdateImage(c *gin.Context) {
	imagePath := c.GetString(middleware.CtxImagePath)
	defer os.Remove(imagePath)

	post, err := p.posts.UpdateImage(c.Request.Context(), middleware.PathID(c),
		c.GetUint64(middleware.CtxUserID), imagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post has been updated successfully", "post": post})
}

// ToggleLike flips the caller's membership in the post's like set.
func (p *PostAPI) ToggleLike(c *gin.Context) {
	post, err := p.posts.ToggleLike(middleware.PathID(c), c.GetUint64(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes a post with its cascade. Owner or admin, checked against
// the stored record.
func (p *PostAPI) Delete(c *gin.Context) {
	id := middleware.PathID(c)
	principal := service.Principal{
		UserID:  c.GetUint64(middleware.CtxUserID),
		IsAdmin: c.GetBool(middleware.CtxIsAdmin),
	}
	if err := p.posts.Delete(c.Request.Context(), id, principal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post has been deleted successfully", "post_id": id})
}
