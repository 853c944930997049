package v1

import (
	"net/http"

	"bloghub/api/v1/request"
	"bloghub/middleware"
	"bloghub/service"

	"github.com/gin-gonic/gin"
)

// CommentAPI 聚合评论相关的 HTTP Handler。
type CommentAPI struct {
	comments *service.CommentService
}

// NewCommentAPI wires the comment service into the HTTP handlers.
func NewCommentAPI(comments *service.CommentService) *CommentAPI {
	return &CommentAPI{comments: comments}
}

// Create stores a comment owned by the caller.
func (a *CommentAPI) Create(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := a.comments.Create(c.GetUint64(middleware.CtxUserID), req.PostID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List returns every comment. Admin only (enforced by the route).
func (a *CommentAPI) List(c *gin.Context) {
	comments, err := a.comments.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Update replaces a comment's text. Owner only, checked against the stored
// record.
func (a *CommentAPI) Update(c *gin.Context) {
	var req request.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := a.comments.Update(middleware.PathID(c), c.GetUint64(middleware.CtxUserID), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment. Owner or admin.
func (a *CommentAPI) Delete(c *gin.Context) {
	principal := service.Principal{
		UserID:  c.GetUint64(middleware.CtxUserID),
		IsAdmin: c.GetBool(middleware.CtxIsAdmin),
	}
	if err := a.comments.Delete(middleware.PathID(c), principal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment has been deleted successfully"})
}
