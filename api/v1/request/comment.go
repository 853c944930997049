package request

type CreateCommentRequest struct {
	PostID uint64 `json:"post_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
