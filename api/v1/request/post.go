package request

// CreatePostRequest is bound from the multipart form that also carries the
// image file.
type CreatePostRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"required,min=10"`
	Category    string `form:"category" binding:"required"`
}

type UpdatePostRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Category    *string `json:"category" binding:"omitempty"`
}
