package request

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=100,email"`
	Username string `json:"username" binding:"required,min=5,max=200"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=100,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type ResetLinkRequest struct {
	Email string `json:"email" binding:"required,min=5,max=100,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,password"`
}
