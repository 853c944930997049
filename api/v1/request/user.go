package request

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,min=5,max=100,email"`
	Username *string `json:"username" binding:"omitempty,min=5,max=200"`
	Password *string `json:"password" binding:"omitempty,password"`
	Bio      *string `json:"bio"`
}
