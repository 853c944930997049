package v1

import (
	"time"

	"bloghub/internal/auth"
	"bloghub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	TokenManager *auth.TokenManager
	Redis        *redis.Client
	UploadDir    string
	UploadMax    int64

	Auth       *AuthAPI
	Password   *PasswordAPI
	Users      *UserAPI
	Posts      *PostAPI
	Comments   *CommentAPI
	Categories *CategoryAPI
}

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	tm := deps.TokenManager
	upload := middleware.PhotoUpload(deps.UploadDir, deps.UploadMax)

	root := r.Group("/api/v1")

	authGroup := root.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		loginLimiter := middleware.RateLimiter(deps.Redis, "login", 5, time.Minute)
		authGroup.POST("/login", loginLimiter, deps.Auth.Login)
		authGroup.GET("/:userId/verify/:token", deps.Auth.VerifyAccount)
	}

	password := root.Group("/password")
	{
		resetLimiter := middleware.RateLimiter(deps.Redis, "reset_link", 5, time.Minute)
		password.POST("/reset-password-link", resetLimiter, deps.Password.SendResetLink)
		password.GET("/reset-password/:userId/:token", deps.Password.CheckResetLink)
		password.POST("/reset-password/:userId/:token", deps.Password.ResetPassword)
	}

	users := root.Group("/users")
	{
		users.GET("/profile", middleware.AdminOnly(tm), deps.Users.List)
		users.GET("/count", middleware.AdminOnly(tm), deps.Users.Count)
		users.GET("/profile/:id", deps.Users.Get)
		users.PUT("/profile/:id", middleware.SelfOnly(tm), deps.Users.Update)
		users.DELETE("/profile/:id", middleware.SelfOrAdmin(tm), deps.Users.Delete)
		users.POST("/profile/profile-photo-upload", middleware.Authenticated(tm), upload, deps.Users.UpdateProfilePhoto)
	}

	posts := root.Group("/posts")
	{
		posts.POST("", middleware.Authenticated(tm), upload, deps.Posts.Create)
		posts.GET("", deps.Posts.List)
		posts.GET("/count", deps.Posts.Count)
		posts.GET("/:id", deps.Posts.Get)
		posts.PUT("/:id", middleware.Authenticated(tm), deps.Posts.Update)
		posts.DELETE("/:id", middleware.Authenticated(tm), deps.Posts.Delete)
		posts.PUT("/upload-image/:id", middleware.Authenticated(tm), upload, deps.Posts.UpdateImage)
		posts.PUT("/like/:id", middleware.Authenticated(tm), deps.Posts.ToggleLike)
	}

	comments := root.Group("/comments")
	{
		comments.POST("", middleware.Authenticated(tm), deps.Comments.Create)
		comments.GET("", middleware.AdminOnly(tm), deps.Comments.List)
		comments.PUT("/:id", middleware.Authenticated(tm), deps.Comments.Update)
		comments.DELETE("/:id", middleware.Authenticated(tm), deps.Comments.Delete)
	}

	categories := root.Group("/categories")
	{
		categories.POST("", middleware.AdminOnly(tm), deps.Categories.Create)
		categories.GET("", deps.Categories.List)
		categories.DELETE("/:id", middleware.AdminOnly(tm), deps.Categories.Delete)
	}
}
