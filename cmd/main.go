package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "bloghub/api/v1"
	"bloghub/config"
	"bloghub/dao"
	"bloghub/internal/auth"
	"bloghub/internal/imagehost"
	"bloghub/internal/mail"
	myvalidator "bloghub/internal/validator"
	"bloghub/model"
	"bloghub/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rdb, err := config.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.User{},
		&model.VerificationToken{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.Category{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// external collaborators
	smtp := mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	mailer := mail.NewAsync(smtp, 10*time.Second)
	images, err := imagehost.NewCloudinary(cfg.Cloudinary.URL, cfg.Cloudinary.Folder)
	if err != nil {
		log.Fatalf("Failed to init image host: %v", err)
	}

	// DAO 层
	userDAO := dao.NewUserDAO(db)
	tokenDAO := dao.NewTokenDAO(db)
	postDAO := dao.NewPostDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	categoryDAO := dao.NewCategoryDAO(db)

	// Service 层
	tm := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.Expire)*time.Second)
	authService := service.NewAuthService(userDAO, tokenDAO, tm, mailer, cfg.Client.Domain)
	userService := service.NewUserService(userDAO, postDAO, commentDAO, tokenDAO, images)
	postService := service.NewPostService(postDAO, commentDAO, images)
	commentService := service.NewCommentService(commentDAO, userDAO, postDAO)
	categoryService := service.NewCategoryService(categoryDAO)

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("password", myvalidator.IsStrongPassword); err != nil {
			log.Fatalf("Failed to register validator: %v", err)
		}
	}

	v1.RegisterRoutes(r, v1.RouterDeps{
		TokenManager: tm,
		Redis:        rdb,
		UploadDir:    cfg.Upload.Dir,
		UploadMax:    cfg.Upload.MaxSize,
		Auth:         v1.NewAuthAPI(authService),
		Password:     v1.NewPasswordAPI(authService),
		Users:        v1.NewUserAPI(userService),
		Posts:        v1.NewPostAPI(postService),
		Comments:     v1.NewCommentAPI(commentService),
		Categories:   v1.NewCategoryAPI(categoryService),
	})

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
