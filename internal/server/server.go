package server

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yamdb-team/yamdb-api/internal/config"
	"github.com/yamdb-team/yamdb-api/internal/handler"
	"github.com/yamdb-team/yamdb-api/internal/mailer"
	"github.com/yamdb-team/yamdb-api/internal/middleware"
	"github.com/yamdb-team/yamdb-api/internal/repository"
	"github.com/yamdb-team/yamdb-api/internal/search"
	"github.com/yamdb-team/yamdb-api/internal/service"
	"github.com/yamdb-team/yamdb-api/internal/validation"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	reindexer   *search.Reindexer
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterTagValidators(v); err != nil {
			log.Fatalf("failed to register validators: %v", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	var titleIndex search.TitleIndex
	var reindexer *search.Reindexer
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		titleIndex = search.NewMeiliTitleIndex(meiliClient)
		reindexer = search.NewReindexer(titleIndex, titleRepo, cfg.ReindexSchedule)
		reindexer.Start()
	}

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.EmailFrom,
		})
	} else {
		mail = mailer.NewLogMailer()
	}

	codeStore := service.NewConfirmationCodeStore(redisClient, cfg.ConfirmationCodeTTL)

	authService := service.NewAuthService(userRepo, codeStore, mail, redisClient, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	genreService := service.NewGenreService(genreRepo)
	genreHandler := handler.NewGenreHandler(genreService)

	titleService := service.NewTitleService(titleRepo, categoryRepo, genreRepo, titleIndex)
	titleHandler := handler.NewTitleHandler(titleService)

	reviewService := service.NewReviewService(reviewRepo, titleRepo, userRepo)
	reviewHandler := handler.NewReviewHandler(reviewService)

	commentService := service.NewCommentService(commentRepo, reviewRepo, userRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api/v1")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/token", authHandler.Token)
	}

	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/genres", genreHandler.ListGenres)
	api.GET("/titles", titleHandler.ListTitles)
	api.GET("/titles/:title_id", titleHandler.GetTitle)
	api.GET("/titles/:title_id/reviews", reviewHandler.ListReviews)
	api.GET("/titles/:title_id/reviews/:review_id", reviewHandler.GetReview)
	api.GET("/titles/:title_id/reviews/:review_id/comments", commentHandler.ListComments)
	api.GET("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.GetComment)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/users/me", userHandler.Me)
		protected.PATCH("/users/me", userHandler.UpdateMe)

		protected.POST("/titles/:title_id/reviews", reviewHandler.CreateReview)
		protected.PATCH("/titles/:title_id/reviews/:review_id", reviewHandler.UpdateReview)
		protected.DELETE("/titles/:title_id/reviews/:review_id", reviewHandler.DeleteReview)

		protected.POST("/titles/:title_id/reviews/:review_id/comments", commentHandler.CreateComment)
		protected.PATCH("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.UpdateComment)
		protected.DELETE("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.DeleteComment)

		// Admin-only routes
		adminGroup := protected.Group("")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", userHandler.ListUsers)
			adminGroup.POST("/users", userHandler.CreateUser)
			adminGroup.GET("/users/:username", userHandler.GetUser)
			adminGroup.PATCH("/users/:username", userHandler.UpdateUser)
			adminGroup.DELETE("/users/:username", userHandler.DeleteUser)

			adminGroup.POST("/categories", categoryHandler.CreateCategory)
			adminGroup.DELETE("/categories/:slug", categoryHandler.DeleteCategory)

			adminGroup.POST("/genres", genreHandler.CreateGenre)
			adminGroup.DELETE("/genres/:slug", genreHandler.DeleteGenre)

			adminGroup.POST("/titles", titleHandler.CreateTitle)
			adminGroup.PATCH("/titles/:title_id", titleHandler.UpdateTitle)
			adminGroup.DELETE("/titles/:title_id", titleHandler.DeleteTitle)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		reindexer:   reindexer,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Stop releases background workers. The HTTP listener is torn down by
// the process exit.
func (s *Server) Stop() {
	if s.reindexer != nil {
		s.reindexer.Stop()
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
