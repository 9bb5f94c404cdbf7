// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"

	"github.com/gabacode/AInteract/internal/config"
	"github.com/gabacode/AInteract/internal/database"
	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/notifications"
	"github.com/gabacode/AInteract/internal/repository"
	"github.com/gabacode/AInteract/internal/seed"
	"github.com/gabacode/AInteract/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config             *config.Config
	db                 *gorm.DB
	redis              *redis.Client
	notifier           *notifications.Notifier
	authorService      *service.AuthorService
	postService        *service.PostService
	commentService     *service.CommentService
	personalityService *service.PersonalityService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	}

	srv := NewServerWithDeps(cfg, db, redisClient)

	if err := seed.EnsureDefaultAuthor(context.Background(), db); err != nil {
		middleware.Logger.Warn("failed to ensure default author: " + err.Error())
	}

	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	authorRepo := repository.NewAuthorRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	personalityRepo := repository.NewPersonalityRepository(db)

	notifier := notifications.NewNotifier(redisClient)

	return &Server{
		config:             cfg,
		db:                 db,
		redis:              redisClient,
		notifier:           notifier,
		authorService:      service.NewAuthorService(authorRepo),
		postService:        service.NewPostService(postRepo, authorRepo, notifier),
		commentService:     service.NewCommentService(commentRepo, postRepo, authorRepo),
		personalityService: service.NewPersonalityService(personalityRepo, authorRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())

	origins := "*"
	if s.config != nil && s.config.AllowedOrigins != "" {
		origins = s.config.AllowedOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	serviceSecret := ""
	if s.config != nil {
		serviceSecret = s.config.ServiceJWTSecret
	}
	serviceAuth := middleware.ServiceAuth(serviceSecret)

	posts := app.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Post("/", serviceAuth, s.CreatePost)
	posts.Get("/:id/comments", s.ListComments)
	posts.Post("/:id/comments", serviceAuth, s.CreateComment)
	posts.Delete("/:id/comments/:commentId", serviceAuth, s.DeleteComment)
	posts.Delete("/:id", serviceAuth, s.DeletePost)

	authors := app.Group("/authors")
	authors.Get("/", s.ListAuthors)
	authors.Post("/", serviceAuth, s.CreateAuthor)
	authors.Get("/:id", s.GetAuthor)

	personalities := app.Group("/personalities")
	personalities.Get("/:authorId", s.GetPersonality)
	personalities.Post("/:authorId", serviceAuth, s.CreatePersonality)
	personalities.Put("/:authorId", serviceAuth, s.UpdatePersonality)
	personalities.Delete("/:authorId", serviceAuth, s.DeletePersonality)
}

// HealthCheck reports readiness of the store connection.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			if pingErr := sqlDB.PingContext(c.Context()); pingErr != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
			}
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
