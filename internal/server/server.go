// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"focal/internal/config"
	"focal/internal/database"
	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/repository"
	"focal/internal/service"
	"focal/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	blobs          storage.BlobStore

	userService         *service.UserService
	followService       *service.FollowService
	photoService        *service.PhotoService
	feedService         *service.FeedService
	likeService         *service.LikeService
	commentService      *service.CommentService
	notificationService *service.NotificationService
	searchService       *service.SearchService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	blobs, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store initialization failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, blobs), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB and blob store.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, blobs storage.BlobStore) *Server {
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	prom := middleware.InitMetrics("focal-api")

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: prom,
		userRepo:       userRepo,
		blobs:          blobs,
	}

	server.notificationService = service.NewNotificationService(notificationRepo)
	server.userService = service.NewUserService(userRepo, followRepo, photoRepo)
	server.followService = service.NewFollowService(userRepo, followRepo, server.notificationService)
	server.photoService = service.NewPhotoService(photoRepo, blobs)
	server.feedService = service.NewFeedService(photoRepo, followRepo)
	server.likeService = service.NewLikeService(likeRepo, photoRepo, server.notificationService)
	server.commentService = service.NewCommentService(commentRepo, photoRepo, server.notificationService)
	server.searchService = service.NewSearchService(userRepo, photoRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Per-request server spans
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)
	auth.Post("/logout", s.Logout)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	// User routes; static segments before the generic /:username route
	users := protected.Group("/users")
	users.Put("/profile", s.UpdateMyProfile)
	users.Post("/follow/:username", s.FollowUser)
	users.Delete("/unfollow/:username", s.UnfollowUser)
	users.Get("/:username", s.GetUserProfile)

	// Photo routes
	photos := protected.Group("/photos")
	photos.Post("/", s.UploadPhoto)
	photos.Get("/", s.GetMyPhotos)
	photos.Get("/:id", s.GetPhoto)
	photos.Delete("/:id", s.DeletePhoto)

	// Feed
	protected.Get("/feed", s.GetFeed)

	// Likes
	likes := protected.Group("/likes")
	likes.Post("/", s.LikePhoto)
	likes.Get("/photo/:photoId/count", s.GetPhotoLikesCount)
	likes.Get("/photo/:photoId", s.GetPhotoLikes)
	likes.Delete("/:photoId", s.UnlikePhoto)

	// Comments
	comments := protected.Group("/comments")
	comments.Get("/photo/:photoId/count", s.GetPhotoCommentsCount)
	comments.Get("/photo/:photoId", s.GetPhotoComments)
	comments.Post("/photo/:photoId", s.CreateComment)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", s.GetNotifications)
	notifications.Post("/read-all", s.MarkAllNotificationsRead)
	notifications.Post("/:id/read", s.MarkNotificationRead)

	// Search
	protected.Get("/search", s.Search)
}

// AuthRequired returns middleware that enforces a valid bearer token and
// resolves it to an existing user.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		// Both subject and email are required claims.
		subStr, ok := claims["sub"].(string)
		if !ok || subStr == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token structure - missing subject"))
		}
		if email, ok := claims["email"].(string); !ok || email == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token structure - missing email"))
		}

		userIDVal, err := strconv.ParseUint(subStr, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}
		userID := uint(userIDVal)

		// The subject must map to an existing user.
		if _, err := s.userRepo.GetByID(c.Context(), userID); err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unknown token subject"))
		}

		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
