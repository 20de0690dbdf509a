package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogcraft/blog-api/internal/api/handler"
	"github.com/blogcraft/blog-api/internal/api/middleware"
	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/ports"
	"github.com/blogcraft/blog-api/internal/core/service"
	mongodb "github.com/blogcraft/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/blogcraft/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, activity ports.ActivitySink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	views := redisdb.NewViewCounter(rdb)

	authService := service.NewAuthService(userRepo, tokens, activity)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, views, activity, log)
	commentService := service.NewCommentService(commentRepo, postRepo, activity)
	categoryService := service.NewCategoryService(categoryRepo)

	userHandler := handler.NewUserHandler(authService, userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	authRequired := middleware.Auth(tokens)
	authorOnly := middleware.RBAC(domain.RoleAuthor)

	// --- Base routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Blog API is up")
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Posts ---
	posts := e.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.POST("", postHandler.Create)
	posts.GET("/:id", postHandler.Get)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Users ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, authRequired)
	users.DELETE("/:id", userHandler.Delete, authRequired)

	// --- Comments ---
	comments := e.Group("/api/comments")
	comments.GET("/post/:postId", commentHandler.ListByPost)
	comments.POST("", commentHandler.Create)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Categories ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create, authRequired, authorOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authRequired, authorOnly)

	return e
}
