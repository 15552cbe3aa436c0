package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sarah-habibi/blog-api/docs"
	"github.com/sarah-habibi/blog-api/internal/api/handler"
	"github.com/sarah-habibi/blog-api/internal/api/middleware"
	"github.com/sarah-habibi/blog-api/internal/core/auth"
	"github.com/sarah-habibi/blog-api/internal/core/service"
	mongodb "github.com/sarah-habibi/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sarah-habibi/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, issuer *auth.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowCredentials: true,
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	authService := service.NewAuthService(userRepo, issuer, log)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, statsCache, log)
	commentService := service.NewCommentService(commentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	guard := middleware.Auth(issuer)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.POST("/auth/google", authHandler.Google)

	// --- User routes ---
	api.PUT("/user/update/:userId", userHandler.Update, guard)
	api.DELETE("/user/delete/:userId", userHandler.Delete, guard)
	api.POST("/user/signout", userHandler.Signout)
	api.GET("/user/getusers", userHandler.GetUsers, guard)
	api.DELETE("/user/deleteuser/:userId", userHandler.DeleteUser, guard)
	api.GET("/user/:userId", userHandler.Get)

	// --- Post routes ---
	api.POST("/post/create", postHandler.Create, guard)
	api.GET("/post/getposts", postHandler.GetPosts)
	api.DELETE("/post/deletepost/:postId/:userId", postHandler.Delete, guard)
	api.PUT("/post/updatepost/:postId/:userId", postHandler.Update, guard)
	api.PUT("/post/bookmarkpost/:postId", postHandler.Bookmark, guard)
	api.GET("/post/mybookmarks/:userId", postHandler.MyBookmarks, guard)

	// --- Comment routes ---
	api.POST("/comment/create", commentHandler.Create, guard)
	api.GET("/comment/getPostComments/:postId", commentHandler.GetPostComments)
	api.PUT("/comment/likecomment/:commentId", commentHandler.Like, guard)
	api.PUT("/comment/editcomment/:commentId", commentHandler.Edit, guard)
	api.DELETE("/comment/deletecomment/:commentId", commentHandler.Delete, guard)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
