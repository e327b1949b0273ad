package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/filmoteca/movie-catalog/internal/api/handler"
	"github.com/filmoteca/movie-catalog/internal/api/middleware"
	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

// Services bundles the use-case implementations the router wires to handlers.
type Services struct {
	Auth   ports.AuthService
	Movies ports.MovieService
	Users  ports.UserService
	Sync   ports.SyncService
}

// NewRouter builds the Echo instance with all routes registered. Everything
// beyond /auth/*, the health probes, metrics, and swagger requires a valid
// token; mutation and administration additionally require the admin role.
func NewRouter(svcs Services, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Movies ---
	movieHandler := handler.NewMovieHandler(svcs.Movies, svcs.Sync)
	movies := e.Group("/movies", authRequired)
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get, anyRole)
	movies.POST("", movieHandler.Create, adminOnly)
	movies.PUT("/:id", movieHandler.Update, adminOnly)
	movies.DELETE("/:id", movieHandler.Delete, adminOnly)
	movies.POST("/sync-star-wars", movieHandler.SyncStarWars, adminOnly)

	// --- Users ---
	userHandler := handler.NewUserHandler(svcs.Users)
	users := e.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.PATCH("/:id/role", userHandler.UpdateRole)

	// --- Probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
