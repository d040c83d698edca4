package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tamriel-archive/lore-api/docs"
	"github.com/tamriel-archive/lore-api/internal/api/handler"
	"github.com/tamriel-archive/lore-api/internal/api/middleware"
	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs from the rest of the
// process. Limiter may be nil, which disables rate limiting.
type Dependencies struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Posts      ports.PostService
	Comments   ports.CommentService
	Categories ports.CategoryService
	Lore       ports.LoreService

	Verifier ports.TokenVerifier
	Limiter  middleware.Limiter
	Pingers  map[string]handler.Pinger

	Cookie handler.CookieConfig
	Log    zerolog.Logger

	// Registerer and Gatherer back the HTTP metrics and /metrics. They
	// default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// Production hides the Swagger UI.
	Production bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.Cookie.Name == "" {
		deps.Cookie.Name = middleware.DefaultCookieName
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "lore",
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper:    skipOperational,
	}))
	e.Use(requestLogger(deps.Log))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Pingers)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	if !deps.Production {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	authn := middleware.Auth(deps.Verifier, deps.Cookie.Name, deps.Log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	staff := middleware.RequireRole(domain.RoleAdmin, domain.RoleModerator)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register, limit(deps, "register")...)
	auth.POST("/login", authHandler.Login, limit(deps, "login")...)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authn)

	v1 := e.Group("/v1")

	// --- Users ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := v1.Group("/users", authn)
	users.GET("", userHandler.List, staff)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.PUT("/:id/role", userHandler.ChangeRole, adminOnly)

	// --- Categories ---
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authn, adminOnly)
	categories.PATCH("/:id", categoryHandler.Update, authn, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authn, adminOnly)

	// --- Posts & comments ---
	postHandler := handler.NewPostHandler(deps.Posts, deps.Comments)
	posts := v1.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authn)
	posts.PATCH("/:id", postHandler.Update, authn)
	posts.DELETE("/:id", postHandler.Delete, authn)
	posts.GET("/:id/comments", postHandler.ListComments)
	posts.POST("/:id/comments", postHandler.AddComment, authn)

	comments := v1.Group("/comments", authn)
	comments.PATCH("/:id", postHandler.UpdateComment)
	comments.DELETE("/:id", postHandler.DeleteComment)

	// --- Lore ---
	loreHandler := handler.NewLoreHandler(deps.Lore)
	lore := v1.Group("/lore")
	lore.GET("/:kind", loreHandler.List)
	lore.GET("/:kind/:slug", loreHandler.Get)
	lore.POST("/:kind", loreHandler.Create, authn, staff)
	lore.PATCH("/:kind/:slug", loreHandler.Update, authn, staff)
	lore.DELETE("/:kind/:slug", loreHandler.Delete, authn, staff)

	return e
}

func limit(deps Dependencies, bucket string) []echo.MiddlewareFunc {
	if deps.Limiter == nil {
		return nil
	}
	return []echo.MiddlewareFunc{middleware.RateLimit(deps.Limiter, bucket, deps.Log)}
}

func skipOperational(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				evt = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				evt = log.Warn()
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
