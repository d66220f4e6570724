package router

import (
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"closet/internal/auth"
	"closet/internal/config"
	"closet/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	itemHandler *handler.ClothingItemHandler,
	evalHandler *handler.EvaluationHandler,
	outfitHandler *handler.OutfitHandler,
	recHandler *handler.RecommendationHandler,
	profileHandler *handler.ProfileHandler,
	dashboardHandler *handler.DashboardHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served statically under their public URL prefix.
	e.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := e.Group("/api")

	// Public routes, rate limited per IP against credential stuffing.
	public := api.Group("/auth", RateLimitPerIP(rate.Limit(5), 10))
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.POST("/refresh", authHandler.Refresh)
	public.POST("/logout", authHandler.Logout)

	// Secured routes (require a valid session token).
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Wardrobe (self)
	secured.POST("/items", itemHandler.Create)
	secured.GET("/items", itemHandler.List)
	secured.GET("/items/:id", itemHandler.Get)
	secured.POST("/items/:id/transition", itemHandler.Transition)

	// Evaluations
	secured.PUT("/items/:id/evaluation", evalHandler.Upsert)
	secured.GET("/items/:id/evaluations", evalHandler.ListForItem)

	// Outfits
	secured.POST("/outfits", outfitHandler.Create)
	secured.GET("/outfits", outfitHandler.ListSelf)
	secured.GET("/outfits/mine", outfitHandler.ListMine)
	secured.GET("/outfits/:id", outfitHandler.Get)
	secured.PUT("/outfits/:id", outfitHandler.Update)
	secured.DELETE("/outfits/:id", outfitHandler.Delete)

	// Recommendations
	secured.POST("/recommendations", recHandler.Create)
	secured.GET("/recommendations", recHandler.ListSelf)
	secured.GET("/recommendations/issued", recHandler.ListIssued)
	secured.PUT("/recommendations/:id", recHandler.Edit)
	secured.DELETE("/recommendations/:id", recHandler.Delete)
	secured.PATCH("/recommendations/:id/status", recHandler.UpdateStatus)

	// Profile (self)
	secured.GET("/profile", profileHandler.Get)
	secured.PUT("/profile", profileHandler.Upsert)

	// Stylist views
	secured.GET("/users", userHandler.ListAssigned)
	secured.GET("/users/:id", userHandler.GetAssigned)
	secured.GET("/users/:id/items", itemHandler.ListForUser)
	secured.GET("/dashboard", dashboardHandler.Dashboard)

	// Uploads
	secured.POST("/uploads", uploadHandler.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RateLimitPerIP is a token-bucket limiter keyed by client IP.
func RateLimitPerIP(rps rate.Limit, burst int) echo.MiddlewareFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			mu.Lock()
			lim, ok := buckets[ip]
			if !ok {
				lim = rate.NewLimiter(rps, burst)
				buckets[ip] = lim
			}
			mu.Unlock()

			if !lim.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
