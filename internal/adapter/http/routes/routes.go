package routes

import (
	_ "repairhub/docs" // generated by swag init
	"repairhub/internal/adapter/http/handlers"
	"repairhub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1      = "/v1"
	PathPing    = "/ping"
	PathSwagger = "/swagger/*any"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	ServiceRequests *handlers.ServiceRequestHandler
	Wallets         *handlers.WalletHandler
}

type Options struct {
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         zerolog.Logger
}

// NewRouter builds the gin engine. Everything under /v1 except /v1/ping
// requires a bearer token.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	// Swagger documentation endpoint
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)

	authenticated := v1.Group("", middleware.Authentication(opts.JWTSecret, opts.Logger))
	addServiceRequestRoutes(authenticated, h.ServiceRequests)
	addWalletRoutes(authenticated, h.Wallets)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.RequestLogging(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware())
}
