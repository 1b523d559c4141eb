package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotstore/robot-store/backend/go-services/handlers"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/handler"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/service"
	"github.com/robotstore/robot-store/backend/go-services/pkg/logger"
	"github.com/robotstore/robot-store/backend/go-services/pkg/middleware"
)

// Deps are the collaborators the router wires into routes and middleware.
type Deps struct {
	Products *service.Service
	ErrorLog *middleware.ErrorLogger
	// RateLimit, when set, guards the catalog routes only.
	RateLimit gin.HandlerFunc
	Checks    map[string]handlers.Check
	// TrustedProxies may supply X-Forwarded-For. Empty means the client IP
	// is always the socket peer.
	TrustedProxies []string
}

// New builds the gin engine. Every request passes through request tracing,
// metrics and the error log before reaching its handler.
func New(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		logger.Warnf("invalid trusted proxies %v, trusting none: %v", d.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.RequestTrace(),
		middleware.RequestMetrics(),
		d.ErrorLog.Handler(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
			c.AbortWithStatusJSON(http.StatusInternalServerError, handler.Envelope{Message: handler.MsgUnexpected, Data: []any{}})
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.Envelope{Message: "Not found", Data: []any{}})
	})

	handlers.RegisterHealth(r, d.Checks)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	catalog := r.Group("/")
	if d.RateLimit != nil {
		catalog.Use(d.RateLimit)
	}
	handler.RegisterProductRoutes(catalog, d.Products)

	return r
}

// Handler is New wrapped with the permissive CORS policy; this is what the
// HTTP server serves.
func Handler(d Deps) http.Handler {
	return middleware.CORS(New(d))
}
