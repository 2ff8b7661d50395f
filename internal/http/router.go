// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vadi/internal/http/handlers"
	"vadi/internal/http/middleware"
)

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Log),
		middleware.Logging(deps.Log),
		middleware.CORS(deps.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	compareHandler := handlers.NewCompareHandler(deps.Compare, deps.Registry)
	r.POST("/api/compare", compareHandler.Submit)
	r.GET("/api/compare/latest", compareHandler.Latest)
	r.GET("/api/models", compareHandler.Models)

	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)
	r.GET("/api/notifications", notificationHandler.List)
	r.DELETE("/api/notifications/:id", notificationHandler.Dismiss)

	mapHandler := handlers.NewMapHandler(deps.Compare, deps.StaticMap, deps.Log)
	r.GET("/api/map", mapHandler.View)
	r.GET("/api/map.png", mapHandler.Image)

	gatewayHandler := handlers.NewGatewayHandler(deps.Providers, deps.Log)
	r.GET("/", gatewayHandler.Root)
	for _, slug := range gatewayHandler.Slugs() {
		r.POST("/api/"+slug, gatewayHandler.Ask(slug))
		r.POST("/api/"+slug+"/parsed", gatewayHandler.AskParsed(slug))
	}

	return r
}
