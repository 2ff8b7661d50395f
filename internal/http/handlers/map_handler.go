// README: Map handlers over the latest snapshot's merged locations.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vadi/internal/maps"
	"vadi/internal/modules/compare"
	"vadi/internal/modules/location"
)

const mapLoadError = "Error cargando el mapa"

type MapHandler struct {
	svc    *compare.Service
	static *maps.StaticService
	log    *zap.Logger
}

func NewMapHandler(svc *compare.Service, static *maps.StaticService, log *zap.Logger) *MapHandler {
	return &MapHandler{svc: svc, static: static, log: log}
}

func (h *MapHandler) view() maps.View {
	var points []location.Point
	if snap := h.svc.Latest(); snap != nil {
		points = snap.Locations
	}
	return maps.BuildView(points)
}

// View handles GET /api/map.
func (h *MapHandler) View(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.view())
}

// Image handles GET /api/map.png.
func (h *MapHandler) Image(c *gin.Context) {
	png, err := h.static.Render(c.Request.Context(), h.view())
	if err != nil {
		h.log.Warn("static map failed", zap.Error(err))
		writeError(c, http.StatusBadGateway, mapLoadError)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
