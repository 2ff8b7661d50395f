// README: Compare handlers; submit a prompt to the selected models and read the latest snapshot.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vadi/internal/modules/compare"
)

type CompareHandler struct {
	svc      *compare.Service
	registry *compare.Registry
}

func NewCompareHandler(svc *compare.Service, registry *compare.Registry) *CompareHandler {
	return &CompareHandler{svc: svc, registry: registry}
}

type compareReq struct {
	Prompt string   `json:"prompt"`
	Mode   string   `json:"mode"`
	Models []string `json:"models"`
}

type compareResp struct {
	*compare.Snapshot
	Ordered []compare.Envelope `json:"ordered"`
}

// Submit handles POST /api/compare.
func (h *CompareHandler) Submit(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeCompareError(c, compare.ErrEmptyPrompt)
		return
	}
	if strings.TrimSpace(req.Mode) == "" {
		req.Mode = string(compare.ModeVacation)
	}
	mode, err := compare.ParseMode(req.Mode)
	if err != nil {
		writeCompareError(c, err)
		return
	}
	models, err := h.registry.Select(req.Models)
	if err != nil {
		writeCompareError(c, err)
		return
	}

	snap, err := h.svc.Submit(c.Request.Context(), compare.Request{Prompt: req.Prompt, Mode: mode, Models: models})
	if err != nil {
		writeCompareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, compareResp{Snapshot: snap, Ordered: snap.Ordered()})
}

// Latest handles GET /api/compare/latest.
func (h *CompareHandler) Latest(c *gin.Context) {
	snap := h.svc.Latest()
	if snap == nil {
		writeError(c, http.StatusNotFound, "no submission yet")
		return
	}
	writeJSON(c, http.StatusOK, compareResp{Snapshot: snap, Ordered: snap.Ordered()})
}

// Models handles GET /api/models.
func (h *CompareHandler) Models(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"models": h.registry.All()})
}
