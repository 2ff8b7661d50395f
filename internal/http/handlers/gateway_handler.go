// README: Provider gateway; one hosted model per route, raw text or CORDSLOC-parsed.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vadi/internal/ai"
)

type GatewayHandler struct {
	providers map[string]ai.LLMProvider
	log       *zap.Logger
}

// NewGatewayHandler takes providers keyed by route slug ("openai", "gemini", "claude").
func NewGatewayHandler(providers map[string]ai.LLMProvider, log *zap.Logger) *GatewayHandler {
	return &GatewayHandler{providers: providers, log: log}
}

type promptReq struct {
	Prompt *string `json:"prompt"`
}

// Root handles GET /.
func (h *GatewayHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": "Vadi GPT API Provider"})
}

// Slugs lists the configured providers in a stable order.
func (h *GatewayHandler) Slugs() []string {
	out := make([]string, 0, len(h.providers))
	for slug := range h.providers {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Ask returns the handler for POST /api/<slug>.
func (h *GatewayHandler) Ask(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, prompt, ok := h.bind(c, slug)
		if !ok {
			return
		}
		text, err := p.Ask(c.Request.Context(), prompt)
		if err != nil {
			h.fail(c, p, "", err)
			return
		}
		writeJSON(c, http.StatusOK, ai.TextResponse{Results: text})
	}
}

// AskParsed returns the handler for POST /api/<slug>/parsed.
func (h *GatewayHandler) AskParsed(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, prompt, ok := h.bind(c, slug)
		if !ok {
			return
		}
		text, err := p.Ask(c.Request.Context(), prompt)
		if err != nil {
			h.fail(c, p, " (parseado)", err)
			return
		}
		writeJSON(c, http.StatusOK, ai.ParseCoordinates(text))
	}
}

func (h *GatewayHandler) bind(c *gin.Context, slug string) (ai.LLMProvider, string, bool) {
	p, ok := h.providers[slug]
	if !ok {
		writeError(c, http.StatusNotFound, "unknown provider")
		return nil, "", false
	}
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == nil || strings.TrimSpace(*req.Prompt) == "" {
		writeJSON(c, http.StatusUnprocessableEntity, gin.H{"detail": "prompt is required"})
		return nil, "", false
	}
	return p, *req.Prompt, true
}

func (h *GatewayHandler) fail(c *gin.Context, p ai.LLMProvider, variant string, err error) {
	if errors.Is(err, context.Canceled) {
		c.Status(499)
		return
	}
	h.log.Warn("provider call failed", zap.String("provider", p.Name()), zap.Error(err))
	writeJSON(c, http.StatusBadGateway, gin.H{"detail": fmt.Sprintf("Error al llamar a %s%s: %v", p.Name(), variant, err)})
}
