// README: API server; wires module services into the gin router.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"vadi/internal/ai"
	"vadi/internal/logger"
	"vadi/internal/maps"
	"vadi/internal/modules/compare"
	"vadi/internal/modules/notify"
)

type ServerDeps struct {
	Compare       *compare.Service
	Registry      *compare.Registry
	Notifications *notify.MemorySink
	StaticMap     *maps.StaticService
	// Providers are the gateway routes keyed by slug; nil disables the gateway.
	Providers   map[string]ai.LLMProvider
	CORSOrigins []string
	Log         *zap.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	deps.Log = logger.OrNop(deps.Log)
	if deps.Notifications == nil {
		deps.Notifications = notify.NewMemorySink()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.deps)
}

