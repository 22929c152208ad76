// Package server exposes the calculation engine over HTTP using fasthttp.
// The API is intentionally small: one endpoint to run a calculation, one to
// submit a lead, and a health probe.
package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/marketwise/savings-calculator/internal/calculation"
)

// Server routes API requests to the calculation engine and lead dispatcher.
//
// It is safe for concurrent use; the engine tables are read-only after start.
type Server struct {
	engine *calculation.Engine
	leads  LeadDispatcher
	logger *zap.Logger

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New builds a server. A nil dispatcher falls back to log-only dispatch and a
// nil logger to a no-op logger.
func New(engine *calculation.Engine, leads LeadDispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if leads == nil {
		leads = NewLogDispatcher(logger)
	}
	return &Server{
		engine: engine,
		leads:  leads,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Handler returns the root request handler with routing and access logging.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		s.route(ctx)
		s.logger.Debug("request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/healthz" && method == fasthttp.MethodGet:
		s.handleHealth(ctx)
	case path == "/api/v1/calculate" && method == fasthttp.MethodPost:
		s.handleCalculate(ctx)
	case path == "/api/v1/leads" && method == fasthttp.MethodPost:
		s.handleLead(ctx)
	case path == "/api/v1/calculate" || path == "/api/v1/leads":
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler())
}
