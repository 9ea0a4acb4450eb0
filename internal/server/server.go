package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/minikeyz/french-tax-system/internal/calculation"
	"github.com/minikeyz/french-tax-system/internal/config"
	"github.com/minikeyz/french-tax-system/internal/domain"
	"github.com/valyala/fasthttp"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server exposes the calculation engine over HTTP
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *slog.Logger
	srv    *fasthttp.Server
}

// New creates a server around an engine. A nil logger uses slog.Default().
func New(engine *calculation.CalculationEngine, parser *config.InputParser, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: engine, parser: parser, logger: logger}
	s.srv = &fasthttp.Server{
		Name:    "frenchtax",
		Handler: s.Handle,
	}
	return s
}

// ListenAndServe serves on addr until Shutdown is called
func (s *Server) ListenAndServe(addr string, readTimeout, writeTimeout time.Duration) error {
	s.srv.ReadTimeout = readTimeout
	s.srv.WriteTimeout = writeTimeout
	s.logger.Info("http server starting", "addr", addr)
	return s.srv.ListenAndServe(addr)
}

// Shutdown stops accepting connections and waits for open requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

// Handle routes a request
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	switch string(ctx.Path()) {
	case "/healthz":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			break
		}
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	case "/v1/simulations":
		s.handleSimulation(ctx)
	case "/v1/comparisons":
		s.handleComparison(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
	s.logger.Info("http request",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start))
}

func (s *Server) handleSimulation(ctx *fasthttp.RequestCtx) {
	sim, ok := s.decodeSimulation(ctx)
	if !ok {
		return
	}
	result, err := s.engine.RunSimulation(ctx, sim)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleComparison(ctx *fasthttp.RequestCtx) {
	sim, ok := s.decodeSimulation(ctx)
	if !ok {
		return
	}
	cmp, err := s.engine.Compare(ctx, sim)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, cmp)
}

func (s *Server) decodeSimulation(ctx *fasthttp.RequestCtx) (*domain.Simulation, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}
	var sim domain.Simulation
	if err := json.Unmarshal(ctx.PostBody(), &sim); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	if err := s.parser.ValidateSimulation(&sim); err != nil {
		s.writeEngineError(ctx, err)
		return nil, false
	}
	return &sim, true
}

func (s *Server) writeEngineError(ctx *fasthttp.RequestCtx, err error) {
	status := StatusFor(err)
	if status == fasthttp.StatusInternalServerError {
		s.logger.Error("simulation failed", "error", err)
	}
	writeError(ctx, status, err.Error())
}

// StatusFor maps an engine error to an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidHorizon):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownTaxYear):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
