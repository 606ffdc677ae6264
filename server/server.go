package server

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/openfiscal/wealthsim/config"
	"github.com/openfiscal/wealthsim/pkg/id"
	"github.com/openfiscal/wealthsim/revenue"
	"github.com/openfiscal/wealthsim/sim"
	"github.com/openfiscal/wealthsim/wealth"
)

// Server exposes the simulator over HTTP:
//
//	POST /simulate  run a simulation; omitted body fields keep defaults
//	GET  /revenue   linear revenue estimate, ?rate= in percent
//	GET  /healthz   liveness probe
type Server struct {
	cfg      Config
	log      *slog.Logger
	srv      *fasthttp.Server
	defaults config.SimulationConfig
}

func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      logger,
		defaults: config.Default().Simulation,
	}
	s.srv = &fasthttp.Server{
		Handler:      s.route,
		Name:         "wealthsim",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown or a listener
// error.
func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", "addr", s.cfg.Addr)
	return s.srv.ListenAndServe(s.cfg.Addr)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server shutting down")
	return s.srv.ShutdownWithContext(ctx)
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/simulate":
		s.handleSimulate(ctx)
	case "/revenue":
		s.handleRevenue(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	s.log.Info("request completed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	// Start from the defaults so omitted fields keep their default values.
	req := s.defaults
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	if err := req.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	tr := sim.Run(wealth.Default(), req.Parameters())
	resp := SimulateResponse{
		RunID:      id.New(),
		Parameters: req,
		Trajectory: tr,
		Shares:     tr.ShareSeries(),
		Summary:    sim.Summarize(tr),
	}

	s.log.Debug("simulation served",
		"run_id", resp.RunID,
		"years", req.Years,
		"tax_rate", req.TaxRate,
	)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleRevenue(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "GET required")
		return
	}

	rate := 1.0
	if arg := ctx.QueryArgs().Peek("rate"); len(arg) > 0 {
		parsed, err := strconv.ParseFloat(string(arg), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			writeError(ctx, fasthttp.StatusBadRequest, "rate must be a finite number")
			return
		}
		rate = parsed
	}

	writeJSON(ctx, fasthttp.StatusOK, revenue.Compare(rate))
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encode response: "+err.Error())
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
