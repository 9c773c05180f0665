// Package http exposes validation over a JSON API, for platforms that check
// environments remotely (deploy pipelines, dashboards, sidecars).
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	"github.com/wajahatiqbal22/env-config-validator/internal/logging"
	"github.com/wajahatiqbal22/env-config-validator/pkg/adapters/memory"
	"github.com/wajahatiqbal22/env-config-validator/pkg/domain"
	"github.com/wajahatiqbal22/env-config-validator/pkg/schema"
)

var (
	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "env_validator_validations_total",
			Help: "Total number of validation runs by outcome",
		},
		[]string{"outcome"},
	)
	validationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "env_validator_validation_duration_seconds",
			Help: "Duration of validation runs",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(validationsTotal, validationDuration)
}

// Server serves one engine: its schema answers GET /v1/schema, its sources
// are the default environment for POST /v1/validate.
type Server struct {
	engine *envvalidator.Engine
	logger *slog.Logger
}

// ValidateRequest optionally overrides what a validation run checks: an
// explicit environment instead of the server's sources, an inline schema
// instead of the served one, or both.
type ValidateRequest struct {
	Env          map[string]string `json:"env,omitempty"`
	Schema       json.RawMessage   `json:"schema,omitempty"`
	AllowUnknown bool              `json:"allowUnknown,omitempty"`
}

// InfoResponse describes the running server.
type InfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Schema    string `json:"schema"`
	Variables int    `json:"variables"`
	Required  int    `json:"required"`
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *envvalidator.Engine, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	server := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", server.Health)
	r.Get("/info", server.Info)
	r.Get("/v1/schema", server.GetSchema)
	r.Post("/v1/validate", server.Validate)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Validate handles the POST /v1/validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	eng := s.engine
	if len(body.Schema) > 0 || body.Env != nil {
		override, err := s.engineFor(body)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid schema: %v", err), http.StatusBadRequest)
			return
		}
		eng = override
	}

	start := time.Now()
	result := eng.Validate(r.Context())
	outcome := outcomeLabel(result)
	validationsTotal.WithLabelValues(outcome).Inc()
	validationDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	s.logger.Info("validation served",
		"outcome", outcome,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))

	writeJSON(w, s.logger, result)
}

// engineFor builds a one-off engine for a request that supplies its own
// schema or environment. Request environments are validated as-is; the
// server's sources are used when only the schema is overridden.
func (s *Server) engineFor(body ValidateRequest) (*envvalidator.Engine, error) {
	target := s.engine.Schema()
	if len(body.Schema) > 0 {
		parsed, err := schema.Parse(body.Schema)
		if err != nil {
			return nil, err
		}
		target = parsed
	}

	opts := []envvalidator.Option{
		envvalidator.WithLogger(s.logger),
		envvalidator.WithAllowUnknown(body.AllowUnknown),
	}
	if body.Env != nil {
		opts = append(opts, envvalidator.WithSources(memory.NewSource(body.Env)))
	} else {
		opts = append(opts, envvalidator.WithSources(s.engine.Sources()...))
	}
	return envvalidator.NewFromSchema(target, opts...)
}

// GetSchema handles the GET /v1/schema request, returning the schema with
// its property order intact.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(s.engine.Schema())
	if err != nil {
		http.Error(w, fmt.Sprintf("Marshal error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// Health handles the GET /health request.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Info handles the GET /info request.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, InfoResponse{
		Name:      "env-config-validator",
		Version:   envvalidator.Version,
		Schema:    s.engine.Name,
		Variables: s.engine.Schema().Len(),
		Required:  len(s.engine.Schema().Required),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}

func outcomeLabel(result domain.Result) string {
	switch {
	case result.Valid:
		return "valid"
	case len(result.Errors) > 0 && result.Errors[0].Key == domain.BoundaryKey:
		return "aborted"
	default:
		return "invalid"
	}
}
