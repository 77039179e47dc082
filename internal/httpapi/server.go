package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homeprice/internal/estimator"
	"homeprice/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Regions() ([]string, error)
	Types() ([]string, error)
	Estimate(rooms, area float64, region, propertyType string) (estimator.Estimate, error)
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Group(func(r chi.Router) {
		r.Use(inflightMiddleware)

		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("pong"))
		})

		// @Summary  List regions
		// @Produce  json
		// @Success  200 {object} types.RegionsResponse
		// @Failure  503 {object} types.ErrorResponse
		// @Router   /regions [get]
		r.Get("/regions", func(w http.ResponseWriter, r *http.Request) {
			regions, err := svc.Regions()
			if err != nil {
				writeJSONError(w, statusFor(err), err.Error())
				return
			}
			writeJSON(w, types.RegionsResponse{Regions: orEmpty(regions)})
		})

		// @Summary  List property types
		// @Produce  json
		// @Success  200 {object} types.TypesResponse
		// @Failure  503 {object} types.ErrorResponse
		// @Router   /types [get]
		r.Get("/types", func(w http.ResponseWriter, r *http.Request) {
			kinds, err := svc.Types()
			if err != nil {
				writeJSONError(w, statusFor(err), err.Error())
				return
			}
			writeJSON(w, types.TypesResponse{Types: orEmpty(kinds)})
		})

		// @Summary  Estimate a property price
		// @Accept   json
		// @Produce  json
		// @Param    request body types.EstimateRequest true "Property"
		// @Success  200 {object} types.EstimateResponse
		// @Failure  400 {object} types.ErrorResponse
		// @Failure  415 {object} types.ErrorResponse
		// @Failure  422 {object} types.ErrorResponse
		// @Failure  503 {object} types.ErrorResponse
		// @Router   /estimate-price [post]
		r.Post("/estimate-price", func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lvl := requestLogLevel(r)
			// Content-Type check
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
				IncrementRejected("content_type")
				writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
				return
			}
			// Limit body size (configurable, default 1MiB)
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			var req types.EstimateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				// Too-large bodies also land here; report them as 400 without size details
				IncrementRejected("invalid_json")
				writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			if msg := missingField(req); msg != "" {
				IncrementRejected("missing_field")
				writeJSONError(w, http.StatusBadRequest, msg)
				return
			}
			if lvl >= LevelDebug {
				if zlog != nil {
					zlog.Debug().Float64("bhk", *req.BHK).Float64("area", *req.Area).
						Str("region", *req.Region).Str("type", *req.Type).Msg("estimate start")
				} else {
					log.Printf("estimate start bhk=%v area=%v region=%s type=%s", *req.BHK, *req.Area, *req.Region, *req.Type)
				}
			}

			est, err := svc.Estimate(*req.BHK, *req.Area, *req.Region, *req.Type)
			if err != nil {
				status := statusFor(err)
				if estimator.IsInvalidInput(err) {
					IncrementRejected("invalid_input")
				}
				writeJSONError(w, status, err.Error())
				logEnd(r, lvl, status, start, err)
				return
			}
			writeJSON(w, types.EstimateResponse{EstimatedPrice: est.Price})
			logEnd(r, lvl, http.StatusOK, start, nil)
		})

		// @Summary  Loaded artifact summary
		// @Produce  json
		// @Success  200 {object} types.StatusResponse
		// @Router   /status [get]
		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Status())
		})

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
			if svc.Ready() {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ready"))
				return
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("loading"))
		})
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	MountSwagger(r)

	return r
}

// missingField returns a client-facing message for the first absent field.
func missingField(req types.EstimateRequest) string {
	switch {
	case req.BHK == nil:
		return "bhk is required"
	case req.Area == nil:
		return "area is required"
	case req.Region == nil:
		return "region is required"
	case req.Type == nil:
		return "type is required"
	}
	return ""
}

// orEmpty keeps list responses encoded as [] rather than null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
