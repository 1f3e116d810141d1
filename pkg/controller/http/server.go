package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/scoring"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/secmon-lab/hl7risk/pkg/utils/errutil"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
	"github.com/secmon-lab/hl7risk/pkg/utils/safe"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	version string
}

type Options func(*Server)

func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

// New builds the read-only catalog API. Nothing it serves depends on user
// answers.
func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/factors", s.factorsHandler)
		r.Get("/tiers", s.tiersHandler)
		r.Get("/register", s.registerHandler)
		r.Get("/register/summary", s.registerSummaryHandler)
		r.Get("/vendors", s.vendorsHandler)
		r.Get("/vendors/{vendorID}", s.vendorHandler)
		r.Get("/phases", s.phasesHandler)
		r.Get("/phases/{phaseID}", s.phaseHandler)
		r.Get("/search", s.searchHandler)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errutil.HandleHTTP(r.Context(), w, goerr.New("not found", goerr.V("path", r.URL.Path)), http.StatusNotFound)
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) factorsHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Factors     []model.RiskFactor `json:"factors"`
		TotalWeight int                `json:"total_weight"`
	}

	factors := s.uc.Assessment.Factors()
	resp := response{Factors: factors}
	for _, f := range factors {
		resp.TotalWeight += f.Weight
	}
	writeJSON(w, r, resp)
}

func (s *Server) tiersHandler(w http.ResponseWriter, r *http.Request) {
	type tierResponse struct {
		model.Classification
		UpperBound      float64  `json:"upper_bound"`
		Recommendations []string `json:"recommendations"`
	}
	type response struct {
		Tiers []tierResponse `json:"tiers"`
	}

	tiers := types.AllTiers()
	resp := response{Tiers: make([]tierResponse, 0, len(tiers))}
	for _, tier := range tiers {
		c, ok := scoring.Classification(tier)
		if !ok {
			continue
		}
		resp.Tiers = append(resp.Tiers, tierResponse{
			Classification:  c,
			UpperBound:      scoring.UpperBound(tier),
			Recommendations: scoring.DeriveRecommendations(tier),
		})
	}
	writeJSON(w, r, resp)
}

type registerItemResponse struct {
	model.RegisterItem
	RiskScore int `json:"risk_score"`
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Items      []registerItemResponse `json:"items"`
		Categories []string               `json:"categories"`
	}

	q := r.URL.Query()
	filter := usecase.RegisterFilter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
	if raw := q.Get("min_score"); raw != "" {
		score, err := strconv.Atoi(raw)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(types.ErrInvalidInput, "min_score must be an integer", goerr.V("min_score", raw)), http.StatusBadRequest)
			return
		}
		filter.MinScore = score
	}

	items, err := s.uc.Register.List(r.Context(), filter)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	resp := response{
		Items:      make([]registerItemResponse, len(items)),
		Categories: s.uc.Register.Categories(),
	}
	for i, item := range items {
		resp.Items[i] = registerItemResponse{RegisterItem: item, RiskScore: item.RiskScore()}
	}
	writeJSON(w, r, resp)
}

func (s *Server) registerSummaryHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, s.uc.Register.Summary(r.Context()))
}

func (s *Server) vendorsHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Vendors       []model.VendorGuide    `json:"vendors"`
		Categories    []types.VendorCategory `json:"categories"`
		SupportLevels []types.SupportLevel   `json:"support_levels"`
	}

	q := r.URL.Query()
	vendors := s.uc.Vendor.Search(r.Context(), usecase.VendorFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Support:  q.Get("support"),
	})

	writeJSON(w, r, response{
		Vendors:       vendors,
		Categories:    s.uc.Vendor.Categories(),
		SupportLevels: s.uc.Vendor.SupportLevels(),
	})
}

func (s *Server) vendorHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "vendorID")
	vendor, ok := s.uc.Vendor.Get(r.Context(), id)
	if !ok {
		errutil.HandleHTTP(r.Context(), w, goerr.New("vendor not found", goerr.V("vendor_id", id)), http.StatusNotFound)
		return
	}
	writeJSON(w, r, vendor)
}

func (s *Server) phasesHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := s.uc.Phase.Plan(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, plan)
}

func (s *Server) phaseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "phaseID")
	phase, ok := s.uc.Phase.Get(r.Context(), id)
	if !ok {
		errutil.HandleHTTP(r.Context(), w, goerr.New("phase not found", goerr.V("phase_id", id)), http.StatusNotFound)
		return
	}
	writeJSON(w, r, phase)
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Results    []model.ContentItem `json:"results"`
		Categories []string            `json:"categories"`
	}

	q := r.URL.Query()
	writeJSON(w, r, response{
		Results: s.uc.Search.Search(r.Context(), usecase.SearchFilter{
			Query:    q.Get("q"),
			Category: q.Get("category"),
		}),
		Categories: s.uc.Search.Categories(),
	})
}
