package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/internal/stats"
	"github.com/jakekohl/portfolio/pkg/log"
)

// PortfolioData bundles the content models behind the read-only portfolio
// endpoints. A nil field makes its endpoints answer 503, matching the
// behavior when the database is unreachable.
type PortfolioData struct {
	ProfileMd   *model.Profile
	ProjectMd   *model.Project
	RoleMd      *model.Role
	ContactMd   *model.Contact
	SpecialtyMd *model.Specialty
}

// Handler manages the HTTP requests of the portfolio API
type Handler struct {
	Logger    log.Logger
	Config    *cfg.Config
	Query     *stats.QueryService
	Ingester  *stats.Ingester
	Portfolio *PortfolioData
}

// NewHandler creates a new API handler
func NewHandler(logger log.Logger, config *cfg.Config, query *stats.QueryService, ingester *stats.Ingester, portfolio *PortfolioData) (*Handler, error) {
	if portfolio == nil {
		portfolio = &PortfolioData{}
	}

	return &Handler{
		Logger:    logger,
		Config:    config,
		Query:     query,
		Ingester:  ingester,
		Portfolio: portfolio,
	}, nil
}

// RegisterRoutes sets up the HTTP routes of the API
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.getRoot)
	mux.HandleFunc("/health", h.getHealth)
	mux.HandleFunc("/me", h.getMe)
	mux.HandleFunc("/projects", h.getProjects)
	mux.HandleFunc("/projects/entities", h.getProjectEntities)
	mux.HandleFunc("/roles", h.getRoles)
	mux.HandleFunc("/contact", h.getContact)
	mux.HandleFunc("/github-stats", h.getGithubStats)
	mux.HandleFunc("/github-stats/ingest", h.ingestGithubStats)
}

// corsMiddleware answers preflights and stamps the configured origins on
// every response.
func (h *Handler) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := h.allowedOrigin(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-GitHub-Stats-Secret")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) allowedOrigin(origin string) string {
	for _, domain := range h.Config.Http.CorsDomains {
		if domain == "*" {
			return "*"
		}
		if domain == origin {
			return origin
		}
	}
	return ""
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error(ctx, "Failed to encode JSON response: %v", err)
	}
}

// writeDetail renders the error envelope used across the API: {"detail": ...}
func (h *Handler) writeDetail(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	h.writeJSON(ctx, w, status, map[string]string{"detail": detail})
}

const detailUnavailable = "Service temporarily unavailable. Please try again later."
