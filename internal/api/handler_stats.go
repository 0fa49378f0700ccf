package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/internal/stats"
)

// GithubStatsResponse is the read payload of /github-stats. Year values are
// rendered as strings to keep the wire contract of the original frontend.
type GithubStatsResponse struct {
	Username           string                  `json:"username"`
	Year               string                  `json:"year"`
	Years              []string                `json:"years"`
	Contributions      []model.ContributionDay `json:"contributions"`
	TotalContributions int                     `json:"totalContributions"`
	LastUpdated        string                  `json:"lastUpdated"`
}

// IngestResponse is the payload of a successful /github-stats/ingest call.
type IngestResponse struct {
	Status             string `json:"status"`
	ContributionsCount int    `json:"contributionsCount"`
	TotalContributions int    `json:"totalContributions"`
	LastUpdated        string `json:"lastUpdated"`
}

// getGithubStats serves the stored contribution data for a year. Without a
// year parameter the latest available year is returned.
func (h *Handler) getGithubStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var year *int
	yearStr := r.URL.Query().Get("year")
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			h.writeDetail(ctx, w, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		year = &parsed
	}

	view, err := h.Query.Query(year)
	if err != nil {
		if errors.Is(err, stats.ErrNotFound) {
			detail := "GitHub stats not found. Please ingest data first."
			if yearStr != "" {
				detail = fmt.Sprintf("GitHub stats not found for year %s. Please ingest data first.", yearStr)
			}
			h.writeDetail(ctx, w, http.StatusNotFound, detail)
			return
		}

		h.Logger.Error(ctx, "Failed to query github stats: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	years := make([]string, 0, len(view.Years))
	for _, y := range view.Years {
		years = append(years, strconv.Itoa(y))
	}

	contributions := view.Contributions
	if contributions == nil {
		contributions = []model.ContributionDay{}
	}

	h.writeJSON(ctx, w, http.StatusOK, GithubStatsResponse{
		Username:           view.Username,
		Year:               strconv.Itoa(view.Year),
		Years:              years,
		Contributions:      contributions,
		TotalContributions: view.TotalContributions,
		LastUpdated:        view.LastUpdated.UTC().Format(time.RFC3339),
	})
}

// ingestGithubStats triggers a refresh from the upstream provider. Gated by
// the X-GitHub-Stats-Secret header; an optional year parameter backfills a
// specific past year.
func (h *Handler) ingestGithubStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	year := 0
	yearStr := r.URL.Query().Get("year")
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			h.writeDetail(ctx, w, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		year = parsed
	}

	secret := r.Header.Get("X-GitHub-Stats-Secret")

	result, err := h.Ingester.Ingest(ctx, secret, year)
	if err != nil {
		var cooldownErr *stats.CooldownError

		switch {
		case errors.Is(err, stats.ErrSecretNotConfigured):
			h.writeDetail(ctx, w, http.StatusInternalServerError, "GitHub stats secret not configured on server")
		case errors.Is(err, stats.ErrUnauthorized):
			h.writeDetail(ctx, w, http.StatusUnauthorized, "Invalid or missing X-GitHub-Stats-Secret header")
		case errors.As(err, &cooldownErr):
			h.writeDetail(ctx, w, http.StatusTooManyRequests, cooldownErr.Error())
		default:
			h.Logger.Error(ctx, "Ingestion failed: %v", err)
			h.writeDetail(ctx, w, http.StatusInternalServerError, fmt.Sprintf("Failed to ingest GitHub stats: %v", err))
		}
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, IngestResponse{
		Status:             result.Status,
		ContributionsCount: result.ContributionsCount,
		TotalContributions: result.TotalContributions,
		LastUpdated:        result.LastUpdated.UTC().Format(time.RFC3339),
	})
}
