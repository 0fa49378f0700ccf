package api

import (
	"net/http"

	"github.com/jakekohl/portfolio/internal/model"
)

// MeResponse is the /me payload.
type MeResponse struct {
	Name        string             `json:"name"`
	Experiences []model.Experience `json:"experiences"`
}

// ContactResponse is the /contact payload.
type ContactResponse struct {
	Contact     []model.Contact   `json:"contact"`
	Specialties []model.Specialty `json:"specialties"`
}

// EntitiesResponse is the /projects/entities payload.
type EntitiesResponse struct {
	Entities []string `json:"entities"`
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Portfolio.ProfileMd == nil {
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	profile, err := h.Portfolio.ProfileMd.Get()
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch profile: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, MeResponse{
		Name:        profile.Name,
		Experiences: profile.Experiences,
	})
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Portfolio.ProjectMd == nil {
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	entity := r.URL.Query().Get("entity")

	projects, err := h.Portfolio.ProjectMd.All(entity)
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch projects: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	if projects == nil {
		projects = []model.Project{}
	}

	h.writeJSON(ctx, w, http.StatusOK, projects)
}

func (h *Handler) getProjectEntities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Portfolio.ProjectMd == nil {
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	entities, err := h.Portfolio.ProjectMd.Entities()
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch project entities: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	if entities == nil {
		entities = []string{}
	}

	h.writeJSON(ctx, w, http.StatusOK, EntitiesResponse{Entities: entities})
}

func (h *Handler) getRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Portfolio.RoleMd == nil {
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	roles, err := h.Portfolio.RoleMd.All()
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch roles: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	if roles == nil {
		roles = []model.Role{}
	}

	h.writeJSON(ctx, w, http.StatusOK, roles)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		h.writeDetail(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Portfolio.ContactMd == nil || h.Portfolio.SpecialtyMd == nil {
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	contacts, err := h.Portfolio.ContactMd.All()
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch contacts: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	specialties, err := h.Portfolio.SpecialtyMd.All()
	if err != nil {
		h.Logger.Error(ctx, "Failed to fetch specialties: %v", err)
		h.writeDetail(ctx, w, http.StatusServiceUnavailable, detailUnavailable)
		return
	}

	if contacts == nil {
		contacts = []model.Contact{}
	}
	if specialties == nil {
		specialties = []model.Specialty{}
	}

	h.writeJSON(ctx, w, http.StatusOK, ContactResponse{
		Contact:     contacts,
		Specialties: specialties,
	})
}
