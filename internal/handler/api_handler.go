package handler

import (
	"net/http"

	"backoffice/internal/container"
	"backoffice/internal/domain"
	"backoffice/internal/search"
)

// APIHandler serves the filtered lists as JSON
type APIHandler struct {
	container *container.Container
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(container *container.Container) *APIHandler {
	return &APIHandler{
		container: container,
	}
}

// ListResponse is the JSON shape of a filtered list
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// Providers handles GET /api/providers?q=&name=&email=&phone=&company=
func (h *APIHandler) Providers(w http.ResponseWriter, r *http.Request) {
	st := h.container.GetCatalogService().LoadProviders(r.Context())
	if st.Err != nil {
		respondError(w, r, st.Err, h.container.GetLogger())
		return
	}

	q := r.URL.Query()
	items := search.FilterProviders(st.Items, q.Get("q"), domain.ProviderFilters{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Phone:   q.Get("phone"),
		Company: q.Get("company"),
	})

	respondJSON(w, http.StatusOK, ListResponse[domain.Provider]{Items: items, Count: len(items), Total: len(st.Items)})
}

// Activities handles GET /api/activities?q=&name=&code=&type=&location=
func (h *APIHandler) Activities(w http.ResponseWriter, r *http.Request) {
	st := h.container.GetCatalogService().LoadActivities(r.Context())
	if st.Err != nil {
		respondError(w, r, st.Err, h.container.GetLogger())
		return
	}

	q := r.URL.Query()
	items := search.FilterActivities(st.Items, q.Get("q"), domain.ActivityFilters{
		Name:     q.Get("name"),
		Code:     q.Get("code"),
		Type:     q.Get("type"),
		Location: q.Get("location"),
	})

	respondJSON(w, http.StatusOK, ListResponse[domain.Activity]{Items: items, Count: len(items), Total: len(st.Items)})
}
