package handler

import (
	"net/http"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/search"
	"backoffice/internal/view"
	apperrors "backoffice/pkg/errors"
	"backoffice/pkg/utils"
)

const providerColumns = 4

// ProviderHandler serves the providers section
type ProviderHandler struct {
	pages
}

// ProviderFormData backs the add-provider form
type ProviderFormData struct {
	Values domain.CreateProviderRequest
	Errors map[string]interface{}
}

// List handles GET /providers. Every visit reloads the list.
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs := []view.Msg{view.Navigate{Page: view.PageProvidersList}}
	if q, ok := r.URL.Query()["q"]; ok {
		msgs = append(msgs, view.SetProviderSearch{Query: strings.TrimSpace(q[0])})
	}
	m := h.update(r, msgs...)

	st := h.container.GetCatalogService().LoadProviders(r.Context())
	data := ListData[domain.Provider]{
		Loading: st.Loading,
		Error:   apperrors.Message(st.Err),
		Total:   len(st.Items),
		Columns: providerColumns,
	}
	if st.Err == nil {
		data.Items = search.FilterProviders(st.Items, m.ProviderSearch, m.ProviderFilters)
	}

	h.render(w, r, http.StatusOK, "providers_list", PageData{
		Title: "Prestataires",
		Model: m,
		Data:  data,
	})
}

// ApplyFilters handles POST /providers/filters
func (h *ProviderHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirect(w, r, "/providers")
		return
	}
	h.update(r, view.ApplyProviderFilters{Filters: providerFiltersFromForm(r)})
	redirect(w, r, "/providers")
}

// ResetFilters handles POST /providers/filters/reset
func (h *ProviderHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.update(r, view.ResetProviderFilters{})
	redirect(w, r, "/providers")
}

// New handles GET /providers/new
func (h *ProviderHandler) New(w http.ResponseWriter, r *http.Request) {
	m := h.update(r, view.StartAddProvider{})
	h.render(w, r, http.StatusOK, "providers_add", PageData{
		Title: "Ajouter un prestataire",
		Model: m,
		Data:  ProviderFormData{},
	})
}

// Cancel handles POST /providers/new/cancel
func (h *ProviderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.update(r, view.CancelAddProvider{})
	redirect(w, r, "/providers")
}

// Create handles POST /providers. On failure the form is shown again with
// the entered values.
func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, ProviderFormData{}, "Formulaire invalide")
		return
	}

	req := domain.CreateProviderRequest{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   utils.NormalizePhoneNumber(r.PostForm.Get("phone_prefix"), r.PostForm.Get("phone")),
		Company: strings.TrimSpace(r.PostForm.Get("company")),
	}

	actor := h.container.GetConfig().AdminName
	if _, err := h.container.GetCatalogService().CreateProvider(r.Context(), actor, req); err != nil {
		form := ProviderFormData{Values: req}
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation {
			form.Errors = appErr.Details
		}
		h.renderForm(w, r, apperrors.StatusCode(err), form, apperrors.Message(err))
		return
	}

	h.update(r, view.ProviderCreated{})
	redirect(w, r, "/providers")
}

func (h *ProviderHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, form ProviderFormData, banner string) {
	m := h.update(r, view.Navigate{Page: view.PageProvidersAdd})
	h.render(w, r, status, "providers_add", PageData{
		Title:  "Ajouter un prestataire",
		Model:  m,
		Banner: banner,
		Data:   form,
	})
}

func providerFiltersFromForm(r *http.Request) domain.ProviderFilters {
	return domain.ProviderFilters{
		Name:    strings.TrimSpace(r.Form.Get("name")),
		Email:   strings.TrimSpace(r.Form.Get("email")),
		Phone:   strings.TrimSpace(r.Form.Get("phone")),
		Company: strings.TrimSpace(r.Form.Get("company")),
	}
}
