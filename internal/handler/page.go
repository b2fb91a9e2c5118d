package handler

import (
	"net/http"

	"backoffice/internal/container"
	"backoffice/internal/middleware"
	"backoffice/internal/view"
	"backoffice/pkg/logger"
)

// PageData is what every page template receives
type PageData struct {
	Title     string
	Section   string
	Admin     string
	RequestID string
	Banner    string
	Model     view.Model
	Data      interface{}
}

// ListData backs the providers and activities tables
type ListData[T any] struct {
	Items   []T
	Total   int
	Loading bool
	Error   string
	Columns int
}

// pages carries what the HTML handlers share: session-backed view model
// handling and rendering.
type pages struct {
	container *container.Container
	renderer  *Renderer
}

func (p *pages) logger(r *http.Request) *logger.Logger {
	return p.container.GetLogger().WithFields(map[string]interface{}{
		"request_id": middleware.GetRequestID(r.Context()),
		"session_id": middleware.GetSessionID(r.Context()),
	})
}

// model loads the session's model and applies msgs. A model that cannot be
// loaded falls back to the initial one.
func (p *pages) model(r *http.Request, msgs ...view.Msg) view.Model {
	m, err := p.container.Sessions.Load(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		p.logger(r).WithError(err).Warn("Failed to load session, using initial state")
		m = view.Initial()
	}
	for _, msg := range msgs {
		m = view.Update(m, msg)
	}
	return m
}

func (p *pages) save(r *http.Request, m view.Model) {
	if err := p.container.Sessions.Save(r.Context(), middleware.GetSessionID(r.Context()), m); err != nil {
		p.logger(r).WithError(err).Warn("Failed to save session")
	}
}

// update loads, applies msgs and saves in one step
func (p *pages) update(r *http.Request, msgs ...view.Msg) view.Model {
	m := p.model(r, msgs...)
	p.save(r, m)
	return m
}

func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, name string, pd PageData) {
	pd.Admin = p.container.GetConfig().AdminName
	pd.RequestID = middleware.GetRequestID(r.Context())
	pd.Section = pd.Model.Page.Section()

	if err := p.renderer.Render(w, status, name, pd); err != nil {
		p.logger(r).WithError(err).Error("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// NavigationHandler handles moves that do not belong to one section
type NavigationHandler struct {
	pages
}

// Back handles POST /back
func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	m := h.update(r, view.Back{})
	redirect(w, r, m.Page.Path(m.SelectedActivity))
}
