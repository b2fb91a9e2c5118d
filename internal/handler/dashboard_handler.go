package handler

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/view"
)

// DashboardHandler renders the landing page
type DashboardHandler struct {
	pages
}

// DashboardData backs the dashboard template
type DashboardData struct {
	Overview *domain.DashboardOverview
	Periods  []domain.Period
	MaxHour  int64
}

// Show handles GET /
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	msgs := []view.Msg{view.Navigate{Page: view.PageDashboard}}
	if period := r.URL.Query().Get("period"); period != "" {
		msgs = append(msgs, view.SetPeriod{Period: domain.Period(period)})
	}
	m := h.update(r, msgs...)

	overview, err := h.container.GetDashboardService().Overview(r.Context(), m.Period)
	if err != nil {
		h.logger(r).WithError(err).Error("Failed to build dashboard")
		overview = &domain.DashboardOverview{Period: m.Period, Hourly: domain.EmptyHourlySeries()}
		overview.Warnings = []string{"Tableau de bord indisponible"}
	}

	var peak int64 = 1
	for _, p := range overview.Hourly {
		peak = max(peak, p.Today, p.Previous)
	}

	h.render(w, r, http.StatusOK, "dashboard", PageData{
		Title: "Tableau de bord",
		Model: m,
		Data: DashboardData{
			Overview: overview,
			Periods:  domain.Periods,
			MaxHour:  peak,
		},
	})
}
