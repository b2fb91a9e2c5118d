package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain"
	"backoffice/internal/search"
	"backoffice/internal/view"
	apperrors "backoffice/pkg/errors"
)

const activityColumns = 7

// ActivityHandler serves the activities section
type ActivityHandler struct {
	pages
}

// WizardData backs the activity creation wizard
type WizardData struct {
	Wizard view.Wizard
	Errors map[string]interface{}
}

// DetailData backs the activity detail page
type DetailData struct {
	Activity *domain.Activity
	Tab      view.Tab
}

// List handles GET /activities. Every visit reloads the list.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs := []view.Msg{view.Navigate{Page: view.PageActivitiesList}}
	if q, ok := r.URL.Query()["q"]; ok {
		msgs = append(msgs, view.SetActivitySearch{Query: strings.TrimSpace(q[0])})
	}
	m := h.update(r, msgs...)

	st := h.container.GetCatalogService().LoadActivities(r.Context())
	data := ListData[domain.Activity]{
		Loading: st.Loading,
		Error:   apperrors.Message(st.Err),
		Total:   len(st.Items),
		Columns: activityColumns,
	}
	if st.Err == nil {
		data.Items = search.FilterActivities(st.Items, m.ActivitySearch, m.ActivityFilters)
	}

	h.render(w, r, http.StatusOK, "activities_list", PageData{
		Title: "Activités",
		Model: m,
		Data:  data,
	})
}

// ApplyFilters handles POST /activities/filters
func (h *ActivityHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirect(w, r, "/activities")
		return
	}
	h.update(r, view.ApplyActivityFilters{Filters: domain.ActivityFilters{
		Name:     strings.TrimSpace(r.Form.Get("name")),
		Code:     strings.TrimSpace(r.Form.Get("code")),
		Type:     strings.TrimSpace(r.Form.Get("type")),
		Location: strings.TrimSpace(r.Form.Get("location")),
	}})
	redirect(w, r, "/activities")
}

// ResetFilters handles POST /activities/filters/reset
func (h *ActivityHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.update(r, view.ResetActivityFilters{})
	redirect(w, r, "/activities")
}

// New handles GET /activities/new. A wizard already in progress is resumed.
func (h *ActivityHandler) New(w http.ResponseWriter, r *http.Request) {
	m := h.model(r)
	if m.Page != view.PageActivitiesAdd {
		m = view.Update(m, view.StartAddActivity{})
		h.save(r, m)
	}
	h.renderWizard(w, r, http.StatusOK, m, nil, "")
}

// Wizard handles POST /activities/new. The fields of the current step are
// captured first, then the requested action is applied.
func (h *ActivityHandler) Wizard(w http.ResponseWriter, r *http.Request) {
	m := h.model(r, view.Navigate{Page: view.PageActivitiesAdd})
	if err := r.ParseForm(); err != nil {
		h.renderWizard(w, r, http.StatusBadRequest, m, nil, "Formulaire invalide")
		return
	}

	for _, msg := range stepMessages(m.Wizard, r) {
		m = view.Update(m, msg)
	}

	action := r.PostForm.Get("action")
	switch {
	case action == "cancel":
		h.save(r, view.Update(m, view.CancelAddActivity{}))
		redirect(w, r, "/activities")
		return
	case action == "submit" && m.Wizard.Last():
		h.submit(w, r, m)
		return
	default:
		if msg := actionMessage(action); msg != nil {
			m = view.Update(m, msg)
		}
	}

	h.save(r, m)
	redirect(w, r, "/activities/new")
}

func (h *ActivityHandler) submit(w http.ResponseWriter, r *http.Request, m view.Model) {
	h.save(r, m)

	actor := h.container.GetConfig().AdminName
	_, err := h.container.GetCatalogService().CreateActivity(r.Context(), actor, m.Wizard.Request())
	if err != nil {
		var fieldErrors map[string]interface{}
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeValidation {
			fieldErrors = appErr.Details
		}
		h.renderWizard(w, r, apperrors.StatusCode(err), m, fieldErrors, apperrors.Message(err))
		return
	}

	h.save(r, view.Update(m, view.ActivityCreated{}))
	redirect(w, r, "/activities")
}

func (h *ActivityHandler) renderWizard(w http.ResponseWriter, r *http.Request, status int, m view.Model, fieldErrors map[string]interface{}, banner string) {
	h.render(w, r, status, "activities_add", PageData{
		Title:  "Nouvelle Activité",
		Model:  m,
		Banner: banner,
		Data:   WizardData{Wizard: m.Wizard, Errors: fieldErrors},
	})
}

// Detail handles GET /activities/{key}
func (h *ActivityHandler) Detail(w http.ResponseWriter, r *http.Request) {
	key := activityKey(r)

	m := h.model(r)
	if m.Page != view.PageActivitiesDetail || m.SelectedActivity != key {
		m = view.Update(m, view.SelectActivity{Key: key})
	}
	if tab := r.URL.Query().Get("tab"); tab != "" {
		m = view.Update(m, view.SelectTab{Tab: view.Tab(tab)})
	}
	h.save(r, m)

	activity, err := h.container.GetCatalogService().FindActivity(r.Context(), key)
	if err != nil {
		h.render(w, r, apperrors.StatusCode(err), "activities_detail", PageData{
			Title:  "Activité",
			Model:  m,
			Banner: apperrors.Message(err),
			Data:   DetailData{Tab: m.DetailTab},
		})
		return
	}

	h.render(w, r, http.StatusOK, "activities_detail", PageData{
		Title: activity.Name,
		Model: m,
		Data:  DetailData{Activity: activity, Tab: m.DetailTab},
	})
}

// activityKey returns the {key} segment as the catalog stores it. chi matches
// on the escaped path when the request has one, so links built with
// view.PageActivitiesDetail.Path come back percent-encoded.
func activityKey(r *http.Request) string {
	key := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return key
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}

// stepMessages reads the inputs shown on the wizard's current step
func stepMessages(wz view.Wizard, r *http.Request) []view.Msg {
	form := r.PostForm
	switch wz.Step {
	case 1:
		if !form.Has("nom") {
			return nil
		}
		return []view.Msg{view.WizardEdit{
			Name:                strings.TrimSpace(form.Get("nom")),
			Code:                strings.TrimSpace(form.Get("code")),
			FullPaymentRequired: form.Get("paiementTotalExigee") != "",
		}}
	case 2:
		var msgs []view.Msg
		for _, day := range wz.Schedule {
			for i := range day.Slots {
				prefix := "slot-" + day.Day + "-" + strconv.Itoa(i)
				if !form.Has(prefix + "-start") {
					continue
				}
				msgs = append(msgs, view.SetSlot{
					Day:   day.Day,
					Index: i,
					Start: form.Get(prefix + "-start"),
					End:   form.Get(prefix + "-end"),
				})
			}
		}
		return msgs
	case 3:
		var msgs []view.Msg
		for _, limit := range wz.Participants {
			if !form.Has("min-" + limit.Category) {
				continue
			}
			minimum, _ := strconv.Atoi(form.Get("min-" + limit.Category))
			maximum, _ := strconv.Atoi(form.Get("max-" + limit.Category))
			msgs = append(msgs, view.SetParticipantLimit{Category: limit.Category, Min: minimum, Max: maximum})
		}
		return msgs
	case 4:
		if !form.Has("prix-adulte") {
			return nil
		}
		adult, _ := strconv.ParseFloat(strings.ReplaceAll(form.Get("prix-adulte"), ",", "."), 64)
		child, _ := strconv.ParseFloat(strings.ReplaceAll(form.Get("prix-enfant"), ",", "."), 64)
		return []view.Msg{view.SetPrices{Adult: adult, Child: child}}
	}
	return nil
}

// actionMessage maps a wizard button to its message. Schedule buttons carry
// their target as "verb:day" or "remove:day:index".
func actionMessage(action string) view.Msg {
	parts := strings.Split(action, ":")
	switch parts[0] {
	case "next":
		return view.WizardNext{}
	case "prev":
		return view.WizardPrev{}
	}
	if len(parts) < 2 {
		return nil
	}

	day := parts[1]
	switch parts[0] {
	case "enable":
		return view.ToggleDay{Day: day, Enabled: true}
	case "disable":
		return view.ToggleDay{Day: day, Enabled: false}
	case "add":
		return view.AddSlot{Day: day}
	case "copy":
		return view.CopySlotsToAll{Day: day}
	case "remove":
		if len(parts) != 3 {
			return nil
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil
		}
		return view.RemoveSlot{Day: day, Index: index}
	}
	return nil
}
