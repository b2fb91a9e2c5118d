// Package view holds the per-session screen state of the back-office and the
// single transition function that changes it.
package view

import (
	"net/url"

	"backoffice/internal/domain"
)

// Page identifies which screen is rendered. Pages are mutually exclusive.
type Page string

const (
	PageDashboard        Page = "dashboard"
	PageProvidersList    Page = "providers-list"
	PageProvidersAdd     Page = "providers-add"
	PageActivitiesList   Page = "activities-list"
	PageActivitiesAdd    Page = "activities-add"
	PageActivitiesDetail Page = "activities-detail"
)

// Valid reports whether p is a known page
func (p Page) Valid() bool {
	switch p {
	case PageDashboard, PageProvidersList, PageProvidersAdd,
		PageActivitiesList, PageActivitiesAdd, PageActivitiesDetail:
		return true
	}
	return false
}

// Section is the sidebar entry a page belongs to
func (p Page) Section() string {
	switch p {
	case PageProvidersList, PageProvidersAdd:
		return "providers"
	case PageActivitiesList, PageActivitiesAdd, PageActivitiesDetail:
		return "activities"
	default:
		return "dashboard"
	}
}

// Path is the URL that renders the page. The detail page needs the
// selected activity key.
func (p Page) Path(selected string) string {
	switch p {
	case PageProvidersList:
		return "/providers"
	case PageProvidersAdd:
		return "/providers/new"
	case PageActivitiesList:
		return "/activities"
	case PageActivitiesAdd:
		return "/activities/new"
	case PageActivitiesDetail:
		if selected == "" {
			return "/activities"
		}
		return "/activities/" + url.PathEscape(selected)
	default:
		return "/"
	}
}

// Tab is a section of the activity detail page
type Tab string

const (
	TabGeneral      Tab = "generalites"
	TabPrograms     Tab = "programmes"
	TabParticipants Tab = "participants"
	TabPrices       Tab = "prix"
	TabPayment      Tab = "paiement"
	TabAccept       Tab = "accepter"
	TabOptions      Tab = "options"
	TabMessages     Tab = "messages"
)

// Tabs lists the detail tabs in display order
var Tabs = []Tab{TabGeneral, TabPrograms, TabParticipants, TabPrices, TabPayment, TabAccept, TabOptions, TabMessages}

// Label is the tab caption
func (t Tab) Label() string {
	switch t {
	case TabPrograms:
		return "Programmes"
	case TabParticipants:
		return "Participants"
	case TabPrices:
		return "Prix"
	case TabPayment:
		return "Paiement et acompte"
	case TabAccept:
		return "Accepter/Refuser"
	case TabOptions:
		return "Options"
	case TabMessages:
		return "Messages"
	default:
		return "Généralités"
	}
}

// ParseTab returns the matching tab, defaulting to the general tab
func ParseTab(s string) Tab {
	for _, t := range Tabs {
		if string(t) == s {
			return t
		}
	}
	return TabGeneral
}

// Model is everything a browser session remembers between requests
type Model struct {
	Page             Page                   `json:"page"`
	ProviderSearch   string                 `json:"provider_search"`
	ProviderFilters  domain.ProviderFilters `json:"provider_filters"`
	ActivitySearch   string                 `json:"activity_search"`
	ActivityFilters  domain.ActivityFilters `json:"activity_filters"`
	SelectedActivity string                 `json:"selected_activity,omitempty"`
	DetailTab        Tab                    `json:"detail_tab"`
	Wizard           Wizard                 `json:"wizard"`
	Period           domain.Period          `json:"period"`
}

// Initial returns the state of a new session
func Initial() Model {
	return Model{
		Page:      PageDashboard,
		DetailTab: TabGeneral,
		Wizard:    NewWizard(),
		Period:    domain.PeriodToday,
	}
}
