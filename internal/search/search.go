// Package search decides which providers and activities are visible for a
// free-text query and a filter set. Everything here is a pure function over
// in-memory records: a linear scan, recomputed on every request.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"backoffice/internal/domain"
)

// fold maps text to its Unicode case-folded form. cases.Caser is stateful,
// so a fresh one is taken per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether pattern is a case-insensitive substring of field.
// An empty pattern always matches.
func Contains(field, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(fold(field), fold(pattern))
}

// AnyContains reports whether pattern is a case-insensitive substring of at
// least one field. An empty pattern always matches.
func AnyContains(pattern string, fields ...string) bool {
	if pattern == "" {
		return true
	}
	p := fold(pattern)
	for _, f := range fields {
		if strings.Contains(fold(f), p) {
			return true
		}
	}
	return false
}

// ProviderMatchesSearch ORs the query across name, email, phone and company
func ProviderMatchesSearch(p domain.Provider, query string) bool {
	return AnyContains(query, p.Name, p.Email, p.Phone, p.Company)
}

// ProviderMatchesFilters ANDs every non-empty criterion
func ProviderMatchesFilters(p domain.Provider, f domain.ProviderFilters) bool {
	return Contains(p.Name, f.Name) &&
		Contains(p.Email, f.Email) &&
		Contains(p.Phone, f.Phone) &&
		Contains(p.Company, f.Company)
}

// ProviderVisible is the final visibility: search match AND filter match
func ProviderVisible(p domain.Provider, query string, f domain.ProviderFilters) bool {
	return ProviderMatchesSearch(p, query) && ProviderMatchesFilters(p, f)
}

// FilterProviders returns the visible providers in their original order
func FilterProviders(providers []domain.Provider, query string, f domain.ProviderFilters) []domain.Provider {
	visible := make([]domain.Provider, 0, len(providers))
	for _, p := range providers {
		if ProviderVisible(p, query, f) {
			visible = append(visible, p)
		}
	}
	return visible
}

// ActivityMatchesSearch ORs the query across name, code, type and both locations
func ActivityMatchesSearch(a domain.Activity, query string) bool {
	return AnyContains(query, a.Name, a.Code, a.Type, a.ActivityLocation, a.DepartureLocation)
}

// ActivityMatchesFilters ANDs every non-empty criterion. Location is satisfied
// by either the activity site or the departure site.
func ActivityMatchesFilters(a domain.Activity, f domain.ActivityFilters) bool {
	return Contains(a.Name, f.Name) &&
		Contains(a.Code, f.Code) &&
		Contains(a.Type, f.Type) &&
		AnyContains(f.Location, a.ActivityLocation, a.DepartureLocation)
}

// ActivityVisible is the final visibility: search match AND filter match
func ActivityVisible(a domain.Activity, query string, f domain.ActivityFilters) bool {
	return ActivityMatchesSearch(a, query) && ActivityMatchesFilters(a, f)
}

// FilterActivities returns the visible activities in their original order
func FilterActivities(activities []domain.Activity, query string, f domain.ActivityFilters) []domain.Activity {
	visible := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if ActivityVisible(a, query, f) {
			visible = append(visible, a)
		}
	}
	return visible
}
