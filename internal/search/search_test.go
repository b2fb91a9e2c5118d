package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
)

var (
	jimmy = domain.Provider{ID: "1", Name: "Jimmy Deschamps", Email: "jimmy@lagon.fr", Phone: "0690123456", Company: "Acme Corp"}
	beta  = domain.Provider{ID: "2", Name: "Anne Leroy", Email: "anne@beta.fr", Phone: "0690999999", Company: "Beta"}

	petiteTerre = domain.Activity{
		ID: "10", Name: "Excursion à Petite Terre", Code: "pt-1", Type: "Excursion",
		ActivityLocation: "Île de la Désirade", DepartureLocation: "Saint-François",
	}
	plongee = domain.Activity{
		ID: "11", Name: "Plongée réserve Cousteau", Code: "plg", Type: "Plongée",
		ActivityLocation: "Malendure", DepartureLocation: "Bouillante",
	}
)

func TestEmptyFiltersAlwaysMatch(t *testing.T) {
	for _, p := range []domain.Provider{jimmy, beta, {}} {
		assert.True(t, ProviderMatchesFilters(p, domain.ProviderFilters{}))
	}
	for _, a := range []domain.Activity{petiteTerre, plongee, {}} {
		assert.True(t, ActivityMatchesFilters(a, domain.ActivityFilters{}))
	}
}

func TestEmptyQueryAlwaysMatches(t *testing.T) {
	for _, p := range []domain.Provider{jimmy, beta, {}} {
		assert.True(t, ProviderMatchesSearch(p, ""))
	}
	for _, a := range []domain.Activity{petiteTerre, plongee, {}} {
		assert.True(t, ActivityMatchesSearch(a, ""))
	}
}

func TestProviderMatchesSearch(t *testing.T) {
	p := domain.Provider{Name: "Jimmy"}

	tests := []struct {
		query string
		want  bool
	}{
		{"jim", true},
		{"JIM", true},
		{"JiM", true},
		{"xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderMatchesSearch(p, tt.query))
		})
	}
}

func TestProviderMatchesSearch_AnyField(t *testing.T) {
	assert.True(t, ProviderMatchesSearch(jimmy, "LAGON"))
	assert.True(t, ProviderMatchesSearch(jimmy, "0690123"))
	assert.True(t, ProviderMatchesSearch(jimmy, "acme"))
	assert.False(t, ProviderMatchesSearch(jimmy, "beta"))
}

func TestProviderMatchesFilters_Company(t *testing.T) {
	f := domain.ProviderFilters{Company: "Acme"}

	assert.True(t, ProviderMatchesFilters(jimmy, f))
	assert.False(t, ProviderMatchesFilters(beta, f))
}

func TestProviderMatchesFilters_AllCriteriaRequired(t *testing.T) {
	f := domain.ProviderFilters{Name: "jimmy", Company: "beta"}
	assert.False(t, ProviderMatchesFilters(jimmy, f))

	f = domain.ProviderFilters{Name: "jimmy", Email: "@lagon", Phone: "0690", Company: "corp"}
	assert.True(t, ProviderMatchesFilters(jimmy, f))
}

func TestActivityMatchesFilters_LocationEitherSite(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{name: "activity site", location: "désirade", want: true},
		{name: "departure site", location: "saint-fran", want: true},
		{name: "folded accents", location: "ÎLE", want: true},
		{name: "neither", location: "Malendure", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityMatchesFilters(petiteTerre, domain.ActivityFilters{Location: tt.location}))
		})
	}
}

func TestActivityVisible_SearchAndFilters(t *testing.T) {
	// Search hits, filter misses
	assert.False(t, ActivityVisible(petiteTerre, "excursion", domain.ActivityFilters{Type: "plongée"}))
	// Both hit
	assert.True(t, ActivityVisible(plongee, "PLG", domain.ActivityFilters{Type: "plongée"}))
}

func TestFilterProviders_PreservesOrder(t *testing.T) {
	list := []domain.Provider{beta, jimmy, {Name: "Jim Beam", Company: "Acme Distillery"}}

	got := FilterProviders(list, "jim", domain.ProviderFilters{Company: "acme"})

	assert.Len(t, got, 2)
	assert.Equal(t, "Jimmy Deschamps", got[0].Name)
	assert.Equal(t, "Jim Beam", got[1].Name)
}

func TestFilterActivities(t *testing.T) {
	list := []domain.Activity{petiteTerre, plongee}

	assert.Len(t, FilterActivities(list, "", domain.ActivityFilters{}), 2)
	assert.Equal(t, []domain.Activity{plongee}, FilterActivities(list, "bouillante", domain.ActivityFilters{}))
	assert.Empty(t, FilterActivities(list, "zzz", domain.ActivityFilters{}))
}
