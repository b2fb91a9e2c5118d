package gateway

import (
	"encoding/json"

	"backoffice/internal/domain"
)

// activityDefaults is the substitution table for optional activity fields.
// An absent or empty value takes the default; everything else passes through.
//
//	id                    ""
//	code                  ""
//	paiementTotalExigee   false
//	prestataire           "Default Provider"
//	type                  "Default Type"
//	lieuActivite          "Default Location"
//	lieuDepart            "Default Departure"
//	duree                 "Default Duration"
//	ticketConfigurations  []
//	saisons               []
//	periodesIndisponibles []
var activityDefaults = domain.Activity{
	Provider:          domain.DefaultProvider,
	Type:              domain.DefaultType,
	ActivityLocation:  domain.DefaultLocation,
	DepartureLocation: domain.DefaultDeparture,
	Duration:          domain.DefaultDuration,
}

// normalizeActivity fills every optional field of raw so that the resulting
// activity is fully populated.
func normalizeActivity(raw rawActivity) domain.Activity {
	a := domain.Activity{
		ID:                   orString(raw.ID, activityDefaults.ID),
		Name:                 raw.Name,
		Code:                 orString(raw.Code, activityDefaults.Code),
		Provider:             orString(raw.Provider, activityDefaults.Provider),
		Type:                 orString(raw.Type, activityDefaults.Type),
		ActivityLocation:     orString(raw.ActivityLocation, activityDefaults.ActivityLocation),
		DepartureLocation:    orString(raw.DepartureLocation, activityDefaults.DepartureLocation),
		Duration:             orString(raw.Duration, activityDefaults.Duration),
		TicketConfigurations: raw.TicketConfigurations,
		Seasons:              raw.Seasons,
		UnavailablePeriods:   raw.UnavailablePeriods,
	}
	if raw.FullPaymentRequired != nil {
		a.FullPaymentRequired = *raw.FullPaymentRequired
	}

	if a.TicketConfigurations == nil {
		a.TicketConfigurations = []domain.TicketConfiguration{}
	}
	if a.Seasons == nil {
		a.Seasons = []json.RawMessage{}
	}
	if a.UnavailablePeriods == nil {
		a.UnavailablePeriods = []json.RawMessage{}
	}
	return a
}

func orString(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
