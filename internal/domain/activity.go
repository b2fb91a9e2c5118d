package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Placeholders substituted for optional activity fields missing from the API payload
const (
	DefaultProvider  = "Default Provider"
	DefaultType      = "Default Type"
	DefaultLocation  = "Default Location"
	DefaultDeparture = "Default Departure"
	DefaultDuration  = "Default Duration"
)

// Activity represents a bookable excursion (activité). Decoded records are
// always fully populated; see gateway normalization.
type Activity struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"nom"`
	Code                 string                `json:"code"`
	FullPaymentRequired  bool                  `json:"paiementTotalExigee"`
	Provider             string                `json:"prestataire"`
	Type                 string                `json:"type"`
	ActivityLocation     string                `json:"lieuActivite"`
	DepartureLocation    string                `json:"lieuDepart"`
	Duration             string                `json:"duree"`
	TicketConfigurations []TicketConfiguration `json:"ticketConfigurations"`
	Seasons              []json.RawMessage     `json:"saisons"`
	UnavailablePeriods   []json.RawMessage     `json:"periodesIndisponibles"`
}

// Key identifies the activity in URLs. The API does not always send an id,
// in which case the code is used.
func (a Activity) Key() string {
	if a.ID != "" {
		return a.ID
	}
	return a.Code
}

// TicketConfiguration is a named price/capacity tier attached to an activity
type TicketConfiguration struct {
	Name              string  `json:"nomTicket"`
	BasePrice         float64 `json:"prixDeBase"`
	Commission        float64 `json:"valeurCommission"`
	CommissionPercent bool    `json:"commissionEnPourcentage"`
	MaxCapacity       int     `json:"capaciteeMax"`
}

// CreateActivityRequest is the body posted to the remote API to create an activity
type CreateActivityRequest struct {
	Name                string `json:"nom"`
	Code                string `json:"code"`
	FullPaymentRequired bool   `json:"paiementTotalExigee"`
}

// CreatedActivity is the part of the creation response the back-office uses
type CreatedActivity struct {
	ID string `json:"id"`
}

// ActivityFilters narrows the activities list. Location matches either the
// activity site or the departure site.
type ActivityFilters struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Active reports whether at least one criterion is set
func (f ActivityFilters) Active() bool {
	return f.Name != "" || f.Code != "" || f.Type != "" || f.Location != ""
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// CodeFromName derives an activity code: lower-cased, whitespace runs become "-"
func CodeFromName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
