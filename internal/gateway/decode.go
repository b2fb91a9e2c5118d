package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"backoffice/internal/domain"
)

// ValidationError describes why one element of a collection payload was rejected
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("element %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("element %d: field %q %s", e.Index, e.Field, e.Reason)
}

// Outcome is the tagged result of decoding one element: either a normalized
// record or the reason it was rejected.
type Outcome[T any] struct {
	Record  T
	Invalid *ValidationError
}

// OK reports whether the element decoded into a record
func (o Outcome[T]) OK() bool {
	return o.Invalid == nil
}

// Split separates valid records from rejections, keeping payload order
func Split[T any](outcomes []Outcome[T]) ([]T, []*ValidationError) {
	records := make([]T, 0, len(outcomes))
	var invalid []*ValidationError
	for _, o := range outcomes {
		if o.OK() {
			records = append(records, o.Record)
		} else {
			invalid = append(invalid, o.Invalid)
		}
	}
	return records, invalid
}

// DecodeProviders parses a providers payload. The payload is expected to be
// an array; any other JSON value yields no providers.
func DecodeProviders(body []byte) ([]Outcome[domain.Provider], error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("providers payload is not valid JSON")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return []Outcome[domain.Provider]{}, nil
	}

	elems := root.Array()
	outcomes := make([]Outcome[domain.Provider], 0, len(elems))
	for i, elem := range elems {
		p, verr := decodeProvider(i, elem)
		outcomes = append(outcomes, Outcome[domain.Provider]{Record: p, Invalid: verr})
	}
	return outcomes, nil
}

// DecodeActivities parses an activities payload. The activities live under
// "activitees"; a missing or null array means none. A bare array is accepted too.
func DecodeActivities(body []byte) ([]Outcome[domain.Activity], error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("activities payload is not valid JSON")
	}

	root := gjson.ParseBytes(body)
	list := root
	if root.IsObject() {
		list = root.Get("activitees")
		if !list.Exists() || list.Type == gjson.Null {
			return []Outcome[domain.Activity]{}, nil
		}
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("activities payload: activitees is not an array")
	}

	elems := list.Array()
	outcomes := make([]Outcome[domain.Activity], 0, len(elems))
	for i, elem := range elems {
		raw, verr := decodeRawActivity(i, elem)
		if verr != nil {
			outcomes = append(outcomes, Outcome[domain.Activity]{Invalid: verr})
			continue
		}
		outcomes = append(outcomes, Outcome[domain.Activity]{Record: normalizeActivity(raw)})
	}
	return outcomes, nil
}

// DecodeProvider parses the single provider returned by a creation call
func DecodeProvider(body []byte) (domain.Provider, error) {
	if !gjson.ValidBytes(body) {
		return domain.Provider{}, fmt.Errorf("provider payload is not valid JSON")
	}
	p, verr := decodeProvider(0, gjson.ParseBytes(body))
	if verr != nil {
		return domain.Provider{}, verr
	}
	return p, nil
}

// DecodeCreatedActivity extracts the identifier from an activity creation response
func DecodeCreatedActivity(body []byte) (domain.CreatedActivity, error) {
	if !gjson.ValidBytes(body) {
		return domain.CreatedActivity{}, fmt.Errorf("activity payload is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return domain.CreatedActivity{}, &ValidationError{Reason: "expected an object"}
	}
	id, verr := optScalar(0, root, "id")
	if verr != nil {
		return domain.CreatedActivity{}, verr
	}
	if id == nil {
		return domain.CreatedActivity{}, &ValidationError{Field: "id", Reason: "is missing"}
	}
	return domain.CreatedActivity{ID: *id}, nil
}

func decodeProvider(i int, elem gjson.Result) (domain.Provider, *ValidationError) {
	if !elem.IsObject() {
		return domain.Provider{}, &ValidationError{Index: i, Reason: "expected an object"}
	}

	name, verr := optString(i, elem, "nom")
	if verr != nil {
		return domain.Provider{}, verr
	}
	if name == nil {
		return domain.Provider{}, &ValidationError{Index: i, Field: "nom", Reason: "is missing"}
	}

	var p domain.Provider
	p.Name = *name

	scalars := []struct {
		field string
		dst   *string
	}{
		{"id", &p.ID},
		{"telephone", &p.Phone},
	}
	for _, s := range scalars {
		v, verr := optScalar(i, elem, s.field)
		if verr != nil {
			return domain.Provider{}, verr
		}
		*s.dst = deref(v)
	}

	strs := []struct {
		field string
		dst   *string
	}{
		{"email", &p.Email},
		{"nomSociete", &p.Company},
	}
	for _, s := range strs {
		v, verr := optString(i, elem, s.field)
		if verr != nil {
			return domain.Provider{}, verr
		}
		*s.dst = deref(v)
	}

	return p, nil
}

// rawActivity keeps absent fields distinguishable from present ones until
// normalizeActivity applies the default table.
type rawActivity struct {
	ID                   *string
	Name                 string
	Code                 *string
	FullPaymentRequired  *bool
	Provider             *string
	Type                 *string
	ActivityLocation     *string
	DepartureLocation    *string
	Duration             *string
	TicketConfigurations []domain.TicketConfiguration
	Seasons              []json.RawMessage
	UnavailablePeriods   []json.RawMessage
}

func decodeRawActivity(i int, elem gjson.Result) (rawActivity, *ValidationError) {
	var raw rawActivity
	if !elem.IsObject() {
		return raw, &ValidationError{Index: i, Reason: "expected an object"}
	}

	name, verr := optString(i, elem, "nom")
	if verr != nil {
		return raw, verr
	}
	if name == nil {
		return raw, &ValidationError{Index: i, Field: "nom", Reason: "is missing"}
	}
	raw.Name = *name

	if raw.ID, verr = optScalar(i, elem, "id"); verr != nil {
		return raw, verr
	}

	strs := []struct {
		field string
		dst   **string
	}{
		{"code", &raw.Code},
		{"prestataire", &raw.Provider},
		{"type", &raw.Type},
		{"lieuActivite", &raw.ActivityLocation},
		{"lieuDepart", &raw.DepartureLocation},
		{"duree", &raw.Duration},
	}
	for _, s := range strs {
		if *s.dst, verr = optString(i, elem, s.field); verr != nil {
			return raw, verr
		}
	}

	if raw.FullPaymentRequired, verr = optBool(i, elem, "paiementTotalExigee"); verr != nil {
		return raw, verr
	}

	if raw.TicketConfigurations, verr = decodeTickets(i, elem.Get("ticketConfigurations")); verr != nil {
		return raw, verr
	}
	if raw.Seasons, verr = rawArray(i, elem, "saisons"); verr != nil {
		return raw, verr
	}
	if raw.UnavailablePeriods, verr = rawArray(i, elem, "periodesIndisponibles"); verr != nil {
		return raw, verr
	}

	return raw, nil
}

func decodeTickets(i int, list gjson.Result) ([]domain.TicketConfiguration, *ValidationError) {
	if !list.Exists() || list.Type == gjson.Null {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, &ValidationError{Index: i, Field: "ticketConfigurations", Reason: "is not an array"}
	}

	elems := list.Array()
	tickets := make([]domain.TicketConfiguration, 0, len(elems))
	for j, t := range elems {
		field := func(name string) string {
			return fmt.Sprintf("ticketConfigurations[%d].%s", j, name)
		}
		if !t.IsObject() {
			return nil, &ValidationError{Index: i, Field: fmt.Sprintf("ticketConfigurations[%d]", j), Reason: "expected an object"}
		}

		var tc domain.TicketConfiguration
		if r := t.Get("nomTicket"); r.Exists() && r.Type != gjson.Null {
			if r.Type != gjson.String {
				return nil, &ValidationError{Index: i, Field: field("nomTicket"), Reason: "is not a string"}
			}
			tc.Name = r.String()
		}

		numbers := []struct {
			name string
			dst  *float64
		}{
			{"prixDeBase", &tc.BasePrice},
			{"valeurCommission", &tc.Commission},
		}
		for _, n := range numbers {
			if r := t.Get(n.name); r.Exists() && r.Type != gjson.Null {
				if r.Type != gjson.Number {
					return nil, &ValidationError{Index: i, Field: field(n.name), Reason: "is not a number"}
				}
				*n.dst = r.Float()
			}
		}

		if r := t.Get("commissionEnPourcentage"); r.Exists() && r.Type != gjson.Null {
			if r.Type != gjson.True && r.Type != gjson.False {
				return nil, &ValidationError{Index: i, Field: field("commissionEnPourcentage"), Reason: "is not a boolean"}
			}
			tc.CommissionPercent = r.Bool()
		}

		if r := t.Get("capaciteeMax"); r.Exists() && r.Type != gjson.Null {
			if r.Type != gjson.Number {
				return nil, &ValidationError{Index: i, Field: field("capaciteeMax"), Reason: "is not a number"}
			}
			tc.MaxCapacity = int(r.Int())
		}

		tickets = append(tickets, tc)
	}
	return tickets, nil
}

func rawArray(i int, obj gjson.Result, field string) ([]json.RawMessage, *ValidationError) {
	r := obj.Get(field)
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, &ValidationError{Index: i, Field: field, Reason: "is not an array"}
	}
	elems := r.Array()
	out := make([]json.RawMessage, 0, len(elems))
	for _, e := range elems {
		out = append(out, json.RawMessage(e.Raw))
	}
	return out, nil
}

func optString(i int, obj gjson.Result, field string) (*string, *ValidationError) {
	r := obj.Get(field)
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if r.Type != gjson.String {
		return nil, &ValidationError{Index: i, Field: field, Reason: "is not a string"}
	}
	s := r.String()
	return &s, nil
}

// optScalar accepts a string or a number; numbers keep their JSON spelling
func optScalar(i int, obj gjson.Result, field string) (*string, *ValidationError) {
	r := obj.Get(field)
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return nil, nil
	case r.Type == gjson.String:
		s := r.String()
		return &s, nil
	case r.Type == gjson.Number:
		s := r.Raw
		return &s, nil
	default:
		return nil, &ValidationError{Index: i, Field: field, Reason: "is not a string or number"}
	}
}

func optBool(i int, obj gjson.Result, field string) (*bool, *ValidationError) {
	r := obj.Get(field)
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if r.Type != gjson.True && r.Type != gjson.False {
		return nil, &ValidationError{Index: i, Field: field, Reason: "is not a boolean"}
	}
	b := r.Bool()
	return &b, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
