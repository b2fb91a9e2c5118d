package view

import (
	"fmt"
	"slices"

	"backoffice/internal/domain"
)

// WizardStep is one screen of the activity creation wizard
type WizardStep struct {
	Number int
	Title  string
}

// WizardSteps lists the wizard steps in order
var WizardSteps = []WizardStep{
	{Number: 1, Title: "Généralités"},
	{Number: 2, Title: "Programmes"},
	{Number: 3, Title: "Participants"},
	{Number: 4, Title: "Prix"},
}

// Weekdays in schedule order, starting on Sunday
var Weekdays = []string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}

// ParticipantCategories in display order
var ParticipantCategories = []string{"Total", "Adultes", "Enfants", "Nourrissons"}

const (
	DefaultSlotStart = "10:00"
	DefaultSlotEnd   = "16:00"
	MaxParticipants  = 20
)

// TimeOptions are the selectable slot bounds, every 15 minutes of a day
var TimeOptions = buildTimeOptions()

func buildTimeOptions() []string {
	opts := make([]string, 0, 24*4)
	for i := 0; i < 24*4; i++ {
		opts = append(opts, fmt.Sprintf("%02d:%02d", i/4, (i%4)*15))
	}
	return opts
}

// Wizard is the in-progress state of the activity creation wizard
type Wizard struct {
	Step                int                       `json:"step"`
	Name                string                    `json:"nom"`
	Code                string                    `json:"code"`
	FullPaymentRequired bool                      `json:"paiement_total_exige"`
	Schedule            []domain.DaySchedule      `json:"schedule"`
	Participants        []domain.ParticipantLimit `json:"participants"`
	AdultPrice          float64                   `json:"adult_price"`
	ChildPrice          float64                   `json:"child_price"`
}

// NewWizard returns a wizard on step 1 with the default weekly schedule:
// weekdays open 10:00-16:00, weekend closed.
func NewWizard() Wizard {
	w := Wizard{Step: 1}
	for _, day := range Weekdays {
		ds := domain.DaySchedule{Day: day, Slots: []domain.TimeSlot{}}
		if day != "Dim" && day != "Sam" {
			ds.Enabled = true
			ds.Slots = []domain.TimeSlot{defaultSlot()}
		}
		w.Schedule = append(w.Schedule, ds)
	}
	for _, c := range ParticipantCategories {
		w.Participants = append(w.Participants, domain.ParticipantLimit{Category: c})
	}
	return w
}

func defaultSlot() domain.TimeSlot {
	return domain.TimeSlot{Start: DefaultSlotStart, End: DefaultSlotEnd}
}

// Current returns the active step
func (w *Wizard) Current() WizardStep {
	return WizardSteps[clamp(w.Step, 1, len(WizardSteps))-1]
}

// Last reports whether the wizard is on its final step
func (w *Wizard) Last() bool {
	return w.Step == len(WizardSteps)
}

// Next advances one step; it is a no-op on the last step
func (w *Wizard) Next() {
	if w.Step < len(WizardSteps) {
		w.Step++
	}
}

// Prev goes back one step; it is a no-op on the first step
func (w *Wizard) Prev() {
	if w.Step > 1 {
		w.Step--
	}
}

func (w *Wizard) day(name string) *domain.DaySchedule {
	for i := range w.Schedule {
		if w.Schedule[i].Day == name {
			return &w.Schedule[i]
		}
	}
	return nil
}

// Day returns the schedule of one weekday
func (w *Wizard) Day(name string) (domain.DaySchedule, bool) {
	if d := w.day(name); d != nil {
		return *d, true
	}
	return domain.DaySchedule{}, false
}

// ToggleDay enables a day with one default slot, or disables it and clears its slots
func (w *Wizard) ToggleDay(name string, enabled bool) {
	d := w.day(name)
	if d == nil {
		return
	}
	d.Enabled = enabled
	if enabled {
		d.Slots = []domain.TimeSlot{defaultSlot()}
	} else {
		d.Slots = []domain.TimeSlot{}
	}
}

// AddSlot appends a default slot to an enabled day
func (w *Wizard) AddSlot(name string) {
	d := w.day(name)
	if d == nil || !d.Enabled {
		return
	}
	d.Slots = append(d.Slots, defaultSlot())
}

// RemoveSlot drops one slot. A day always keeps at least one slot.
func (w *Wizard) RemoveSlot(name string, index int) {
	d := w.day(name)
	if d == nil || len(d.Slots) <= 1 || index < 0 || index >= len(d.Slots) {
		return
	}
	d.Slots = slices.Delete(d.Slots, index, index+1)
}

// SetSlot changes the bounds of one slot. Values outside TimeOptions are ignored.
func (w *Wizard) SetSlot(name string, index int, start, end string) {
	d := w.day(name)
	if d == nil || index < 0 || index >= len(d.Slots) {
		return
	}
	if slices.Contains(TimeOptions, start) {
		d.Slots[index].Start = start
	}
	if slices.Contains(TimeOptions, end) {
		d.Slots[index].End = end
	}
}

// CopySlotsToAll copies a day's slots to every other enabled day
func (w *Wizard) CopySlotsToAll(name string) {
	src := w.day(name)
	if src == nil || !src.Enabled {
		return
	}
	for i := range w.Schedule {
		d := &w.Schedule[i]
		if d.Day == name || !d.Enabled {
			continue
		}
		d.Slots = slices.Clone(src.Slots)
	}
}

// SetParticipantLimit sets the bounds of one category, clamped to 0..MaxParticipants
func (w *Wizard) SetParticipantLimit(category string, minimum, maximum int) {
	for i := range w.Participants {
		if w.Participants[i].Category == category {
			w.Participants[i].Min = clamp(minimum, 0, MaxParticipants)
			w.Participants[i].Max = clamp(maximum, 0, MaxParticipants)
			return
		}
	}
}

// SetPrices records the per-participant prices; negative values become zero
func (w *Wizard) SetPrices(adult, child float64) {
	w.AdultPrice = max(adult, 0)
	w.ChildPrice = max(child, 0)
}

// Request builds the creation request. Only name, code and the payment
// flag are sent; a blank code is derived from the name.
func (w *Wizard) Request() domain.CreateActivityRequest {
	code := w.Code
	if code == "" {
		code = domain.CodeFromName(w.Name)
	}
	return domain.CreateActivityRequest{
		Name:                w.Name,
		Code:                code,
		FullPaymentRequired: w.FullPaymentRequired,
	}
}

func (w Wizard) clone() Wizard {
	c := w
	c.Schedule = make([]domain.DaySchedule, len(w.Schedule))
	for i, d := range w.Schedule {
		d.Slots = slices.Clone(d.Slots)
		c.Schedule[i] = d
	}
	c.Participants = slices.Clone(w.Participants)
	return c
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
