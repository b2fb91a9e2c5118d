package view

import "backoffice/internal/domain"

// Msg is an event that may change the model
type Msg interface {
	isMsg()
}

type Navigate struct{ Page Page }

type SetPeriod struct{ Period domain.Period }

type Back struct{}

type SetProviderSearch struct{ Query string }

type ApplyProviderFilters struct{ Filters domain.ProviderFilters }

type ResetProviderFilters struct{}

type StartAddProvider struct{}

type CancelAddProvider struct{}

type ProviderCreated struct{}

type SetActivitySearch struct{ Query string }

type ApplyActivityFilters struct{ Filters domain.ActivityFilters }

type ResetActivityFilters struct{}

type StartAddActivity struct{}

type CancelAddActivity struct{}

type ActivityCreated struct{}

type SelectActivity struct{ Key string }

type SelectTab struct{ Tab Tab }

type WizardNext struct{}

type WizardPrev struct{}

type WizardEdit struct {
	Name                string
	Code                string
	FullPaymentRequired bool
}

type ToggleDay struct {
	Day     string
	Enabled bool
}

type AddSlot struct{ Day string }

type RemoveSlot struct {
	Day   string
	Index int
}

type SetSlot struct {
	Day        string
	Index      int
	Start, End string
}

type CopySlotsToAll struct{ Day string }

type SetParticipantLimit struct {
	Category string
	Min, Max int
}

type SetPrices struct{ Adult, Child float64 }

func (Navigate) isMsg()             {}
func (SetPeriod) isMsg()            {}
func (Back) isMsg()                 {}
func (SetProviderSearch) isMsg()    {}
func (ApplyProviderFilters) isMsg() {}
func (ResetProviderFilters) isMsg() {}
func (StartAddProvider) isMsg()     {}
func (CancelAddProvider) isMsg()    {}
func (ProviderCreated) isMsg()      {}
func (SetActivitySearch) isMsg()    {}
func (ApplyActivityFilters) isMsg() {}
func (ResetActivityFilters) isMsg() {}
func (StartAddActivity) isMsg()     {}
func (CancelAddActivity) isMsg()    {}
func (ActivityCreated) isMsg()      {}
func (SelectActivity) isMsg()       {}
func (SelectTab) isMsg()            {}
func (WizardNext) isMsg()           {}
func (WizardPrev) isMsg()           {}
func (WizardEdit) isMsg()           {}
func (ToggleDay) isMsg()            {}
func (AddSlot) isMsg()              {}
func (RemoveSlot) isMsg()           {}
func (SetSlot) isMsg()              {}
func (CopySlotsToAll) isMsg()       {}
func (SetParticipantLimit) isMsg()  {}
func (SetPrices) isMsg()            {}

// Update returns the model that results from applying msg to m.
// m is not modified.
func Update(m Model, msg Msg) Model {
	m.Wizard = m.Wizard.clone()

	switch msg := msg.(type) {
	case Navigate:
		if !msg.Page.Valid() {
			return m
		}
		if msg.Page == PageActivitiesDetail && m.SelectedActivity == "" {
			m.Page = PageActivitiesList
			return m
		}
		m.Page = msg.Page
	case SetPeriod:
		m.Period = domain.ParsePeriod(string(msg.Period))
	case Back:
		switch m.Page {
		case PageProvidersAdd:
			m.Page = PageProvidersList
		case PageActivitiesAdd, PageActivitiesDetail:
			m.Page = PageActivitiesList
		}

	case SetProviderSearch:
		m.ProviderSearch = msg.Query
	case ApplyProviderFilters:
		m.ProviderFilters = msg.Filters
	case ResetProviderFilters:
		m.ProviderFilters = domain.ProviderFilters{}
	case StartAddProvider:
		m.Page = PageProvidersAdd
	case CancelAddProvider, ProviderCreated:
		m.Page = PageProvidersList

	case SetActivitySearch:
		m.ActivitySearch = msg.Query
	case ApplyActivityFilters:
		m.ActivityFilters = msg.Filters
	case ResetActivityFilters:
		m.ActivityFilters = domain.ActivityFilters{}
	case StartAddActivity:
		m.Page = PageActivitiesAdd
		m.Wizard = NewWizard()
	case CancelAddActivity, ActivityCreated:
		m.Page = PageActivitiesList
		m.Wizard = NewWizard()
	case SelectActivity:
		if msg.Key == "" {
			return m
		}
		m.Page = PageActivitiesDetail
		m.SelectedActivity = msg.Key
		m.DetailTab = TabGeneral
	case SelectTab:
		m.DetailTab = ParseTab(string(msg.Tab))

	default:
		if m.Page == PageActivitiesAdd {
			m.Wizard = updateWizard(m.Wizard, msg)
		}
	}
	return m
}

func updateWizard(w Wizard, msg Msg) Wizard {
	switch msg := msg.(type) {
	case WizardNext:
		w.Next()
	case WizardPrev:
		w.Prev()
	case WizardEdit:
		w.Name = msg.Name
		w.Code = msg.Code
		w.FullPaymentRequired = msg.FullPaymentRequired
	case ToggleDay:
		w.ToggleDay(msg.Day, msg.Enabled)
	case AddSlot:
		w.AddSlot(msg.Day)
	case RemoveSlot:
		w.RemoveSlot(msg.Day, msg.Index)
	case SetSlot:
		w.SetSlot(msg.Day, msg.Index, msg.Start, msg.End)
	case CopySlotsToAll:
		w.CopySlotsToAll(msg.Day)
	case SetParticipantLimit:
		w.SetParticipantLimit(msg.Category, msg.Min, msg.Max)
	case SetPrices:
		w.SetPrices(msg.Adult, msg.Child)
	}
	return w
}
