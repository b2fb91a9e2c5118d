package domain

// TimeSlot is an opening window within a day, "HH:MM" bounds
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule holds the slots of one weekday
type DaySchedule struct {
	Day     string     `json:"day"`
	Enabled bool       `json:"enabled"`
	Slots   []TimeSlot `json:"slots"`
}

// ParticipantLimit bounds the head count of one participant category
type ParticipantLimit struct {
	Category string `json:"category"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}
