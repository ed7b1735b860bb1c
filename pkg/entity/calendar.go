package entity

import "time"

// Weekday is the canonical weekday type used across the whole app.
// It maps to and from time.Weekday exactly once, here.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func ParseWeekday(s string) (Weekday, bool) {
	switch d := Weekday(s); d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return d, true
	}
	return "", false
}

func (w Weekday) Time() time.Weekday {
	switch w {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// DisplayName is the capitalized form used in synthesized template titles.
func (w Weekday) DisplayName() string {
	return w.Time().String()
}

// TimeSlot is a coarse time-of-day bucket derived from an event's start hour.
type TimeSlot string

const (
	Morning   TimeSlot = "MORNING"
	Afternoon TimeSlot = "AFTERNOON"
	Evening   TimeSlot = "EVENING"
	Night     TimeSlot = "NIGHT"
)

func SlotForHour(hour int) TimeSlot {
	switch {
	case hour >= 5 && hour <= 11:
		return Morning
	case hour >= 12 && hour <= 17:
		return Afternoon
	case hour >= 18 && hour <= 21:
		return Evening
	default:
		return Night
	}
}

func (s TimeSlot) DisplayName() string {
	switch s {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "Night"
	}
}

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

type RecurrenceRule struct {
	Frequency Frequency `json:"frequency"`
}

// CalendarEvent is one parsed calendar occurrence. Events are transient:
// they exist only between feed parsing and template synthesis and are
// never persisted.
type CalendarEvent struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"desc,omitempty"`
	Location    string          `json:"location,omitempty"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Recurrence  *RecurrenceRule `json:"recurrence,omitempty"`
	Categories  []string        `json:"categories,omitempty"`

	// TimeInferred marks events whose DTSTART/DTEND could not be decoded
	// and were substituted with the wall-clock time. Callers can use it to
	// tell a real "now" event from a decode fallback.
	TimeInferred bool `json:"time_inferred,omitempty"`
}

// EventGroup is a batch of events sharing a (weekday, time slot) bucket.
type EventGroup struct {
	Day    Weekday         `json:"day"`
	Slot   TimeSlot        `json:"slot"`
	Events []CalendarEvent `json:"events"`
}
