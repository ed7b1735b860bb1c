package ics

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sgn7/packmate/pkg/entity"
)

// Parser turns raw ICS-style text into calendar events. Parsing is
// best-effort: a malformed field never drops an event, it falls back to a
// default value instead. Date-time fallbacks are flagged on the event via
// TimeInferred so callers can tell them apart from real values.
type Parser struct {
	// Now supplies the fallback timestamp for undecodable date-times.
	Now func() time.Time
}

func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// Parse splits the feed into lines and collects KEY:VALUE pairs between
// BEGIN:VEVENT and END:VEVENT markers. Lines are split on the first colon
// only, so values containing colons (e.g. "Room: 101") survive intact.
func (p *Parser) Parse(text string) []entity.CalendarEvent {
	events := make([]entity.CalendarEvent, 0)
	var fields map[string]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "BEGIN:VEVENT"):
			fields = make(map[string]string)
		case strings.HasPrefix(line, "END:VEVENT"):
			if fields != nil {
				events = append(events, p.eventFromFields(fields))
			}
			fields = nil
		case fields != nil:
			key, value, found := strings.Cut(line, ":")
			if found && key != "" {
				fields[key] = value
			}
		}
	}
	return events
}

func (p *Parser) eventFromFields(fields map[string]string) entity.CalendarEvent {
	ev := entity.CalendarEvent{
		ID:          fields["UID"],
		Title:       fields["SUMMARY"],
		Description: fields["DESCRIPTION"],
		Location:    fields["LOCATION"],
		Categories:  splitCategories(fields["CATEGORIES"]),
	}
	if ev.ID == "" {
		ev.ID = "event_" + uuid.NewString()
	}
	if ev.Title == "" {
		ev.Title = "Untitled event"
	}

	var startInferred, endInferred bool
	ev.Start, startInferred = p.parseDateTime(fields["DTSTART"])
	ev.End, endInferred = p.parseDateTime(fields["DTEND"])
	ev.TimeInferred = startInferred || endInferred

	if raw, ok := fields["RRULE"]; ok {
		ev.Recurrence = parseRecurrenceRule(raw)
	}
	return ev
}

// parseDateTime decodes the compact ICS form YYYYMMDD[T]HHMMSS[Z] by
// stripping the Z/T separators and slicing fixed-width fields. Seconds are
// ignored. The second return value reports whether the wall-clock fallback
// was used.
func (p *Parser) parseDateTime(raw string) (time.Time, bool) {
	if raw == "" {
		return p.Now(), true
	}
	clean := strings.NewReplacer("Z", "", "T", "").Replace(raw)
	if len(clean) < 12 {
		return p.Now(), true
	}
	year, errY := strconv.Atoi(clean[0:4])
	month, errM := strconv.Atoi(clean[4:6])
	day, errD := strconv.Atoi(clean[6:8])
	hour, errH := strconv.Atoi(clean[8:10])
	minute, errMin := strconv.Atoi(clean[10:12])
	if errY != nil || errM != nil || errD != nil || errH != nil || errMin != nil {
		return p.Now(), true
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), false
}

// parseRecurrenceRule reads only the FREQ part of an RRULE. Unknown or
// missing frequencies default to WEEKLY; an empty rule yields no recurrence.
func parseRecurrenceRule(raw string) *entity.RecurrenceRule {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	freq := entity.FrequencyWeekly
	for _, part := range strings.Split(raw, ";") {
		value, ok := strings.CutPrefix(part, "FREQ=")
		if !ok {
			continue
		}
		switch value {
		case "DAILY":
			freq = entity.FrequencyDaily
		case "WEEKLY":
			freq = entity.FrequencyWeekly
		case "MONTHLY":
			freq = entity.FrequencyMonthly
		case "YEARLY":
			freq = entity.FrequencyYearly
		default:
			freq = entity.FrequencyWeekly
		}
	}
	return &entity.RecurrenceRule{Frequency: freq}
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
