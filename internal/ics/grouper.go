package ics

import (
	"time"

	"github.com/sgn7/packmate/pkg/entity"
)

type groupKey struct {
	day  entity.Weekday
	slot entity.TimeSlot
}

// Group buckets events by (weekday of start, time slot of start hour).
// It is a pure function: groups appear in first-appearance order of their
// key, and events keep their input order within each group.
func Group(events []entity.CalendarEvent) []entity.EventGroup {
	index := make(map[groupKey]int)
	groups := make([]entity.EventGroup, 0)

	for _, ev := range events {
		key := groupKey{
			day:  entity.WeekdayFromTime(ev.Start.Weekday()),
			slot: entity.SlotForHour(ev.Start.Hour()),
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, entity.EventGroup{Day: key.day, Slot: key.slot})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	return groups
}

// Deduplicate drops events that repeat an earlier event's title, start and
// end exactly. Feeds that materialize a weekly class for every week of a
// term would otherwise inflate every group with identical entries.
func Deduplicate(events []entity.CalendarEvent) []entity.CalendarEvent {
	seen := make(map[string]struct{}, len(events))
	out := make([]entity.CalendarEvent, 0, len(events))
	for _, ev := range events {
		key := ev.Title + "#" + ev.Start.Format(time.RFC3339) + "#" + ev.End.Format(time.RFC3339)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ev)
	}
	return out
}
