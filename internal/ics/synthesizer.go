package ics

import (
	"context"
	"strings"

	"github.com/sgn7/packmate/pkg/entity"
)

// Recommender suggests item ids for a calendar event. Implementations must
// return an empty slice instead of an error when they cannot produce a
// recommendation; the synthesizer treats "no suggestions" as a normal
// outcome, never as a failure.
type Recommender interface {
	Recommend(ctx context.Context, event entity.CalendarEvent, catalog []entity.Item) []int64
}

// Synthesize turns event groups into weekly templates. Each group yields
// one template for exactly one weekday. Item ids come from the recommender,
// invoked once per event, deduplicated in first-seen order; ids that do not
// exist in the catalog are discarded. Synthesis has no side effects;
// persistence is the caller's job.
func Synthesize(ctx context.Context, groups []entity.EventGroup, rec Recommender, catalog []entity.Item) []entity.WeeklyTemplate {
	known := make(map[int64]struct{}, len(catalog))
	for _, item := range catalog {
		known[item.ID] = struct{}{}
	}

	templates := make([]entity.WeeklyTemplate, 0, len(groups))
	for _, group := range groups {
		seen := make(map[int64]struct{})
		ids := make([]int64, 0)
		for _, ev := range group.Events {
			for _, id := range rec.Recommend(ctx, ev, catalog) {
				if _, ok := known[id]; !ok {
					continue
				}
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		templates = append(templates, entity.WeeklyTemplate{
			Title:      templateTitle(group),
			DaysOfWeek: []entity.Weekday{group.Day},
			ItemIDs:    ids,
		})
	}
	return templates
}

// templateTitle builds "<Weekday><Slot>" plus a suffix naming up to the
// first two events in the group, e.g. "MondayMorning (Math class, Club)".
func templateTitle(group entity.EventGroup) string {
	title := group.Day.DisplayName() + group.Slot.DisplayName()
	if len(group.Events) == 0 {
		return title
	}
	names := make([]string, 0, 2)
	for _, ev := range group.Events {
		names = append(names, ev.Title)
		if len(names) == 2 {
			break
		}
	}
	return title + " (" + strings.Join(names, ", ") + ")"
}
