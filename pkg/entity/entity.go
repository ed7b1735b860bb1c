package entity

import (
	"time"

	"github.com/google/uuid"
)

type ItemCategory string

const (
	CategoryStudy    ItemCategory = "STUDY_SUPPLIES"
	CategoryDaily    ItemCategory = "DAILY_SUPPLIES"
	CategoryClothing ItemCategory = "CLOTHING_SUPPLIES"
	CategoryFood     ItemCategory = "FOOD_SUPPLIES"
	CategoryHealth   ItemCategory = "HEALTH_SUPPLIES"
	CategoryHobby    ItemCategory = "HOBBY_SUPPLIES"
	CategoryCharging ItemCategory = "CHARGING_SUPPLIES"
	CategoryOther    ItemCategory = "OTHER_SUPPLIES"
)

func ParseCategory(s string) (ItemCategory, bool) {
	switch c := ItemCategory(s); c {
	case CategoryStudy, CategoryDaily, CategoryClothing, CategoryFood,
		CategoryHealth, CategoryHobby, CategoryCharging, CategoryOther:
		return c, true
	}
	return "", false
}

type Item struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"desc"`
	Category    ItemCategory `json:"category"`
	ImagePath   string       `json:"image_path,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// WeeklyTemplate is a named checklist that recurs on one or more weekdays.
// ItemIDs are soft references into the item catalog: ids pointing at
// deleted items are tolerated and filtered out at read time.
type WeeklyTemplate struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	DaysOfWeek []Weekday `json:"days_of_week"`
	ItemIDs    []int64   `json:"item_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemCheckRecord is the check outcome of one item on one calendar date.
// There is at most one record per (item, date).
type ItemCheckRecord struct {
	Date      time.Time `json:"date"`
	IsChecked bool      `json:"is_checked"`
}

// ItemCheckState is the full per-date check history of one item.
type ItemCheckState struct {
	ItemID  int64             `json:"item_id"`
	History []ItemCheckRecord `json:"history"`
}

// RecordFor returns the record for the given date, if one exists.
func (s *ItemCheckState) RecordFor(date time.Time) (ItemCheckRecord, bool) {
	date = DateOf(date)
	for _, r := range s.History {
		if DateOf(r.Date).Equal(date) {
			return r, true
		}
	}
	return ItemCheckRecord{}, false
}

// DateOf normalizes a timestamp to its calendar date (midnight UTC).
// All check records are keyed by dates in this form.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type CategoryStat struct {
	Category ItemCategory `json:"category"`
	Checked  int          `json:"checked"`
	Total    int          `json:"total"`
	Rate     int          `json:"rate"`
}

// CategorySummary is the display form of a category breakdown: the top
// categories ranked by remaining unchecked items, plus a "+K more" count
// for the categories that were collapsed.
type CategorySummary struct {
	Top  []CategoryStat `json:"top"`
	More int            `json:"more"`
}

type DashboardReport struct {
	ItemCount                int             `json:"item_count"`
	TemplateCount            int             `json:"template_count"`
	ScheduledToday           int             `json:"scheduled_today"`
	CheckedToday             int             `json:"checked_today"`
	CompletionRateToday      int             `json:"completion_rate_today"`
	TotalRecords             int             `json:"total_records"`
	TotalChecked             int             `json:"total_checked"`
	HistoricalCompletionRate int             `json:"historical_completion_rate"`
	UncheckedToday           []Item          `json:"unchecked_today"`
	UncheckedTomorrow        []Item          `json:"unchecked_tomorrow"`
	Categories               CategorySummary `json:"categories"`
}
