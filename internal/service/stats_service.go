package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
)

// DefaultBreakdownTop is how many categories survive collapsing when
// summarizing a breakdown for display.
const DefaultBreakdownTop = 3

// CompletionRate converts checked/total into a truncated integer
// percentage. Truncation, not rounding, is the contract: 2 of 3 is 66.
// An empty schedule yields 0.
func CompletionRate(checkedCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	return checkedCount * 100 / totalCount
}

// UncheckedItems returns the items among scheduledIDs whose record for date
// is absent or unchecked. An item that was never reconciled counts as
// unchecked. Items missing from the catalog are skipped.
func UncheckedItems(date time.Time, scheduledIDs []int64, catalog []entity.Item, states []entity.ItemCheckState) []entity.Item {
	byID := make(map[int64]entity.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}
	stateByID := make(map[int64]entity.ItemCheckState, len(states))
	for _, state := range states {
		stateByID[state.ItemID] = state
	}

	unchecked := make([]entity.Item, 0)
	for _, id := range scheduledIDs {
		item, ok := byID[id]
		if !ok {
			continue
		}
		state := stateByID[id]
		if record, found := state.RecordFor(date); found && record.IsChecked {
			continue
		}
		unchecked = append(unchecked, item)
	}
	return unchecked
}

// CategoryBreakdown groups items by category and computes per-category
// checked/total counts and the truncated rate for the given date.
func CategoryBreakdown(items []entity.Item, states []entity.ItemCheckState, date time.Time) map[entity.ItemCategory]entity.CategoryStat {
	stateByID := make(map[int64]entity.ItemCheckState, len(states))
	for _, state := range states {
		stateByID[state.ItemID] = state
	}

	breakdown := make(map[entity.ItemCategory]entity.CategoryStat)
	for _, item := range items {
		stat := breakdown[item.Category]
		stat.Category = item.Category
		stat.Total++
		state := stateByID[item.ID]
		if record, found := state.RecordFor(date); found && record.IsChecked {
			stat.Checked++
		}
		breakdown[item.Category] = stat
	}
	for category, stat := range breakdown {
		stat.Rate = CompletionRate(stat.Checked, stat.Total)
		breakdown[category] = stat
	}
	return breakdown
}

// SummarizeBreakdown ranks categories by descending remaining count
// (total - checked) and keeps the top n; the rest collapse into the More
// counter. Ties break on category name to keep the output deterministic.
func SummarizeBreakdown(breakdown map[entity.ItemCategory]entity.CategoryStat, n int) entity.CategorySummary {
	if n <= 0 {
		n = DefaultBreakdownTop
	}
	stats := make([]entity.CategoryStat, 0, len(breakdown))
	for _, stat := range breakdown {
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		ri := stats[i].Total - stats[i].Checked
		rj := stats[j].Total - stats[j].Checked
		if ri != rj {
			return ri > rj
		}
		return stats[i].Category < stats[j].Category
	})
	summary := entity.CategorySummary{Top: stats}
	if len(stats) > n {
		summary.Top = stats[:n]
		summary.More = len(stats) - n
	}
	return summary
}

// StatsService derives read-only dashboard and reminder views. Any store
// failure aborts the whole aggregation; no partial report is ever returned.
type StatsService struct {
	itemsRepo     repository.ItemsRepositoryI
	templatesRepo repository.TemplatesRepositoryI
	checksRepo    repository.CheckStatesRepositoryI
	checklist     ChecklistServiceI
}

func NewStatsService(itemsRepo repository.ItemsRepositoryI, templatesRepo repository.TemplatesRepositoryI, checksRepo repository.CheckStatesRepositoryI, checklist ChecklistServiceI) *StatsService {
	if itemsRepo == nil || templatesRepo == nil || checksRepo == nil || checklist == nil {
		log.Fatal("on stats service provided nil dependencies")
	}
	return &StatsService{
		itemsRepo:     itemsRepo,
		templatesRepo: templatesRepo,
		checksRepo:    checksRepo,
		checklist:     checklist,
	}
}

func (ss *StatsService) Dashboard(ctx context.Context, today time.Time) (*entity.DashboardReport, error) {
	today = entity.DateOf(today)

	// Reconcile first so aggregation never sees a scheduled item with no
	// record at all for today.
	if err := ss.checklist.EnsureHistoryForDate(ctx, today); err != nil {
		return nil, err
	}

	catalog, err := ss.itemsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	templateCount, err := ss.templatesRepo.Count(ctx)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}

	known := make(map[int64]struct{}, len(catalog))
	for _, item := range catalog {
		known[item.ID] = struct{}{}
	}

	todayIDs, err := ss.checklist.ScheduledItemIDs(ctx, today)
	if err != nil {
		return nil, err
	}
	// Template item ids are soft references; ids whose item was deleted
	// must not inflate the scheduled count or the rate denominator.
	todayIDs = keepKnown(todayIDs, known)
	todayStates, err := ss.checksRepo.GetForItems(ctx, todayIDs)
	if err != nil {
		return nil, errors.New("check states repository error: " + err.Error())
	}

	checkedToday := 0
	for _, state := range todayStates {
		if record, found := state.RecordFor(today); found && record.IsChecked {
			checkedToday++
		}
	}

	totalRecords, totalChecked, err := ss.checksRepo.CountRecords(ctx)
	if err != nil {
		return nil, errors.New("check states repository error: " + err.Error())
	}

	tomorrow := today.AddDate(0, 0, 1)
	tomorrowIDs, err := ss.checklist.ScheduledItemIDs(ctx, tomorrow)
	if err != nil {
		return nil, err
	}
	tomorrowIDs = keepKnown(tomorrowIDs, known)
	tomorrowStates, err := ss.checksRepo.GetForItems(ctx, tomorrowIDs)
	if err != nil {
		return nil, errors.New("check states repository error: " + err.Error())
	}

	itemsForToday := filterByIDs(catalog, todayIDs)
	breakdown := CategoryBreakdown(itemsForToday, todayStates, today)

	return &entity.DashboardReport{
		ItemCount:                len(catalog),
		TemplateCount:            templateCount,
		ScheduledToday:           len(todayIDs),
		CheckedToday:             checkedToday,
		CompletionRateToday:      CompletionRate(checkedToday, len(todayIDs)),
		TotalRecords:             totalRecords,
		TotalChecked:             totalChecked,
		HistoricalCompletionRate: CompletionRate(totalChecked, totalRecords),
		UncheckedToday:           UncheckedItems(today, todayIDs, catalog, todayStates),
		UncheckedTomorrow:        UncheckedItems(tomorrow, tomorrowIDs, catalog, tomorrowStates),
		Categories:               SummarizeBreakdown(breakdown, DefaultBreakdownTop),
	}, nil
}

func (ss *StatsService) UncheckedCountFor(ctx context.Context, date time.Time) (int, error) {
	unchecked, err := ss.checklist.UncheckedItemsFor(ctx, date)
	if err != nil {
		return 0, err
	}
	return len(unchecked), nil
}

func keepKnown(ids []int64, known map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func filterByIDs(catalog []entity.Item, ids []int64) []entity.Item {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]entity.Item, 0, len(ids))
	for _, item := range catalog {
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out
}
