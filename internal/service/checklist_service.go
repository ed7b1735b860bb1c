package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
)

// ChecklistService reconciles per-item check history against the weekly
// schedule. Per-record atomicity lives in the repository's conditional
// writes; this service only decides which records must exist.
type ChecklistService struct {
	itemsRepo     repository.ItemsRepositoryI
	templatesRepo repository.TemplatesRepositoryI
	checksRepo    repository.CheckStatesRepositoryI
}

func NewChecklistService(itemsRepo repository.ItemsRepositoryI, templatesRepo repository.TemplatesRepositoryI, checksRepo repository.CheckStatesRepositoryI) *ChecklistService {
	if itemsRepo == nil || templatesRepo == nil || checksRepo == nil {
		log.Fatal("on checklist service provided nil repos")
	}
	return &ChecklistService{
		itemsRepo:     itemsRepo,
		templatesRepo: templatesRepo,
		checksRepo:    checksRepo,
	}
}

func (cs *ChecklistService) ScheduledItemIDs(ctx context.Context, date time.Time) ([]int64, error) {
	day := entity.WeekdayFromTime(date.Weekday())
	templates, err := cs.templatesRepo.GetForWeekday(ctx, day)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, template := range templates {
		for _, id := range template.ItemIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (cs *ChecklistService) EnsureHistoryForDate(ctx context.Context, date time.Time) error {
	date = entity.DateOf(date)
	ids, err := cs.ScheduledItemIDs(ctx, date)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	// Template item ids are soft references; drop ids whose item no
	// longer exists in the catalog.
	catalog, err := cs.itemsRepo.GetAll(ctx)
	if err != nil {
		return errors.New("items repository error: " + err.Error())
	}
	known := make(map[int64]struct{}, len(catalog))
	for _, item := range catalog {
		known[item.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			continue
		}
		if err := cs.checksRepo.EnsureRecord(ctx, id, date); err != nil {
			return errors.New("check states repository error: " + err.Error())
		}
	}
	return nil
}

func (cs *ChecklistService) SetChecked(ctx context.Context, itemID int64, date time.Time, checked bool) error {
	_, err := cs.itemsRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("items repository error: " + err.Error())
	}
	err = cs.checksRepo.SetChecked(ctx, itemID, entity.DateOf(date), checked)
	if err != nil {
		return errors.New("check states repository error: " + err.Error())
	}
	return nil
}

func (cs *ChecklistService) UncheckedItemsFor(ctx context.Context, date time.Time) ([]entity.Item, error) {
	ids, err := cs.ScheduledItemIDs(ctx, date)
	if err != nil {
		return nil, err
	}
	catalog, err := cs.itemsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	states, err := cs.checksRepo.GetForItems(ctx, ids)
	if err != nil {
		return nil, errors.New("check states repository error: " + err.Error())
	}
	return UncheckedItems(date, ids, catalog, states), nil
}

func (cs *ChecklistService) ResetHistory(ctx context.Context) error {
	if err := cs.checksRepo.ClearAll(ctx); err != nil {
		return errors.New("check states repository error: " + err.Error())
	}
	return nil
}
