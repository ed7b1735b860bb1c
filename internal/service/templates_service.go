package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
)

type TemplatesService struct {
	repo repository.TemplatesRepositoryI
}

func NewTemplatesService(templatesRepo repository.TemplatesRepositoryI) *TemplatesService {
	if templatesRepo == nil {
		log.Fatal("provided nil templatesRepo")
	}
	return &TemplatesService{
		repo: templatesRepo,
	}
}

func (ts *TemplatesService) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*entity.WeeklyTemplate, error) {
	days, itemIDs, err := normalizeTemplateFields(req.DaysOfWeek, req.ItemIDs, req)
	if err != nil {
		return nil, err
	}
	template := entity.WeeklyTemplate{
		Title:      req.Title,
		DaysOfWeek: days,
		ItemIDs:    itemIDs,
	}
	id, err := ts.repo.Create(ctx, &template)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}
	created, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return created, nil
}

func (ts *TemplatesService) GetTemplates(ctx context.Context) ([]entity.WeeklyTemplate, error) {
	templates, err := ts.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return templates, nil
}

func (ts *TemplatesService) UpdateTemplate(ctx context.Context, id uuid.UUID, req *UpdateTemplateRequest) (*entity.WeeklyTemplate, error) {
	days, itemIDs, err := normalizeTemplateFields(req.DaysOfWeek, req.ItemIDs, req)
	if err != nil {
		return nil, err
	}
	template := entity.WeeklyTemplate{
		ID:         id,
		Title:      req.Title,
		DaysOfWeek: days,
		ItemIDs:    itemIDs,
	}
	if err := ts.repo.Update(ctx, &template); err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	updated, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, errors.New("templates repository error: " + err.Error())
	}
	return updated, nil
}

func (ts *TemplatesService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	err := ts.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("templates repository error: " + err.Error())
	}
	return nil
}

// normalizeTemplateFields validates the request and deduplicates both the
// weekday set and the item id list, keeping first-seen order for ids.
func normalizeTemplateFields(dayNames []string, itemIDs []int64, req any) ([]entity.Weekday, []int64, error) {
	if err := validate.Struct(req); err != nil {
		return nil, nil, errorvalues.ErrValidation
	}
	seenDays := make(map[entity.Weekday]struct{})
	days := make([]entity.Weekday, 0, len(dayNames))
	for _, name := range dayNames {
		day, ok := entity.ParseWeekday(name)
		if !ok {
			return nil, nil, errorvalues.ErrInvalidWeekday
		}
		if _, dup := seenDays[day]; dup {
			continue
		}
		seenDays[day] = struct{}{}
		days = append(days, day)
	}
	seenIDs := make(map[int64]struct{})
	ids := make([]int64, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, dup := seenIDs[id]; dup {
			continue
		}
		seenIDs[id] = struct{}{}
		ids = append(ids, id)
	}
	return days, ids, nil
}
