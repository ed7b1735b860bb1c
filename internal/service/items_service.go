package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
)

type ItemsService struct {
	repo repository.ItemsRepositoryI
}

func NewItemsService(itemsRepo repository.ItemsRepositoryI) *ItemsService {
	if itemsRepo == nil {
		log.Fatal("provided nil itemsRepo")
	}
	return &ItemsService{
		repo: itemsRepo,
	}
}

func (is *ItemsService) CreateItem(ctx context.Context, req *CreateItemRequest) (*entity.Item, error) {
	if err := validate.Struct(req); err != nil {
		return nil, errorvalues.ErrValidation
	}
	category, ok := entity.ParseCategory(req.Category)
	if !ok {
		return nil, errorvalues.ErrInvalidCategory
	}
	item := entity.Item{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		ImagePath:   req.ImagePath,
	}
	id, err := is.repo.Create(ctx, &item)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	created, err := is.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("items repository error: " + err.Error())
	}
	return created, nil
}

func (is *ItemsService) GetAllItems(ctx context.Context) ([]entity.Item, error) {
	items, err := is.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}
	return items, nil
}

func (is *ItemsService) GetItem(ctx context.Context, id int64) (*entity.Item, error) {
	item, err := is.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("items repository error: " + err.Error())
	}
	return item, nil
}

func (is *ItemsService) DeleteItem(ctx context.Context, id int64) error {
	err := is.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("items repository error: " + err.Error())
	}
	return nil
}
