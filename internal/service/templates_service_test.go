package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository/mocks"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTemplateService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(templatesRepo)
	ctx := context.Background()

	t.Run("dedups days and ids", func(t *testing.T) {
		id := uuid.New()
		templatesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, template *entity.WeeklyTemplate) (uuid.UUID, error) {
				assert.Equal(t, []entity.Weekday{entity.Monday, entity.Friday}, template.DaysOfWeek)
				assert.Equal(t, []int64{2, 1}, template.ItemIDs)
				return id, nil
			})
		templatesRepo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.WeeklyTemplate{ID: id}, nil)

		created, err := serv.CreateTemplate(ctx, &service.CreateTemplateRequest{
			Title:      "School days",
			DaysOfWeek: []string{"MONDAY", "FRIDAY", "MONDAY"},
			ItemIDs:    []int64{2, 1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, err := serv.CreateTemplate(ctx, &service.CreateTemplateRequest{
			Title:      "Bad",
			DaysOfWeek: []string{"FUNDAY"},
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})

	t.Run("no days", func(t *testing.T) {
		_, err := serv.CreateTemplate(ctx, &service.CreateTemplateRequest{
			Title: "Bad",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestUpdateTemplateService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(templatesRepo)
	ctx := context.Background()
	id := uuid.New()
	req := &service.UpdateTemplateRequest{
		Title:      "Updated",
		DaysOfWeek: []string{"TUESDAY"},
		ItemIDs:    []int64{3},
	}

	t.Run("success", func(t *testing.T) {
		templatesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		templatesRepo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.WeeklyTemplate{ID: id, Title: "Updated"}, nil)
		updated, err := serv.UpdateTemplate(ctx, id, req)
		require.NoError(t, err)
		assert.Equal(t, "Updated", updated.Title)
	})

	t.Run("not found", func(t *testing.T) {
		templatesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrTemplateNotFound)
		_, err := serv.UpdateTemplate(ctx, id, req)
		assert.ErrorIs(t, err, errorvalues.ErrTemplateNotFound)
	})
}

func TestDeleteTemplateService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(templatesRepo)
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		templatesRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		assert.NoError(t, serv.DeleteTemplate(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		templatesRepo.EXPECT().Delete(gomock.Any(), id).Return(errorvalues.ErrTemplateNotFound)
		assert.ErrorIs(t, serv.DeleteTemplate(ctx, id), errorvalues.ErrTemplateNotFound)
	})
}
