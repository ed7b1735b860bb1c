package reminder_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sgn7/packmate/internal/reminder"
	"github.com/sgn7/packmate/internal/repository/mocks"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	counts []int
	err    error
}

func (rs *recordingSink) Notify(_ context.Context, uncheckedCount int) error {
	rs.counts = append(rs.counts, uncheckedCount)
	return rs.err
}

func TestReminderRun(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckStatesRepositoryI(ctrl)
	checklist := service.NewChecklistService(itemsRepo, templatesRepo, checksRepo)
	stats := service.NewStatsService(itemsRepo, templatesRepo, checksRepo, checklist)

	sink := &recordingSink{}
	trigger := reminder.New(checklist, stats, sink, reminder.DefaultSchedule)

	// 2026-01-12 is a Monday
	now := time.Date(2026, 1, 12, 7, 30, 0, 0, time.UTC)
	monday := entity.DateOf(now)
	catalog := []entity.Item{{ID: 1, Name: "Notebook"}, {ID: 2, Name: "Bottle"}}
	templates := []entity.WeeklyTemplate{{Title: "MondayMorning", ItemIDs: []int64{1, 2}}}

	// reconciliation
	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return(templates, nil)
	itemsRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)
	checksRepo.EXPECT().EnsureRecord(gomock.Any(), int64(1), monday).Return(nil)
	checksRepo.EXPECT().EnsureRecord(gomock.Any(), int64(2), monday).Return(nil)

	// unchecked count
	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return(templates, nil)
	itemsRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)
	checksRepo.EXPECT().GetForItems(gomock.Any(), []int64{1, 2}).Return([]entity.ItemCheckState{
		{ItemID: 1, History: []entity.ItemCheckRecord{{Date: monday, IsChecked: true}}},
		{ItemID: 2, History: []entity.ItemCheckRecord{{Date: monday, IsChecked: false}}},
	}, nil)

	err := trigger.Run(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, sink.counts)
}

func TestReminderRunPropagatesStoreError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckStatesRepositoryI(ctrl)
	checklist := service.NewChecklistService(itemsRepo, templatesRepo, checksRepo)
	stats := service.NewStatsService(itemsRepo, templatesRepo, checksRepo, checklist)

	sink := &recordingSink{}
	trigger := reminder.New(checklist, stats, sink, "")

	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := trigger.Run(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Empty(t, sink.counts)
}
