package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository/mocks"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecklistFixture(t *testing.T) (*mocks.MockItemsRepositoryI, *mocks.MockTemplatesRepositoryI, *mocks.MockCheckStatesRepositoryI, service.ChecklistServiceI) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	templatesRepo := mocks.NewMockTemplatesRepositoryI(ctrl)
	checksRepo := mocks.NewMockCheckStatesRepositoryI(ctrl)
	return itemsRepo, templatesRepo, checksRepo, service.NewChecklistService(itemsRepo, templatesRepo, checksRepo)
}

func TestScheduledItemIDs(t *testing.T) {
	t.Parallel()
	_, templatesRepo, _, serv := newChecklistFixture(t)
	// 2026-01-12 is a Monday
	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return([]entity.WeeklyTemplate{
		{Title: "MondayMorning", ItemIDs: []int64{3, 1}},
		{Title: "MondayEvening", ItemIDs: []int64{1, 2}},
	}, nil)

	ids, err := serv.ScheduledItemIDs(context.Background(), monday)
	require.NoError(t, err)
	// duplicates collapse, first appearance wins
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestScheduledItemIDsEmptySchedule(t *testing.T) {
	t.Parallel()
	_, templatesRepo, _, serv := newChecklistFixture(t)
	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), gomock.Any()).Return([]entity.WeeklyTemplate{}, nil)

	ids, err := serv.ScheduledItemIDs(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEnsureHistoryForDate(t *testing.T) {
	t.Parallel()
	itemsRepo, templatesRepo, checksRepo, serv := newChecklistFixture(t)
	monday := time.Date(2026, 1, 12, 23, 59, 0, 0, time.UTC)
	normalized := entity.DateOf(monday)

	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return([]entity.WeeklyTemplate{
		{Title: "MondayMorning", ItemIDs: []int64{1, 404, 2}},
	}, nil)
	itemsRepo.EXPECT().GetAll(gomock.Any()).Return([]entity.Item{
		{ID: 1}, {ID: 2},
	}, nil)
	// id 404 is not in the catalog, no record for it
	checksRepo.EXPECT().EnsureRecord(gomock.Any(), int64(1), normalized).Return(nil)
	checksRepo.EXPECT().EnsureRecord(gomock.Any(), int64(2), normalized).Return(nil)

	assert.NoError(t, serv.EnsureHistoryForDate(context.Background(), monday))
}

func TestEnsureHistoryForDateNeverOverwritesChecks(t *testing.T) {
	t.Parallel()
	itemsRepo, templatesRepo, checksRepo, serv := newChecklistFixture(t)
	monday := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	normalized := entity.DateOf(monday)

	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return([]entity.WeeklyTemplate{
		{Title: "MondayMorning", ItemIDs: []int64{1}},
	}, nil).Times(2)
	itemsRepo.EXPECT().GetAll(gomock.Any()).Return([]entity.Item{{ID: 1}}, nil).Times(2)
	// reconciliation only ever inserts-if-absent; an item the user already
	// checked must keep its record even across repeated passes
	checksRepo.EXPECT().EnsureRecord(gomock.Any(), int64(1), normalized).Return(nil).Times(2)
	checksRepo.EXPECT().SetChecked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, serv.EnsureHistoryForDate(context.Background(), monday))
	require.NoError(t, serv.EnsureHistoryForDate(context.Background(), monday))
}

func TestEnsureHistoryForDateNothingScheduled(t *testing.T) {
	t.Parallel()
	_, templatesRepo, _, serv := newChecklistFixture(t)
	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), gomock.Any()).Return([]entity.WeeklyTemplate{}, nil)

	assert.NoError(t, serv.EnsureHistoryForDate(context.Background(), time.Now()))
}

func TestSetCheckedService(t *testing.T) {
	t.Parallel()
	itemsRepo, _, checksRepo, serv := newChecklistFixture(t)
	date := time.Date(2026, 1, 12, 18, 45, 0, 0, time.UTC)
	normalized := entity.DateOf(date)

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&entity.Item{ID: 1}, nil)
				checksRepo.EXPECT().SetChecked(gomock.Any(), int64(1), normalized, true).Return(nil)
			},
		},
		{
			Desc:  "unknown item",
			Error: errorvalues.ErrItemNotFound,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errorvalues.ErrItemNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.SetChecked(ctx, 1, date, true)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUncheckedItemsFor(t *testing.T) {
	t.Parallel()
	itemsRepo, templatesRepo, checksRepo, serv := newChecklistFixture(t)
	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	templatesRepo.EXPECT().GetForWeekday(gomock.Any(), entity.Monday).Return([]entity.WeeklyTemplate{
		{Title: "MondayMorning", ItemIDs: []int64{1, 2}},
	}, nil)
	itemsRepo.EXPECT().GetAll(gomock.Any()).Return([]entity.Item{
		{ID: 1, Name: "Notebook"}, {ID: 2, Name: "Bottle"},
	}, nil)
	checksRepo.EXPECT().GetForItems(gomock.Any(), []int64{1, 2}).Return([]entity.ItemCheckState{
		{ItemID: 1, History: []entity.ItemCheckRecord{{Date: monday, IsChecked: true}}},
	}, nil)

	unchecked, err := serv.UncheckedItemsFor(context.Background(), monday)
	require.NoError(t, err)
	require.Len(t, unchecked, 1)
	assert.Equal(t, "Bottle", unchecked[0].Name)
}

func TestResetHistory(t *testing.T) {
	t.Parallel()
	_, _, checksRepo, serv := newChecklistFixture(t)
	checksRepo.EXPECT().ClearAll(gomock.Any()).Return(nil)
	assert.NoError(t, serv.ResetHistory(context.Background()))
}
