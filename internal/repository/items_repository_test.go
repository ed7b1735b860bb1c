package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	itemsRepo := repository.NewItemsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO items (name, description, category, image_path) VALUES ($1, $2, $3, $4) RETURNING id;`)
	item := &entity.Item{
		Name:        "Math notebook",
		Description: "Blue squared one",
		Category:    entity.CategoryStudy,
		ImagePath:   "/static/notebook.png",
	}
	testCases := []struct {
		Desc         string
		ID           int64
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			ID:    42,
			Error: nil,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(42))
				mock.ExpectQuery(query).
					WithArgs(item.Name, item.Description, "STUDY_SUPPLIES", item.ImagePath).
					WillReturnRows(rows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating item error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(item.Name, item.Description, "STUDY_SUPPLIES", item.ImagePath).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := itemsRepo.Create(ctx, item)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.ID, id)
			}
		})
	}
}

func TestGetItemByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	itemsRepo := repository.NewItemsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT name, description, category, image_path, created_at FROM items WHERE id = $1;`)
	ctx := context.Background()
	now := time.Now()

	t.Run("successful", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"name", "description", "category", "image_path", "created_at"}).
			AddRow("Swimsuit", "", "HOBBY_SUPPLIES", "", now)
		mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnRows(rows)
		item, err := itemsRepo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), item.ID)
		assert.Equal(t, entity.CategoryHobby, item.Category)
	})

	t.Run("item not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(404)).WillReturnError(pgx.ErrNoRows)
		_, err := itemsRepo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnError(errors.New("db error"))
		_, err := itemsRepo.GetByID(ctx, 5)
		assert.EqualError(t, err, "getting item by id error: db error")
	})
}

func TestDeleteItem(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	itemsRepo := repository.NewItemsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM items WHERE id = $1;`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "item not found",
			Error: errorvalues.ErrItemNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting item error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(int64(1)).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := itemsRepo.Delete(ctx, 1)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
