package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/pkg/cleanup"
	"github.com/sgn7/packmate/pkg/entity"
)

type ItemsRepository struct {
	conn PgConnection
}

func NewItemsRepo(cfg DBConfig) *ItemsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for itemsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for itemsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ItemsRepository{
		conn: pool,
	}
}

func NewItemsRepoWithConn(conn PgConnection) *ItemsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for itemsRepo: " + err.Error())
	}
	return &ItemsRepository{
		conn: conn,
	}
}

func (ir *ItemsRepository) Create(ctx context.Context, item *entity.Item) (int64, error) {
	var id int64
	row := ir.conn.QueryRow(
		ctx,
		`INSERT INTO items (name, description, category, image_path) VALUES ($1, $2, $3, $4) RETURNING id;`,
		item.Name,
		item.Description,
		string(item.Category),
		item.ImagePath,
	)
	if err := row.Scan(&id); err != nil {
		return 0, errors.New("creating item error: " + err.Error())
	}
	return id, nil
}

func (ir *ItemsRepository) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var item entity.Item
	item.ID = id
	var category string
	row := ir.conn.QueryRow(
		ctx,
		`SELECT name, description, category, image_path, created_at FROM items WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&item.Name, &item.Description, &category, &item.ImagePath, &item.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting item by id error: " + err.Error())
	}
	item.Category = entity.ItemCategory(category)
	return &item, nil
}

func (ir *ItemsRepository) GetAll(ctx context.Context) ([]entity.Item, error) {
	rows, err := ir.conn.Query(
		ctx,
		`SELECT id, name, description, category, image_path, created_at FROM items ORDER BY id;`,
	)
	if err != nil {
		return nil, errors.New("getting items error: " + err.Error())
	}
	defer rows.Close()
	items := make([]entity.Item, 0)
	for rows.Next() {
		var item entity.Item
		var category string
		err = rows.Scan(&item.ID, &item.Name, &item.Description, &category, &item.ImagePath, &item.CreatedAt)
		if err != nil {
			return nil, errors.New("item row parsing error: " + err.Error())
		}
		item.Category = entity.ItemCategory(category)
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected item rows error: " + rows.Err().Error())
	}
	return items, nil
}

func (ir *ItemsRepository) Delete(ctx context.Context, id int64) error {
	ct, err := ir.conn.Exec(ctx, `DELETE FROM items WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}
