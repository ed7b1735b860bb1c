package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sgn7/packmate/pkg/cleanup"
	"github.com/sgn7/packmate/pkg/entity"
)

// CheckStatesRepository stores one row per (item_id, check_date). The
// primary key on that pair plus conditional writes give the per-record
// atomicity the reconciler relies on: EnsureRecord never replaces an
// existing row, SetChecked always does.
type CheckStatesRepository struct {
	conn PgConnection
}

func NewCheckStatesRepo(cfg DBConfig) *CheckStatesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for checkStatesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkStatesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CheckStatesRepository{
		conn: pool,
	}
}

func NewCheckStatesRepoWithConn(conn PgConnection) *CheckStatesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkStatesRepo: " + err.Error())
	}
	return &CheckStatesRepository{
		conn: conn,
	}
}

func (cr *CheckStatesRepository) EnsureRecord(ctx context.Context, itemID int64, date time.Time) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO item_check_records (item_id, check_date, is_checked) VALUES ($1, $2, FALSE) ON CONFLICT (item_id, check_date) DO NOTHING;`,
		itemID,
		date,
	)
	if err != nil {
		return errors.New("ensuring check record error: " + err.Error())
	}
	return nil
}

func (cr *CheckStatesRepository) SetChecked(ctx context.Context, itemID int64, date time.Time, checked bool) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO item_check_records (item_id, check_date, is_checked) VALUES ($1, $2, $3) ON CONFLICT (item_id, check_date) DO UPDATE SET is_checked = EXCLUDED.is_checked;`,
		itemID,
		date,
		checked,
	)
	if err != nil {
		return errors.New("setting check record error: " + err.Error())
	}
	return nil
}

func (cr *CheckStatesRepository) GetForItems(ctx context.Context, itemIDs []int64) ([]entity.ItemCheckState, error) {
	if len(itemIDs) == 0 {
		return []entity.ItemCheckState{}, nil
	}
	rows, err := cr.conn.Query(
		ctx,
		`SELECT item_id, check_date, is_checked FROM item_check_records WHERE item_id = ANY($1) ORDER BY item_id, check_date;`,
		itemIDs,
	)
	if err != nil {
		return nil, errors.New("getting check states error: " + err.Error())
	}
	defer rows.Close()
	states := make([]entity.ItemCheckState, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var itemID int64
		var record entity.ItemCheckRecord
		err = rows.Scan(&itemID, &record.Date, &record.IsChecked)
		if err != nil {
			return nil, errors.New("check record row parsing error: " + err.Error())
		}
		i, ok := index[itemID]
		if !ok {
			i = len(states)
			index[itemID] = i
			states = append(states, entity.ItemCheckState{ItemID: itemID})
		}
		states[i].History = append(states[i].History, record)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected check record rows error: " + rows.Err().Error())
	}
	return states, nil
}

func (cr *CheckStatesRepository) CountRecords(ctx context.Context) (int, int, error) {
	var total, checked int
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_checked) FROM item_check_records;`,
	)
	if err := row.Scan(&total, &checked); err != nil {
		return 0, 0, errors.New("counting check records error: " + err.Error())
	}
	return total, checked, nil
}

func (cr *CheckStatesRepository) ClearAll(ctx context.Context) error {
	_, err := cr.conn.Exec(ctx, `DELETE FROM item_check_records;`)
	if err != nil {
		return errors.New("clearing check records error: " + err.Error())
	}
	return nil
}
