package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sgn7/packmate/pkg/entity"
)

type ItemsRepositoryI interface {
	// Creates a new catalog item. Returns the assigned id
	Create(ctx context.Context, item *entity.Item) (int64, error)
	// Searches item with given id
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// Lists the whole item catalog
	GetAll(ctx context.Context) ([]entity.Item, error)
	// Deletes item with id
	Delete(ctx context.Context, id int64) error
}

type TemplatesRepositoryI interface {
	// Creates a weekly template. Returns the assigned id
	Create(ctx context.Context, template *entity.WeeklyTemplate) (uuid.UUID, error)
	// Searches template with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyTemplate, error)
	// Lists all templates
	GetAll(ctx context.Context) ([]entity.WeeklyTemplate, error)
	// Lists templates whose days_of_week contains the given weekday
	GetForWeekday(ctx context.Context, day entity.Weekday) ([]entity.WeeklyTemplate, error)
	// Updates template by ID (ID in template is necessary)
	Update(ctx context.Context, template *entity.WeeklyTemplate) error
	// Deletes template with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns count of stored templates
	Count(ctx context.Context) (int, error)
}

type CheckStatesRepositoryI interface {
	// Inserts an unchecked record for (itemID, date) only if none exists.
	// The conditional insert is a single atomic statement, so concurrent
	// reconciliation can never clobber a record written by a user action
	EnsureRecord(ctx context.Context, itemID int64, date time.Time) error
	// Upserts the record for (itemID, date); last write wins for that date
	SetChecked(ctx context.Context, itemID int64, date time.Time, checked bool) error
	// Assembles per-item check histories for the given ids
	GetForItems(ctx context.Context, itemIDs []int64) ([]entity.ItemCheckState, error)
	// Returns total and checked record counts over the whole history
	CountRecords(ctx context.Context) (total int, checked int, err error)
	// Bulk reset: removes every check record
	ClearAll(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
