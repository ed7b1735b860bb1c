package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sgn7/packmate/pkg/entity"
)

type CreateItemRequest struct {
	Name        string `validate:"required,min=1,max=100"`
	Description string `validate:"max=500"`
	Category    string `validate:"required,item_category"`
	ImagePath   string
}

type CreateTemplateRequest struct {
	Title      string   `validate:"required,min=1,max=200"`
	DaysOfWeek []string `validate:"required,min=1,dive,weekday"`
	ItemIDs    []int64
}

type UpdateTemplateRequest struct {
	Title      string   `validate:"required,min=1,max=200"`
	DaysOfWeek []string `validate:"required,min=1,dive,weekday"`
	ItemIDs    []int64
}

type ItemsServiceI interface {
	CreateItem(ctx context.Context, req *CreateItemRequest) (*entity.Item, error)
	GetAllItems(ctx context.Context) ([]entity.Item, error)
	GetItem(ctx context.Context, id int64) (*entity.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type TemplatesServiceI interface {
	CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*entity.WeeklyTemplate, error)
	GetTemplates(ctx context.Context) ([]entity.WeeklyTemplate, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, req *UpdateTemplateRequest) (*entity.WeeklyTemplate, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// ChecklistServiceI is the reconciliation boundary: it derives the item set
// due on a date from the stored templates and keeps per-date check records
// consistent with user actions.
type ChecklistServiceI interface {
	// Flattens today's templates into a deduplicated, ordered item id list
	ScheduledItemIDs(ctx context.Context, date time.Time) ([]int64, error)
	// Guarantees every item scheduled on date has a record for date.
	// Idempotent: repeated calls are no-ops and never downgrade a record
	EnsureHistoryForDate(ctx context.Context, date time.Time) error
	// Applies a user check/uncheck; last write wins for that exact date
	SetChecked(ctx context.Context, itemID int64, date time.Time, checked bool) error
	// Items scheduled on date whose record is absent or unchecked
	UncheckedItemsFor(ctx context.Context, date time.Time) ([]entity.Item, error)
	// Bulk reset of the whole check history
	ResetHistory(ctx context.Context) error
}

type StatsServiceI interface {
	// Dashboard reconciles today's history first, then derives the report
	Dashboard(ctx context.Context, today time.Time) (*entity.DashboardReport, error)
	// UncheckedCountFor returns how many scheduled items are still
	// unchecked on date; 0 when nothing is scheduled
	UncheckedCountFor(ctx context.Context, date time.Time) (int, error)
}

// FeedSource hands the service the raw text of a calendar feed. The
// reference behind it (file, upload, URL) is the caller's concern.
type FeedSource interface {
	Read(ctx context.Context) (string, error)
}

type FeedServiceI interface {
	// Parses the feed and synthesizes templates without persisting them
	GenerateTemplates(ctx context.Context, feed string) ([]entity.WeeklyTemplate, error)
	// GenerateTemplates followed by saving each result
	ImportFeed(ctx context.Context, feed string) ([]entity.WeeklyTemplate, error)
	// ImportFeed reading from an opaque source
	ImportFromSource(ctx context.Context, src FeedSource) ([]entity.WeeklyTemplate, error)
}
