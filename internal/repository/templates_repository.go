package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/pkg/cleanup"
	"github.com/sgn7/packmate/pkg/entity"
)

type TemplatesRepository struct {
	conn PgConnection
}

func NewTemplatesRepo(cfg DBConfig) *TemplatesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for templatesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TemplatesRepository{
		conn: pool,
	}
}

func NewTemplatesRepoWithConn(conn PgConnection) *TemplatesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	return &TemplatesRepository{
		conn: conn,
	}
}

func (tr *TemplatesRepository) Create(ctx context.Context, template *entity.WeeklyTemplate) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tr.conn.Exec(
		ctx,
		`INSERT INTO weekly_templates (id, title, days_of_week, item_ids) VALUES ($1, $2, $3, $4);`,
		id,
		template.Title,
		weekdayNames(template.DaysOfWeek),
		template.ItemIDs,
	)
	if err != nil {
		return uuid.UUID{}, errors.New("creating template error: " + err.Error())
	}
	return id, nil
}

func (tr *TemplatesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyTemplate, error) {
	var template entity.WeeklyTemplate
	template.ID = id
	var days []string
	row := tr.conn.QueryRow(
		ctx,
		`SELECT title, days_of_week, item_ids, created_at, updated_at FROM weekly_templates WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&template.Title, &days, &template.ItemIDs, &template.CreatedAt, &template.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("getting template by id error: " + err.Error())
	}
	template.DaysOfWeek = weekdaysFromNames(days)
	return &template, nil
}

func (tr *TemplatesRepository) GetAll(ctx context.Context) ([]entity.WeeklyTemplate, error) {
	rows, err := tr.conn.Query(
		ctx,
		`SELECT id, title, days_of_week, item_ids, created_at, updated_at FROM weekly_templates ORDER BY created_at;`,
	)
	if err != nil {
		return nil, errors.New("getting templates error: " + err.Error())
	}
	return scanTemplates(rows)
}

func (tr *TemplatesRepository) GetForWeekday(ctx context.Context, day entity.Weekday) ([]entity.WeeklyTemplate, error) {
	rows, err := tr.conn.Query(
		ctx,
		`SELECT id, title, days_of_week, item_ids, created_at, updated_at FROM weekly_templates WHERE $1 = ANY(days_of_week) ORDER BY created_at;`,
		string(day),
	)
	if err != nil {
		return nil, errors.New("getting templates for weekday error: " + err.Error())
	}
	return scanTemplates(rows)
}

func (tr *TemplatesRepository) Update(ctx context.Context, template *entity.WeeklyTemplate) error {
	ct, err := tr.conn.Exec(
		ctx,
		`UPDATE weekly_templates SET title = $1, days_of_week = $2, item_ids = $3, updated_at = NOW() WHERE id = $4;`,
		template.Title,
		weekdayNames(template.DaysOfWeek),
		template.ItemIDs,
		template.ID,
	)
	if err != nil {
		return errors.New("updating template error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func (tr *TemplatesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM weekly_templates WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting template error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func (tr *TemplatesRepository) Count(ctx context.Context) (int, error) {
	var count int
	row := tr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM weekly_templates;`)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting templates error: " + err.Error())
	}
	return count, nil
}

func scanTemplates(rows pgx.Rows) ([]entity.WeeklyTemplate, error) {
	defer rows.Close()
	templates := make([]entity.WeeklyTemplate, 0)
	for rows.Next() {
		var template entity.WeeklyTemplate
		var days []string
		err := rows.Scan(&template.ID, &template.Title, &days, &template.ItemIDs, &template.CreatedAt, &template.UpdatedAt)
		if err != nil {
			return nil, errors.New("template row parsing error: " + err.Error())
		}
		template.DaysOfWeek = weekdaysFromNames(days)
		templates = append(templates, template)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected template rows error: " + rows.Err().Error())
	}
	return templates, nil
}

func weekdayNames(days []entity.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, string(d))
	}
	return names
}

func weekdaysFromNames(names []string) []entity.Weekday {
	days := make([]entity.Weekday, 0, len(names))
	for _, n := range names {
		days = append(days, entity.Weekday(n))
	}
	return days
}
