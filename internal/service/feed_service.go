package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/ics"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/pkg/entity"
)

// FeedService converts calendar feeds into weekly templates: parse, dedup,
// group, synthesize (with item recommendations), then optionally persist.
type FeedService struct {
	itemsRepo     repository.ItemsRepositoryI
	templatesRepo repository.TemplatesRepositoryI
	parser        *ics.Parser
	recommender   ics.Recommender
}

func NewFeedService(itemsRepo repository.ItemsRepositoryI, templatesRepo repository.TemplatesRepositoryI, recommender ics.Recommender) *FeedService {
	if itemsRepo == nil || templatesRepo == nil || recommender == nil {
		log.Fatal("on feed service provided nil dependencies")
	}
	return &FeedService{
		itemsRepo:     itemsRepo,
		templatesRepo: templatesRepo,
		parser:        ics.NewParser(),
		recommender:   recommender,
	}
}

func (fs *FeedService) GenerateTemplates(ctx context.Context, feed string) ([]entity.WeeklyTemplate, error) {
	if strings.TrimSpace(feed) == "" {
		return nil, errorvalues.ErrEmptyFeed
	}
	catalog, err := fs.itemsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("items repository error: " + err.Error())
	}

	events := fs.parser.Parse(feed)
	deduped := ics.Deduplicate(events)
	if len(deduped) < len(events) {
		slog.Default().Debug("dropped duplicate feed events",
			slog.Int("original", len(events)),
			slog.Int("unique", len(deduped)),
		)
	}
	groups := ics.Group(deduped)
	return ics.Synthesize(ctx, groups, fs.recommender, catalog), nil
}

func (fs *FeedService) ImportFeed(ctx context.Context, feed string) ([]entity.WeeklyTemplate, error) {
	templates, err := fs.GenerateTemplates(ctx, feed)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		id, err := fs.templatesRepo.Create(ctx, &templates[i])
		if err != nil {
			return nil, errors.New("templates repository error: " + err.Error())
		}
		templates[i].ID = id
	}
	return templates, nil
}

func (fs *FeedService) ImportFromSource(ctx context.Context, src FeedSource) ([]entity.WeeklyTemplate, error) {
	feed, err := src.Read(ctx)
	if err != nil {
		return nil, errors.New("reading calendar feed error: " + err.Error())
	}
	return fs.ImportFeed(ctx, feed)
}
