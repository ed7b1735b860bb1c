// @title Packmate API
// @description Recurring checklist templates and daily check tracking for packed items
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/sgn7/packmate/internal/api"
	"github.com/sgn7/packmate/internal/ics"
	"github.com/sgn7/packmate/internal/recommend"
	"github.com/sgn7/packmate/internal/reminder"
	"github.com/sgn7/packmate/internal/repository"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/cleanup"
	"github.com/sgn7/packmate/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	itemsRepo := repository.NewItemsRepo(&dbCfg)
	templatesRepo := repository.NewTemplatesRepo(&dbCfg)
	checksRepo := repository.NewCheckStatesRepo(&dbCfg)

	var recommender ics.Recommender = recommend.Disabled{}
	if key := cfg.GetString("GEMINI_API_KEY"); key != "" {
		recommender = recommend.NewGemini(key, cfg.GetDurationOr("GEMINI_TIMEOUT", recommend.DefaultTimeout))
	}

	itemsService := service.NewItemsService(itemsRepo)
	templatesService := service.NewTemplatesService(templatesRepo)
	checklistService := service.NewChecklistService(itemsRepo, templatesRepo, checksRepo)
	statsService := service.NewStatsService(itemsRepo, templatesRepo, checksRepo, checklistService)
	feedService := service.NewFeedService(itemsRepo, templatesRepo, recommender)

	trigger := reminder.New(checklistService, statsService, reminder.LogSink{}, cfg.GetString("REMINDER_CRON"))
	if err := trigger.Start(); err != nil {
		log.Println("Reminder error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		ItemsService:     itemsService,
		TemplatesService: templatesService,
		ChecklistService: checklistService,
		StatsService:     statsService,
		FeedService:      feedService,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
