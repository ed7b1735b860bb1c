package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sgn7/packmate/internal/service"
)

type Server struct {
	mx               *chi.Mux
	itemsService     service.ItemsServiceI
	templatesService service.TemplatesServiceI
	checklistService service.ChecklistServiceI
	statsService     service.StatsServiceI
	feedService      service.FeedServiceI
}

type ServicesList struct {
	ItemsService     service.ItemsServiceI
	TemplatesService service.TemplatesServiceI
	ChecklistService service.ChecklistServiceI
	StatsService     service.StatsServiceI
	FeedService      service.FeedServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		itemsService:     servicesOptions.ItemsService,
		templatesService: servicesOptions.TemplatesService,
		checklistService: servicesOptions.ChecklistService,
		statsService:     servicesOptions.StatsService,
		feedService:      servicesOptions.FeedService,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.GetDashboard)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.GetItems)
			r.Post("/", s.CreateItem)
			r.Get("/{itemID}", s.GetItem)
			r.Delete("/{itemID}", s.DeleteItem)
		})
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.GetTemplates)
			r.Post("/", s.CreateTemplate)
			r.Post("/import", s.ImportCalendar)
			r.Put("/{templateID}", s.UpdateTemplate)
			r.Delete("/{templateID}", s.DeleteTemplate)
		})
		r.Route("/checks", func(r chi.Router) {
			r.Post("/reconcile", s.ReconcileToday)
			r.Post("/{itemID}", s.SetChecked)
			r.Get("/unchecked", s.GetUncheckedItems)
			r.Delete("/", s.ResetHistory)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
