package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/sgn7/packmate/internal/error_values"
	"github.com/sgn7/packmate/internal/service"
	"github.com/sgn7/packmate/pkg/entity"
	"github.com/sgn7/packmate/pkg/httputil"
)

const (
	dateLayout   = "2006-01-02"
	maxFeedBytes = 4 << 20
)

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path"`
}

type TemplateRequest struct {
	Title      string   `json:"title"`
	DaysOfWeek []string `json:"days_of_week"`
	ItemIDs    []int64  `json:"item_ids"`
}

type SetCheckedRequest struct {
	Date    string `json:"date"`
	Checked bool   `json:"checked"`
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	report, err := s.statsService.Dashboard(ctx, time.Now())
	if err != nil {
		logger.Error("dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building dashboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) GetItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	items, err := s.itemsService.GetAllItems(ctx)
	if err != nil {
		logger.Error("get items error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"items": items,
	})
}

func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateItemRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.itemsService.CreateItem(ctx, &service.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidCategory):
			logger.Error("create item error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item fields", nil)
		default:
			logger.Error("create item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("item created", slog.Int64("item_id", item.ID))
}

func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		logger.Error("get item error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.itemsService.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			logger.Error("get item error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
			return
		}
		logger.Error("get item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
}

func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		logger.Error("delete item error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.itemsService.DeleteItem(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			logger.Error("delete item error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
			return
		}
		logger.Error("delete item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("item deleted", slog.Int64("item_id", id))
}

func (s *Server) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	templates, err := s.templatesService.GetTemplates(ctx)
	if err != nil {
		logger.Error("get templates error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing templates", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"templates": templates,
	})
}

func (s *Server) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TemplateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create template error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templatesService.CreateTemplate(ctx, &service.CreateTemplateRequest{
		Title:      req.Title,
		DaysOfWeek: req.DaysOfWeek,
		ItemIDs:    req.ItemIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidWeekday):
			logger.Error("create template error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template fields", nil)
		default:
			logger.Error("create template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, template)
	logger.Info("template created", slog.String("template_id", template.ID.String()))
}

func (s *Server) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		logger.Error("update template error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id", nil)
		return
	}
	var req TemplateRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update template error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	template, err := s.templatesService.UpdateTemplate(ctx, id, &service.UpdateTemplateRequest{
		Title:      req.Title,
		DaysOfWeek: req.DaysOfWeek,
		ItemIDs:    req.ItemIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTemplateNotFound):
			logger.Error("update template error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidWeekday):
			logger.Error("update template error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template fields", nil)
		default:
			logger.Error("update template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating template", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, template)
}

func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		logger.Error("delete template error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.templatesService.DeleteTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			logger.Error("delete template error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
			return
		}
		logger.Error("delete template error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting template", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("template deleted", slog.String("template_id", id.String()))
}

// requestFeed adapts an HTTP request body to the service.FeedSource
// contract used by the calendar import flow.
type requestFeed struct {
	body io.Reader
}

func (rf requestFeed) Read(_ context.Context) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(rf.body, maxFeedBytes))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Server) ImportCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	defer r.Body.Close()
	// Template synthesis calls the external recommender once per event,
	// so this handler gets a longer timeout than the CRUD ones.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*2)
	defer cancel()
	templates, err := s.feedService.ImportFromSource(ctx, requestFeed{body: r.Body})
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyFeed) {
			logger.Error("import calendar error: empty feed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "calendar feed is empty", nil)
			return
		}
		logger.Error("import calendar error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while importing calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"templates": templates,
	})
	logger.Info("calendar imported", slog.Int("template_count", len(templates)))
}

func (s *Server) SetChecked(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		logger.Error("set checked error: invalid item id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id", nil)
		return
	}
	var req SetCheckedRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set checked error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		logger.Error("set checked error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.checklistService.SetChecked(ctx, itemID, date, req.Checked)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			logger.Error("set checked error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
			return
		}
		logger.Error("set checked error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving check", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"item_id": itemID,
		"date":    entity.DateOf(date).Format(dateLayout),
		"checked": req.Checked,
	})
}

func (s *Server) ReconcileToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, ok := dateFromQuery(r, time.Now())
	if !ok {
		logger.Error("reconcile error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.checklistService.EnsureHistoryForDate(ctx, date); err != nil {
		logger.Error("reconcile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reconciling history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date": entity.DateOf(date).Format(dateLayout),
	})
}

func (s *Server) GetUncheckedItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, ok := dateFromQuery(r, time.Now())
	if !ok {
		logger.Error("get unchecked error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	items, err := s.checklistService.UncheckedItemsFor(ctx, date)
	if err != nil {
		logger.Error("get unchecked error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing unchecked items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":  entity.DateOf(date).Format(dateLayout),
		"items": items,
	})
}

func (s *Server) ResetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.checklistService.ResetHistory(ctx); err != nil {
		logger.Error("reset history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("check history reset")
}

func dateFromQuery(r *http.Request, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return fallback, true
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
