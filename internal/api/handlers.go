package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"regionchart/internal/chart"
	"regionchart/internal/engine"
	"regionchart/internal/models"
)

// Handler serves the chart state. It starts without a controller and
// answers 503 until SetController is called, or 500 after SetLoadError.
type Handler struct {
	mu      sync.RWMutex
	ctrl    *chart.Controller
	loadErr error
	logger  *zap.Logger
}

func NewHandler(ctrl *chart.Controller, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{ctrl: ctrl, logger: logger}
}

// SetController swaps in a freshly loaded dataset.
func (h *Handler) SetController(ctrl *chart.Controller) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctrl = ctrl
	h.loadErr = nil
}

// SetLoadError records a fatal load failure so clients see it.
func (h *Handler) SetLoadError(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loadErr = err
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/chart", h.GetChart)
	api.POST("/chart/year", h.PostYear)
	api.POST("/chart/sort", h.PostSort)
	api.GET("/chart/arrow", h.GetChartArrow)
	api.GET("/records", h.GetRecords)
	api.GET("/records/:id", h.GetRecord)
	api.GET("/summary", h.GetSummary)
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type yearRequest struct {
	Year int `json:"year"`
}

type sortRequest struct {
	Direction string `json:"direction"`
}

type recordResponse struct {
	models.Record
	DisplayName string `json:"display_name"`
}

// controller returns the active controller or writes the not-ready response.
func (h *Handler) controller(c echo.Context) (*chart.Controller, bool, error) {
	h.mu.RLock()
	ctrl, loadErr := h.ctrl, h.loadErr
	h.mu.RUnlock()

	if ctrl != nil {
		return ctrl, true, nil
	}
	if loadErr != nil {
		return nil, false, c.JSON(http.StatusInternalServerError, errorBody{Error: loadErr.Error(), Code: loadErrorCode(loadErr)})
	}
	return nil, false, c.JSON(http.StatusServiceUnavailable, errorBody{Error: "dataset is still loading", Code: "loading"})
}

func loadErrorCode(err error) string {
	var (
		inputErr *engine.InputLoadError
		markErr  *engine.MalformedInputError
		rowErr   *engine.MalformedRowError
	)
	switch {
	case errors.As(err, &inputErr):
		return "input_load_failed"
	case errors.As(err, &markErr):
		return "malformed_input"
	case errors.As(err, &rowErr):
		return "malformed_row"
	}
	return "load_failed"
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *Handler) GetHealth(c echo.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "loading"
	switch {
	case h.ctrl != nil:
		status = "ok"
	case h.loadErr != nil:
		status = "failed"
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) GetChart(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, ctrl.View())
}

func (h *Handler) PostYear(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	var req yearRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body", Code: "bad_request"})
	}

	view, err := ctrl.Dispatch(chart.YearChanged{Year: req.Year})
	if err != nil {
		var yErr *chart.InvalidYearSelectionError
		if errors.As(err, &yErr) {
			return c.JSON(http.StatusBadRequest, errorBody{Error: yErr.Error(), Code: "invalid_year"})
		}
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) PostSort(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	var req sortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body", Code: "bad_request"})
	}
	dir, err := models.ParseDirection(req.Direction)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error(), Code: "invalid_sort"})
	}

	view, err := ctrl.Dispatch(chart.SortChanged{Direction: dir})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// GetChartArrow streams the current view as Arrow IPC.
func (h *Handler) GetChartArrow(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	view := ctrl.View()

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.apache.arrow.stream")
	c.Response().WriteHeader(http.StatusOK)
	if err := engine.WriteArrow(c.Response(), view); err != nil {
		h.logger.Error("arrow export failed", zap.Error(err), zap.String("dataset_id", view.DatasetID))
	}
	return nil
}

// GetRecords lists records in the current chart order.
func (h *Handler) GetRecords(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	records := ctrl.State().Records
	total := len(records)
	limit, offset := getPaginationParams(c, total)

	if offset >= total {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"data": []models.Record{}, "total": total, "limit": limit, "offset": offset,
		})
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   records[offset:end],
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) GetRecord(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	rec, err := ctrl.Dataset().Lookup(c.Param("id"))
	if errors.Is(err, engine.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorBody{Error: "no record " + c.Param("id"), Code: "not_found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Record: rec, DisplayName: chart.DisplayName(rec.Name)})
}

// yearly totals
func (h *Handler) GetSummary(c echo.Context) error {
	ctrl, ok, err := h.controller(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, engine.Summarize(ctrl.Dataset().Records))
}
