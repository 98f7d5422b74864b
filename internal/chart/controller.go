// Package chart keeps the selection state of the grouped bar chart and turns
// it into a models.ChartView for renderers.
package chart

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"regionchart/internal/engine"
	"regionchart/internal/metrics"
	"regionchart/internal/models"
)

// InvalidYearSelectionError is returned for a year no record can carry.
type InvalidYearSelectionError struct {
	Year     int
	Min, Max int
}

func (e *InvalidYearSelectionError) Error() string {
	return fmt.Sprintf("year %d outside available range %d-%d", e.Year, e.Min, e.Max)
}

// SelectionState is the mutable view state. Records is the active order.
type SelectionState struct {
	SelectedYear  int
	SortDirection models.Direction
	Records       []models.Record
}

// Controller owns the selection state for one dataset. Commands are
// serialised; each one finishes before the next starts.
type Controller struct {
	mu      sync.Mutex
	ds      *engine.Dataset
	state   SelectionState
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// New starts in file order at defaultYear, clamped to the dataset's years.
func New(ds *engine.Dataset, defaultYear int, opts ...Option) *Controller {
	c := &Controller{ds: ds, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	year := defaultYear
	if ds.MaxYear >= ds.MinYear {
		year = min(max(year, ds.MinYear), ds.MaxYear)
	}
	if year != defaultYear {
		c.logger.Warn("default year outside dataset, clamped",
			zap.Int("requested", defaultYear), zap.Int("year", year))
	}
	c.state = SelectionState{
		SelectedYear: year,
		Records:      ds.Records,
	}
	return c
}

func (c *Controller) Dataset() *engine.Dataset { return c.ds }

// State returns a copy of the current selection.
func (c *Controller) State() SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Records = append([]models.Record(nil), c.state.Records...)
	return s
}

// OnYearChange selects year and keeps the current order.
func (c *Controller) OnYearChange(year int) (models.ChartView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ds.HasYear(year) {
		err := &InvalidYearSelectionError{Year: year, Min: c.ds.MinYear, Max: c.ds.MaxYear}
		c.metrics.ObserveCommand("year", err)
		return models.ChartView{}, err
	}
	c.state.SelectedYear = year
	c.metrics.ObserveCommand("year", nil)
	c.logger.Debug("year changed", zap.Int("year", year))
	return c.viewLocked(), nil
}

// OnSortChange reorders the active records by their total for the selected
// year. SortNone goes back to file order.
func (c *Controller) OnSortChange(dir models.Direction) (models.ChartView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch dir {
	case models.SortNone:
		c.state.Records = c.ds.Records
	case models.SortAsc, models.SortDesc:
		c.state.Records = engine.Sort(c.state.Records, c.state.SelectedYear, dir)
	default:
		err := fmt.Errorf("unknown sort direction %q", dir)
		c.metrics.ObserveCommand("sort", err)
		return models.ChartView{}, err
	}
	c.state.SortDirection = dir
	c.metrics.ObserveCommand("sort", nil)
	c.logger.Debug("sort changed", zap.String("direction", string(dir)), zap.Int("year", c.state.SelectedYear))
	return c.viewLocked(), nil
}

// View builds the view for the current selection without changing it.
func (c *Controller) View() models.ChartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() models.ChartView {
	year := c.state.SelectedYear
	view := models.ChartView{
		DatasetID:     c.ds.ID.String(),
		SelectedYear:  year,
		SortDirection: c.state.SortDirection,
		MinYear:       c.ds.MinYear,
		MaxYear:       c.ds.MaxYear,
		Keys:          append([]string(nil), models.Keys...),
		AxisLabel:     models.AxisLabel,
		Domains:       engine.ComputeDomains(c.state.Records, year),
		Groups:        make([]models.BarGroup, 0, len(c.state.Records)),
	}
	// Legend lists keys bottom-up.
	for i := len(models.Keys) - 1; i >= 0; i-- {
		k := models.Keys[i]
		view.Legend = append(view.Legend, models.LegendEntry{Key: k, Label: models.KeyLabel(k)})
	}

	for _, r := range c.state.Records {
		m, ok := engine.ProjectForYear(r, year)
		g := models.BarGroup{ID: r.ID, Name: DisplayName(r.Name), Bars: make([]models.Bar, 0, len(models.Keys))}
		for _, k := range models.Keys {
			g.Bars = append(g.Bars, models.Bar{Key: k, Value: m.Value(k), Missing: !ok})
		}
		view.Groups = append(view.Groups, g)
	}
	return view
}

// DisplayName upper-cases the first letter of a region name.
func DisplayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(name[size:])
	return b.String()
}
